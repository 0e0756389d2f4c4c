package service

import (
	"context"
	"errors"

	catalogerrors "tourenzo/internal/catalog/errors"
	"tourenzo/internal/catalog/repository"
	"tourenzo/pkg/config"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/model"
)

const (
	msgSeeded        = "All Packages inserted successfully!"
	msgAlreadySeeded = "Data already exists."
)

type CatalogService interface {
	ListPackages(ctx context.Context, location string) ([]*model.Package, error)
	ListLocations(ctx context.Context) ([]*model.Location, error)
	GetPackage(ctx context.Context, id string) (*model.Package, error)
	Seed(ctx context.Context) (*model.SeedResult, error)
}

type catalogService struct {
	repo    repository.PackageRepository
	catalog []model.Package
	cfg     *config.Config
}

// NewCatalogService takes the seed catalog so tests can supply their own.
func NewCatalogService(repo repository.PackageRepository, catalog []model.Package, cfg *config.Config) CatalogService {
	return &catalogService{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
	}
}

// ListPackages matches location exactly. Only the empty string means no filter.
func (s *catalogService) ListPackages(ctx context.Context, location string) ([]*model.Package, error) {
	packages, err := s.repo.FindAll(ctx, location)
	if err != nil {
		s.cfg.Log.Error("Failed to list packages", "location", location, "error", err)
		return nil, apperrors.Internal("Failed to retrieve packages", err)
	}
	if packages == nil {
		packages = []*model.Package{}
	}
	return packages, nil
}

func (s *catalogService) ListLocations(ctx context.Context) ([]*model.Location, error) {
	locations, err := s.repo.Locations(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list locations", "error", err)
		return nil, apperrors.Internal("Failed to retrieve locations", err)
	}
	if locations == nil {
		locations = []*model.Location{}
	}
	return locations, nil
}

func (s *catalogService) GetPackage(ctx context.Context, id string) (*model.Package, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Package ID cannot be empty")
	}

	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Package", id)
		}
		if errors.Is(err, catalogerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid package ID format")
		}
		s.cfg.Log.Error("Failed to get package by ID", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve package", err)
	}
	return pkg, nil
}

// Seed loads the catalog into an empty collection. A populated collection is
// left untouched.
func (s *catalogService) Seed(ctx context.Context) (*model.SeedResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count packages", "error", err)
		return nil, apperrors.Internal("Failed to seed packages", err)
	}

	if count > 0 {
		return &model.SeedResult{Success: true, Message: msgAlreadySeeded}, nil
	}

	inserted, err := s.repo.InsertMany(ctx, s.catalog)
	if err != nil {
		s.cfg.Log.Error("Failed to seed packages", "error", err)
		return nil, apperrors.Internal("Failed to seed packages", err)
	}

	s.cfg.Log.Info("Package catalog seeded", "inserted", inserted)
	if inserted == 0 {
		return &model.SeedResult{Success: true, Message: msgAlreadySeeded}, nil
	}
	return &model.SeedResult{Success: true, Message: msgSeeded, Inserted: inserted}, nil
}
