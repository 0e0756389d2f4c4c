package repository

import (
	"context"
	"errors"
	"fmt"

	catalogerrors "tourenzo/internal/catalog/errors"
	"tourenzo/pkg/config"
	mongodb "tourenzo/pkg/db/mongo"
	"tourenzo/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "packages"
)

type PackageRepository interface {
	FindAll(ctx context.Context, location string) ([]*model.Package, error)
	FindByID(ctx context.Context, id string) (*model.Package, error)
	Locations(ctx context.Context) ([]*model.Location, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, packages []model.Package) (int, error)
}

type mongoPackageRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoPackageRepository(cfg *config.Config) PackageRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoPackageRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// FindAll returns packages in insertion order. An empty location matches all.
func (r *mongoPackageRepository) FindAll(ctx context.Context, location string) ([]*model.Package, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{}
	if location != "" {
		filter["location"] = location
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer cursor.Close(ctx)

	packages := make([]*model.Package, 0)
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}

func (r *mongoPackageRepository) FindByID(ctx context.Context, id string) (*model.Package, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", catalogerrors.ErrInvalidID, id)
	}

	var pkg model.Package
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", catalogerrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find package: %w", err)
	}
	return &pkg, nil
}

// Locations lists each distinct location once, alphabetically, with the image
// of its earliest inserted package.
func (r *mongoPackageRepository) Locations(ctx context.Context) ([]*model.Location, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location"},
			{Key: "image", Value: bson.D{{Key: "$first", Value: "$image_url"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := make([]*model.Location, 0)
	if err = cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

func (r *mongoPackageRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

// InsertMany inserts in order without stopping at duplicates, and reports how
// many documents were actually written.
func (r *mongoPackageRepository) InsertMany(ctx context.Context, packages []model.Package) (int, error) {
	ctx, cancel := mongodb.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	docs := make([]any, len(packages))
	for i := range packages {
		pkg := packages[i]
		pkg.ID = ""
		docs[i] = pkg
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return len(docs), nil
	}

	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) && bulkErr.WriteConcernError == nil && onlyDuplicates(bulkErr) {
		return len(docs) - len(bulkErr.WriteErrors), nil
	}
	return 0, fmt.Errorf("failed to insert packages: %w", err)
}

func onlyDuplicates(err mongo.BulkWriteException) bool {
	for _, we := range err.WriteErrors {
		if we.Code != 11000 {
			return false
		}
	}
	return true
}
