package service

import (
	"context"

	"tourenzo/internal/contacts/repository"
	"tourenzo/pkg/config"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/model"
	"tourenzo/pkg/sanitizer"
)

type ContactService interface {
	Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error)
}

type contactService struct {
	repo repository.ContactRepository
	cfg  *config.Config
}

func NewContactService(repo repository.ContactRepository, cfg *config.Config) ContactService {
	return &contactService{
		repo: repo,
		cfg:  cfg,
	}
}

// Submit stores whatever the visitor sent. Fields are only normalized, never
// rejected, so an empty form is still recorded.
func (s *contactService) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    sanitizer.NormalizeName(req.Name),
		Email:   sanitizer.NormalizeEmail(req.Email),
		Message: sanitizer.NormalizeMessage(req.Message),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to store contact message", "email", msg.Email, "error", err)
		return nil, apperrors.Internal("Failed to send message", err)
	}

	s.cfg.Log.Info("Contact message received", "id", msg.ID, "email", msg.Email)
	return msg, nil
}
