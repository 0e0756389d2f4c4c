package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	userserrors "tourenzo/internal/users/errors"
	"tourenzo/internal/users/repository"
	"tourenzo/internal/users/validator"
	"tourenzo/pkg/auth"
	"tourenzo/pkg/config"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/model"
	"tourenzo/pkg/sanitizer"
	"tourenzo/pkg/validation"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) (bool, error)
}

type TokenIssuer interface {
	Generate(userID, email, role string) (string, time.Time, error)
}

type UserService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	hasher    PasswordHasher
	tokens    TokenIssuer
	cfg       *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	validator *validator.UserValidator,
	hasher PasswordHasher,
	tokens TokenIssuer,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		hasher:    hasher,
		tokens:    tokens,
		cfg:       cfg,
	}
}

func (s *userService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	req.Username = sanitizer.NormalizeName(req.Username)
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if err := s.validator.ValidateSignup(req); err != nil {
		s.cfg.Log.Warn("Signup validation failed", "email", req.Email, "error", err)
		return nil, validationError("Signup validation failed", err)
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, duplicateEmail()
	} else if !errors.Is(err, userserrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to check existing email", "email", req.Email, "error", err)
		return nil, apperrors.Internal("Failed to register user", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperrors.Validation("Signup validation failed", map[string]any{
				"password": "must be at most 72 bytes",
			})
		}
		s.cfg.Log.Error("Failed to hash password", "error", err)
		return nil, apperrors.Internal("Failed to register user", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrDuplicateEmail) {
			return nil, duplicateEmail()
		}
		s.cfg.Log.Error("Failed to create user", "email", req.Email, "error", err)
		return nil, apperrors.Internal("Failed to register user", err)
	}

	s.cfg.Log.Info("User registered", "id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = sanitizer.NormalizeEmail(req.Email)

	if err := s.validator.ValidateLogin(req); err != nil {
		return nil, validationError("Login validation failed", err)
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to look up user", "email", req.Email, "error", err)
		return nil, apperrors.Internal("Failed to log in", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		s.cfg.Log.Error("Stored password hash is unreadable", "id", user.ID, "error", err)
		return nil, apperrors.Internal("Failed to log in", err)
	}
	if !ok {
		s.cfg.Log.Warn("Login rejected", "id", user.ID)
		return nil, apperrors.Wrap(userserrors.ErrInvalidCredentials,
			apperrors.CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	}

	role := user.Role
	if role == "" {
		role = model.RoleCustomer
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email, role)
	if err != nil {
		s.cfg.Log.Error("Failed to issue token", "id", user.ID, "error", err)
		return nil, apperrors.Internal("Failed to log in", err)
	}

	s.cfg.Log.Info("User logged in", "id", user.ID)
	return &model.LoginResponse{
		Success:   true,
		User:      user.Summary(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func duplicateEmail() error {
	return apperrors.Wrap(userserrors.ErrDuplicateEmail,
		apperrors.CodeDuplicateEmail, "Email already exists", http.StatusConflict)
}

func validationError(message string, err error) error {
	var errs validation.ValidationErrors
	if errors.As(err, &errs) {
		return apperrors.Validation(message, errs.Details())
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}
