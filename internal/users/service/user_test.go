package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	userserrors "tourenzo/internal/users/errors"
	"tourenzo/internal/users/validator"
	"tourenzo/pkg/auth"
	"tourenzo/pkg/config"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/logger"
	"tourenzo/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepository keeps users in memory and enforces email uniqueness the
// way the unique index does.
type fakeUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
	nextID  int

	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	createFunc      func(ctx context.Context, user *model.User) error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *model.User) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, user)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byEmail[user.Email]; exists {
		return fmt.Errorf("%w: %s", userserrors.ErrDuplicateEmail, user.Email)
	}
	f.nextID++
	user.ID = fmt.Sprintf("%024x", f.nextID)
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.findByEmailFunc != nil {
		return f.findByEmailFunc(ctx, email)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", userserrors.ErrNotFound, email)
	}
	copied := *user
	return &copied, nil
}

func newTestService(repo *fakeUserRepository) (UserService, *auth.TokenManager) {
	cfg := &config.Config{Log: logger.Discard()}
	tokens := auth.NewTokenManager("users-service-secret-1234", time.Hour)
	return NewUserService(repo, validator.NewUserValidator(), auth.NewPasswordHasher(bcrypt.MinCost), tokens, cfg), tokens
}

func appErr(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	appErr := apperrors.AsAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr
}

func TestSignupThenLogin(t *testing.T) {
	repo := newFakeUserRepository()
	svc, tokens := newTestService(repo)
	ctx := context.Background()

	user, err := svc.Signup(ctx, &model.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.NotEqual(t, "pw1", repo.byEmail["a@x.com"].PasswordHash)

	resp, err := svc.Login(ctx, &model.LoginRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, &model.UserSummary{ID: user.ID, Username: "alice", Email: "a@x.com"}, resp.User)

	claims, err := tokens.Validate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID())
}

func TestSignup_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), &model.SignupRequest{Username: " alice ", Email: "  A@X.com ", Password: "pw1"})
	require.NoError(t, err)

	stored, ok := repo.byEmail["a@x.com"]
	require.True(t, ok)
	assert.Equal(t, "alice", stored.Username)

	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "A@x.COM", Password: "pw1"})
	assert.NoError(t, err)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &model.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &model.SignupRequest{Username: "alice2", Email: "a@x.com", Password: "pw2"})
	e := appErr(t, err)
	assert.Equal(t, apperrors.CodeDuplicateEmail, e.Code)
	assert.Equal(t, http.StatusConflict, e.HTTPStatus)
	assert.Equal(t, "Email already exists", e.Message)
	assert.Len(t, repo.byEmail, 1)
}

func TestSignup_DuplicateKeyRaceMapsToConflict(t *testing.T) {
	repo := newFakeUserRepository()
	repo.createFunc = func(ctx context.Context, user *model.User) error {
		return fmt.Errorf("%w: %s", userserrors.ErrDuplicateEmail, user.Email)
	}
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), &model.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw1"})
	assert.ErrorIs(t, err, userserrors.ErrDuplicateEmail)
	assert.Equal(t, http.StatusConflict, appErr(t, err).HTTPStatus)
}

func TestSignup_ValidationFailure(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepository())

	_, err := svc.Signup(context.Background(), &model.SignupRequest{Email: "nope"})
	e := appErr(t, err)
	assert.Equal(t, apperrors.CodeValidation, e.Code)
	assert.Contains(t, e.Details, "username")
	assert.Contains(t, e.Details, "email")
	assert.Contains(t, e.Details, "password")
}

func TestLogin_Failures(t *testing.T) {
	repo := newFakeUserRepository()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &model.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "b@x.com", Password: "pw1"})
	e := appErr(t, err)
	assert.Equal(t, http.StatusNotFound, e.HTTPStatus)
	assert.Equal(t, "User not found", e.Message)

	_, err = svc.Login(ctx, &model.LoginRequest{Email: "a@x.com", Password: "wrong"})
	e = appErr(t, err)
	assert.Equal(t, apperrors.CodeInvalidCredentials, e.Code)
	assert.Equal(t, http.StatusUnauthorized, e.HTTPStatus)
}

func TestLogin_StoreFailureIsInternal(t *testing.T) {
	repo := newFakeUserRepository()
	repo.findByEmailFunc = func(ctx context.Context, email string) (*model.User, error) {
		return nil, errors.New("connection reset")
	}
	svc, _ := newTestService(repo)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "a@x.com", Password: "pw1"})
	e := appErr(t, err)
	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus)
	assert.NotContains(t, e.Message, "connection reset")
}
