package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tourenzo/pkg/auth"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/logger"
	"tourenzo/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "65f0c0ffee00000000000001"

type mockBookingService struct {
	createFunc      func(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error)
	listForUserFunc func(ctx context.Context, userID string) ([]*model.BookingDetails, error)
}

func (m *mockBookingService) Create(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error) {
	return m.createFunc(ctx, userID, req)
}

func (m *mockBookingService) ListForUser(ctx context.Context, userID string) ([]*model.BookingDetails, error) {
	return m.listForUserFunc(ctx, userID)
}

type testServer struct {
	router *httprouter.Router
	tokens *auth.TokenManager
}

func newTestServer(svc *mockBookingService) *testServer {
	tokens := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	router := httprouter.New()
	NewBookingHandler(svc, tokens, logger.Discard()).RegisterRoutes(router)
	return &testServer{router: router, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, target, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		token, _, err := s.tokens.Generate(testUserID, "asha@example.com", model.RoleCustomer)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestCreate_Success(t *testing.T) {
	var gotUser string
	var gotReq *model.BookingRequest
	srv := newTestServer(&mockBookingService{
		createFunc: func(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error) {
			gotUser, gotReq = userID, req
			return &model.Booking{ID: "b1", TotalCost: 300000, Status: model.StatusConfirmed}, nil
		},
	})

	rec := srv.do(t, http.MethodPost, "/api/book",
		`{"package_id":"65f0c0ffee0000000000abcd","travel_date":"2099-06-01","travelers":"3","payment_method":"UPI"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testUserID, gotUser)
	assert.Equal(t, 3, gotReq.Travelers.Int())

	var resp model.BookingCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, 300000.0, resp.TotalCost)
}

func TestCreate_RequiresToken(t *testing.T) {
	srv := newTestServer(&mockBookingService{})

	rec := srv.do(t, http.MethodPost, "/api/book", `{}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreate_ServiceErrorEnvelope(t *testing.T) {
	srv := newTestServer(&mockBookingService{
		createFunc: func(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Forbidden("Cannot create a booking for another user")
		},
	})

	rec := srv.do(t, http.MethodPost, "/api/book", `{"user_id":"65f0c0ffee00000000000002"}`, true)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, apperrors.CodeForbidden, resp.Code)
}

func TestCreate_EmptyBody(t *testing.T) {
	srv := newTestServer(&mockBookingService{})

	rec := srv.do(t, http.MethodPost, "/api/book", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMyBookings(t *testing.T) {
	srv := newTestServer(&mockBookingService{
		listForUserFunc: func(ctx context.Context, userID string) ([]*model.BookingDetails, error) {
			return []*model.BookingDetails{{
				ID:      "b1",
				Package: &model.Package{Title: "Bali Bliss"},
			}}, nil
		},
	})

	rec := srv.do(t, http.MethodGet, "/api/my-bookings", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	pkg, ok := got[0]["package_id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bali Bliss", pkg["title"])

	rec = srv.do(t, http.MethodGet, "/api/my-bookings?user_id="+testUserID, "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMyBookings_OtherUserForbidden(t *testing.T) {
	srv := newTestServer(&mockBookingService{})

	rec := srv.do(t, http.MethodGet, "/api/my-bookings?user_id=65f0c0ffee00000000000002", "", true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
