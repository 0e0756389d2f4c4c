package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/logger"
	"tourenzo/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCatalogService struct {
	listPackagesFunc  func(ctx context.Context, location string) ([]*model.Package, error)
	listLocationsFunc func(ctx context.Context) ([]*model.Location, error)
	getPackageFunc    func(ctx context.Context, id string) (*model.Package, error)
	seedFunc          func(ctx context.Context) (*model.SeedResult, error)
}

func (m *mockCatalogService) ListPackages(ctx context.Context, location string) ([]*model.Package, error) {
	return m.listPackagesFunc(ctx, location)
}

func (m *mockCatalogService) ListLocations(ctx context.Context) ([]*model.Location, error) {
	return m.listLocationsFunc(ctx)
}

func (m *mockCatalogService) GetPackage(ctx context.Context, id string) (*model.Package, error) {
	return m.getPackageFunc(ctx, id)
}

func (m *mockCatalogService) Seed(ctx context.Context) (*model.SeedResult, error) {
	return m.seedFunc(ctx)
}

func serve(svc *mockCatalogService, method, target string) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewCatalogHandler(svc, logger.Discard()).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestListPackages_PassesLocationFilter(t *testing.T) {
	var got string
	rec := serve(&mockCatalogService{
		listPackagesFunc: func(ctx context.Context, location string) ([]*model.Package, error) {
			got = location
			return []*model.Package{{ID: "65f0c0ffee0000000000abcd", Title: "Tokyo & Kyoto VIP", Location: "Japan", Price: 550000}}, nil
		},
	}, http.MethodGet, "/api/packages?loc=Japan")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Japan", got)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "65f0c0ffee0000000000abcd", body[0]["_id"])
	assert.Equal(t, float64(550000), body[0]["price"])
}

func TestListPackages_EmptyIsArray(t *testing.T) {
	rec := serve(&mockCatalogService{
		listPackagesFunc: func(ctx context.Context, location string) ([]*model.Package, error) {
			return []*model.Package{}, nil
		},
	}, http.MethodGet, "/api/packages?loc=Nowhere")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListLocations(t *testing.T) {
	rec := serve(&mockCatalogService{
		listLocationsFunc: func(ctx context.Context) ([]*model.Location, error) {
			return []*model.Location{{Location: "Bali", Image: "b.jpg"}}, nil
		},
	}, http.MethodGet, "/api/locations")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"location":"Bali","image":"b.jpg"}]`, rec.Body.String())
}

func TestGetPackage_NotFound(t *testing.T) {
	rec := serve(&mockCatalogService{
		getPackageFunc: func(ctx context.Context, id string) (*model.Package, error) {
			return nil, apperrors.NotFoundWithID("Package", id)
		},
	}, http.MethodGet, "/api/package/65f0c0ffee0000000000abcd")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestSeed_BothPaths(t *testing.T) {
	svc := &mockCatalogService{
		seedFunc: func(ctx context.Context) (*model.SeedResult, error) {
			return &model.SeedResult{Success: true, Message: "Data already exists."}, nil
		},
	}

	for _, path := range []string{"/seed", "/api/seed"} {
		rec := serve(svc, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Data already exists.")
	}
}
