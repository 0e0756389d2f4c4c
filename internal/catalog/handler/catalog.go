package handler

import (
	"net/http"

	"tourenzo/internal/catalog/service"
	httputil "tourenzo/pkg/http"
	"tourenzo/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	packages, err := h.service.ListPackages(r.Context(), r.URL.Query().Get("loc"))
	if err != nil {
		h.writeError(w, "ListPackages", err)
		return
	}

	if err := httputil.WriteSuccess(w, packages); err != nil {
		h.log.Error("failed to write JSON response", "handler", "ListPackages", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	locations, err := h.service.ListLocations(r.Context())
	if err != nil {
		h.writeError(w, "ListLocations", err)
		return
	}

	if err := httputil.WriteSuccess(w, locations); err != nil {
		h.log.Error("failed to write JSON response", "handler", "ListLocations", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) GetPackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pkg, err := h.service.GetPackage(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetPackage", err)
		return
	}

	if err := httputil.WriteSuccess(w, pkg); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetPackage", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		h.writeError(w, "Seed", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Seed", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/packages", h.ListPackages)
	router.GET("/api/locations", h.ListLocations)
	router.GET("/api/package/:id", h.GetPackage)
	router.GET("/api/seed", h.Seed)
	router.GET("/seed", h.Seed)
}
