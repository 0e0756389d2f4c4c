package handler

import (
	"net/http"

	"tourenzo/internal/bookings/service"
	apperrors "tourenzo/pkg/errors"
	httputil "tourenzo/pkg/http"
	"tourenzo/pkg/logger"
	"tourenzo/pkg/middleware"
	"tourenzo/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	tokens  middleware.TokenValidator
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, tokens middleware.TokenValidator, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		h.writeError(w, "Create", apperrors.Unauthorized("Missing bearer token"))
		return
	}

	var req model.BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	booking, err := h.service.Create(r.Context(), claims.UserID(), &req)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, model.BookingCreatedResponse{
		Success:   true,
		ID:        booking.ID,
		TotalCost: booking.TotalCost,
		Status:    booking.Status,
	}); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

// MyBookings lists the caller's bookings. The optional user_id query
// parameter must name the caller.
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		h.writeError(w, "MyBookings", apperrors.Unauthorized("Missing bearer token"))
		return
	}

	if requested := r.URL.Query().Get("user_id"); requested != "" && requested != claims.UserID() {
		h.log.Warn("Bookings requested for another user",
			"user_id", claims.UserID(),
			"requested_user_id", requested,
			"request_id", middleware.RequestIDFrom(r.Context()),
		)
		h.writeError(w, "MyBookings", apperrors.Forbidden("Cannot view another user's bookings"))
		return
	}

	bookings, err := h.service.ListForUser(r.Context(), claims.UserID())
	if err != nil {
		h.writeError(w, "MyBookings", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "MyBookings", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/book", middleware.RequireAuth(h.tokens, h.log, h.Create))
	router.GET("/api/my-bookings", middleware.RequireAuth(h.tokens, h.log, h.MyBookings))
}
