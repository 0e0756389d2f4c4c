package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strings"

	bookingserrors "tourenzo/internal/bookings/errors"
	"tourenzo/internal/bookings/events"
	"tourenzo/internal/bookings/repository"
	"tourenzo/internal/bookings/validator"
	"tourenzo/pkg/config"
	apperrors "tourenzo/pkg/errors"
	"tourenzo/pkg/metrics"
	"tourenzo/pkg/model"
	"tourenzo/pkg/sanitizer"
	"tourenzo/pkg/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageLookup resolves the package being booked. Errors are returned to
// the caller unchanged, so they should already be AppErrors.
type PackageLookup interface {
	GetPackage(ctx context.Context, id string) (*model.Package, error)
}

type BookingService interface {
	Create(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*model.BookingDetails, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	packages  PackageLookup
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	packages PackageLookup,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &bookingService{
		repo:      repo,
		validator: validator,
		packages:  packages,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, userID string, req *model.BookingRequest) (*model.Booking, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.PackageID = strings.TrimSpace(req.PackageID)
	req.TravelDate = strings.TrimSpace(req.TravelDate)
	req.PaymentMethod = sanitizer.TrimAndNormalize(req.PaymentMethod)

	if req.UserID != "" && req.UserID != userID {
		s.cfg.Log.Warn("Booking attempted for another user", "user_id", userID, "requested_user_id", req.UserID)
		return nil, apperrors.Forbidden("Cannot create a booking for another user")
	}

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid session")
	}

	if err := s.validator.Validate(req); err != nil {
		if errors.Is(err, bookingserrors.ErrPastTravelDate) {
			return nil, apperrors.Wrap(err, apperrors.CodeInvalidDate,
				"Travel date cannot be in the past", http.StatusUnprocessableEntity)
		}
		s.cfg.Log.Warn("Booking validation failed", "user_id", userID, "error", err)
		return nil, validationError("Booking validation failed", err)
	}

	pkg, err := s.packages.GetPackage(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	packageOID, err := primitive.ObjectIDFromHex(pkg.ID)
	if err != nil {
		s.cfg.Log.Error("Stored package has a malformed id", "package_id", pkg.ID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	travelers := req.Travelers.Int()
	total := float64(travelers) * pkg.Price
	if req.TotalCost != nil && math.Abs(*req.TotalCost-total) > 0.005 {
		s.cfg.Log.Warn("Client total cost differs from computed total",
			"user_id", userID,
			"package_id", pkg.ID,
			"client_total", *req.TotalCost,
			"total", total,
		)
	}

	booking := &model.Booking{
		UserID:        userOID,
		PackageID:     packageOID,
		TravelDate:    req.TravelDate,
		Travelers:     travelers,
		TotalCost:     total,
		PaymentMethod: req.PaymentMethod,
		Status:        model.StatusConfirmed,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "user_id", userID, "package_id", pkg.ID, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}
	metrics.BookingsCreated.Inc()

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"user_id", userID,
		"package_id", pkg.ID,
		"travel_date", booking.TravelDate,
		"travelers", booking.Travelers,
		"total_cost", booking.TotalCost,
	)

	s.publish(ctx, &model.BookingCreatedEvent{
		BookingID:     booking.ID,
		UserID:        userID,
		PackageID:     pkg.ID,
		PackageTitle:  pkg.Title,
		Location:      pkg.Location,
		TravelDate:    booking.TravelDate,
		Travelers:     booking.Travelers,
		TotalCost:     booking.TotalCost,
		PaymentMethod: booking.PaymentMethod,
		CreatedAt:     booking.CreatedAt,
	})

	return booking, nil
}

// publish runs detached from the request so a slow broker cannot outlive the
// response or be cut short by a client disconnect. The booking is already stored.
func (s *bookingService) publish(ctx context.Context, event *model.BookingCreatedEvent) {
	timeout := s.cfg.EventPublishTimeout
	if timeout <= 0 {
		timeout = config.DefaultEventPublishTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := s.publisher.BookingCreated(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "id", event.BookingID, "error", err)
	}
}

func (s *bookingService) ListForUser(ctx context.Context, userID string) ([]*model.BookingDetails, error) {
	bookings, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidUserID) {
			return nil, apperrors.Unauthorized("Invalid session")
		}
		s.cfg.Log.Error("Failed to list bookings", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	if bookings == nil {
		bookings = []*model.BookingDetails{}
	}
	return bookings, nil
}

func validationError(message string, err error) error {
	var errs validation.ValidationErrors
	if errors.As(err, &errs) {
		return apperrors.Validation(message, errs.Details())
	}
	return apperrors.Validation(message, map[string]any{"error": err.Error()})
}
