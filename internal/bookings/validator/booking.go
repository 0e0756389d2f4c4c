package validator

import (
	"fmt"
	"time"

	bookingserrors "tourenzo/internal/bookings/errors"
	"tourenzo/pkg/model"
	"tourenzo/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type BookingValidator struct {
	validate     *validator.Validate
	maxTravelers int
	location     *time.Location
	now          func() time.Time
}

// NewBookingValidator judges travel dates against the calendar day in loc.
func NewBookingValidator(maxTravelers int, loc *time.Location) *BookingValidator {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingValidator{
		validate:     validation.New(),
		maxTravelers: maxTravelers,
		location:     loc,
		now:          time.Now,
	}
}

func (v *BookingValidator) Validate(req *model.BookingRequest) error {
	if err := validation.Struct(v.validate, req); err != nil {
		return err
	}

	if v.maxTravelers > 0 && req.Travelers.Int() > v.maxTravelers {
		return validation.ValidationErrors{
			validation.ValidationError{
				Field:   "travelers",
				Message: fmt.Sprintf("must be at most %d", v.maxTravelers),
			},
		}
	}

	date, err := time.ParseInLocation(model.TravelDateLayout, req.TravelDate, v.location)
	if err != nil {
		return validation.ValidationErrors{
			validation.ValidationError{
				Field:   "travel_date",
				Message: fmt.Sprintf("must be a date in %s format", model.TravelDateLayout),
			},
		}
	}

	if date.Before(v.today()) {
		return fmt.Errorf("%w: %s", bookingserrors.ErrPastTravelDate, req.TravelDate)
	}

	return nil
}

// today is midnight of the current day in the booking time zone. Today
// itself is a valid travel date.
func (v *BookingValidator) today() time.Time {
	y, m, d := v.now().In(v.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, v.location)
}
