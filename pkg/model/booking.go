package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusConfirmed = "confirmed"

	TravelDateLayout = "2006-01-02"

	EventBookingCreated = "booking.created"
	// BookingEventSchemaVersion changes whenever BookingCreatedEvent changes shape.
	BookingEventSchemaVersion = "1"
)

type Booking struct {
	ID            string             `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id"`
	PackageID     primitive.ObjectID `json:"package_id" bson:"package_id"`
	TravelDate    string             `json:"travel_date" bson:"travel_date"`
	Travelers     int                `json:"travelers" bson:"travelers"`
	TotalCost     float64            `json:"total_cost" bson:"total_cost"`
	PaymentMethod string             `json:"payment_method" bson:"payment_method"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// BookingDetails is a booking with its package resolved. The package is
// rendered under "package_id", the shape the dashboard reads.
type BookingDetails struct {
	ID            string             `json:"_id" bson:"_id"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id"`
	Package       *Package           `json:"package_id" bson:"package,omitempty"`
	TravelDate    string             `json:"travel_date" bson:"travel_date"`
	Travelers     int                `json:"travelers" bson:"travelers"`
	TotalCost     float64            `json:"total_cost" bson:"total_cost"`
	PaymentMethod string             `json:"payment_method" bson:"payment_method"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

type BookingRequest struct {
	UserID        string   `json:"user_id,omitempty" validate:"omitempty,mongodb"`
	PackageID     string   `json:"package_id" validate:"required,mongodb"`
	TravelDate    string   `json:"travel_date" validate:"required,datetime=2006-01-02"`
	Travelers     FlexInt  `json:"travelers" validate:"required,min=1"`
	TotalCost     *float64 `json:"total_cost,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod string   `json:"payment_method" validate:"required,min=2,max=40"`
}

type BookingCreatedResponse struct {
	Success   bool    `json:"success"`
	ID        string  `json:"id"`
	TotalCost float64 `json:"total_cost"`
	Status    string  `json:"status"`
}

// BookingCreatedEvent is the payload published after a booking is persisted.
type BookingCreatedEvent struct {
	BookingID     string    `json:"booking_id"`
	UserID        string    `json:"user_id"`
	PackageID     string    `json:"package_id"`
	PackageTitle  string    `json:"package_title"`
	Location      string    `json:"location"`
	TravelDate    string    `json:"travel_date"`
	Travelers     int       `json:"travelers"`
	TotalCost     float64   `json:"total_cost"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}
