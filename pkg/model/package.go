package model

// Package is a purchasable travel itinerary offered at a location.
type Package struct {
	ID          string  `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string  `json:"title" bson:"title"`
	Description string  `json:"description" bson:"description"`
	Location    string  `json:"location" bson:"location"`
	Price       float64 `json:"price" bson:"price"`
	ImageURL    string  `json:"image_url" bson:"image_url"`
	Duration    string  `json:"duration" bson:"duration"`
}

// Location is one row of the destinations listing: a distinct location and
// one representative image.
type Location struct {
	Location string `json:"location" bson:"_id"`
	Image    string `json:"image" bson:"image"`
}

type SeedResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}
