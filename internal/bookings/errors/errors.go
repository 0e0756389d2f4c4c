package errors

import "errors"

var (
	ErrInvalidUserID = errors.New("invalid user ID format")

	ErrPastTravelDate = errors.New("travel date is in the past")
)
