package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=5"`
	Count int    `json:"count" validate:"min=1"`
}

func TestStruct_UsesJSONNames(t *testing.T) {
	err := Struct(New(), &sample{Email: "nope", Name: "toolong"})
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))

	details := errs.Details()
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "must be at most 5 characters", details["name"])
	assert.Equal(t, "must be at least 1", details["count"])
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(New(), &sample{Email: "a@x.com", Name: "al", Count: 1}))
}
