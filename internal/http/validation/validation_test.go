package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type statusForm struct {
	Status string `form:"status" validate:"required,oneof=pending shipped"`
	Note   string `validate:"max=3"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New()

	err := v.Struct(&statusForm{Status: "lost", Note: "toolong"})
	got := FromBindError(err, &statusForm{})

	assert.Equal(t, FieldErrors{
		"status": "Must be one of: pending, shipped.",
		"note":   "Must be at most 3 characters.",
	}, got)

	err = v.Struct(&statusForm{})
	assert.Equal(t, "This field is required.", FromBindError(err, &statusForm{})["status"])
}

func TestFromBindError_Other(t *testing.T) {
	got := FromBindError(errors.New("strconv.Atoi: parsing"), nil)
	assert.Equal(t, FieldErrors{"_": "Invalid form data."}, got)
}
