package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatedParams struct {
	Sort      string `query:"sort" validate:"sortkey"`
	Condition string `query:"condition" validate:"condition"`
}

func TestValidatorCustomTags(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(validatedParams{}))
	assert.NoError(t, v.Validate(validatedParams{Sort: "lowest-price", Condition: "all"}))
	assert.NoError(t, v.Validate(validatedParams{Sort: "alphabetical", Condition: "used"}))

	assert.Error(t, v.Validate(validatedParams{Sort: "cheapest"}))
	assert.Error(t, v.Validate(validatedParams{Condition: "refurbished"}))
}

func TestValidatorUsesQueryTagNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(validatedParams{Sort: "cheapest"})
	assert.ErrorContains(t, err, "sort")
}
