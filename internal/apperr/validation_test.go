package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := NewValidation("Please fill in all required fields", map[string]string{
		"name":     "is required",
		"category": "is required",
	})
	assert.Equal(t, "Please fill in all required fields (category: is required, name: is required)", err.Error())
	assert.Equal(t, "plain", NewValidation("plain", nil).Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, errors.Is(errors.New("other"), ErrValidation))
}

func TestValidate_UsesJSONNames(t *testing.T) {
	type form struct {
		Title string `json:"title" validate:"required"`
		Min   int64  `json:"min" validate:"gte=0"`
		Max   int64  `json:"max,omitempty" validate:"gtefield=Min"`
		Note  string `validate:"required"`
	}

	err := Validate(form{Min: -1}, "bad form")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	assert.Equal(t, "bad form", ve.Message)
	assert.Equal(t, map[string]string{
		"title": "is required",
		"min":   "must be at least 0",
		"Note":  "is required",
	}, ve.Fields)

	err = Validate(form{Title: "x", Min: 5, Max: 1, Note: "n"}, "bad form")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"max": "must not be less than min"}, ve.Fields)

	assert.NoError(t, Validate(form{Title: "x", Min: 1, Max: 1, Note: "n"}, "bad form"))
}
