package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-06-10")
	assert.True(t, ok)
	_, ok = IsValidDate("10-06-2025")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2025-06"))
	assert.False(t, IsValidMonth("2025-6"))
	assert.False(t, IsValidMonth("2025-13"))
}

func TestIsValidInstant(t *testing.T) {
	_, ok := IsValidInstant("2025-06-10T09:15:00+05:30")
	assert.True(t, ok)
	_, ok = IsValidInstant("2025-06-10 09:15")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "reason", Message: "reason is required"},
		{Field: "requested_time", Message: "requested_time is required"},
	}
	assert.Equal(t, "reason: reason is required; requested_time: requested_time is required", errs.Error())
	assert.Equal(t, map[string]string{
		"reason":         "reason is required",
		"requested_time": "requested_time is required",
	}, errs.ToMap())
}
