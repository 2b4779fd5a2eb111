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
	assert.True(t, IsValidEmail("ravi@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("04-03-2024")
	assert.False(t, ok)
}

func TestIsValidMonthKey(t *testing.T) {
	assert.True(t, IsValidMonthKey("2024-02"))
	assert.False(t, IsValidMonthKey("2024-13"))
	assert.False(t, IsValidMonthKey("2024-02-01"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is invalid"},
		{Field: "name", Message: "name is required"},
	}

	m := errs.ToMap()
	assert.Equal(t, "email is invalid", m["email"])
	assert.Equal(t, "name is required", m["name"])
	assert.Contains(t, errs.Error(), "email: email is invalid")
}
