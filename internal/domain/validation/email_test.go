package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.domain.io", "a@b.co"}
	invalid := []string{"", "plain", "user@", "@example.com", "user@example", "us er@example.com", "user@@example.com"}

	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}
