package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{name: "minimum length", username: "abc", want: true},
		{name: "maximum length", username: "a2345678901234567890", want: true},
		{name: "with underscore and digits", username: "user_42", want: true},
		{name: "too short", username: "ab", want: false},
		{name: "too long", username: "a23456789012345678901", want: false},
		{name: "empty", username: "", want: false},
		{name: "space", username: "bad name", want: false},
		{name: "hyphen", username: "bad-name", want: false},
		{name: "cyrillic rejected", username: "пользователь", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUsername(tt.username))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple", email: "a@b.com", want: true},
		{name: "plus and dots", email: "user+tag.name@example.co.uk", want: true},
		{name: "permissive domain", email: "a@localhost", want: true},
		{name: "no at sign", email: "bad-email", want: false},
		{name: "empty local part", email: "@b.com", want: false},
		{name: "empty domain", email: "a@", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("123456"))
	assert.True(t, IsValidPassword("a longer password"))
	assert.False(t, IsValidPassword("12345"))
	assert.False(t, IsValidPassword(""))
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("x"))
	assert.True(t, IsNotEmpty(" x "))
	assert.False(t, IsNotEmpty(""))
	assert.False(t, IsNotEmpty("   "))
	assert.False(t, IsNotEmpty("\t\n"))
}
