package validator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_Check(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "name", "must be provided")
	assert.True(t, v.Valid())
	assert.False(t, v.HasError("name"))

	v.Check(false, "name", "must be provided")
	assert.False(t, v.Valid())
	assert.True(t, v.HasError("name"))
	assert.False(t, v.HasError("version"))
}

func TestValidator_AddErrorKeepsFirst(t *testing.T) {
	v := New()

	v.AddError("version", "first message")
	v.AddError("version", "second message")

	assert.Equal(t, map[string]string{"version": "first message"}, v.Errors)
}

func TestMatches(t *testing.T) {
	rx := regexp.MustCompile(`^[0-9]+$`)

	assert.True(t, Matches("123", rx))
	assert.False(t, Matches("12a", rx))
}

func TestMaxChars(t *testing.T) {
	tests := []struct {
		value string
		n     int
		want  bool
	}{
		{"", 0, true},
		{"abc", 3, true},
		{"abcd", 3, false},
		{"ééé", 3, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxChars(tt.value, tt.n), "%q/%d", tt.value, tt.n)
	}
}
