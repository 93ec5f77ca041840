package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"international", "+923001234567", "+********4567"},
		{"with separators", "+1 555-123-4567", "+* ***-***-4567"},
		{"local", "03001234567", "*******4567"},
		{"too short", "1234", "1234"},
		{"five digits", "12345", "*2345"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskPhoneNumber(tt.input))
		})
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+923001234567", NormalizePhoneNumber(" +92 (300) 123-4567 "))
	assert.Equal(t, "03001234567", NormalizePhoneNumber("0300 1234567"))
}
