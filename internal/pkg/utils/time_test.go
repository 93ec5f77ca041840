package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo12HourDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"morning", "09:05", "9:05 AM"},
		{"noon", "12:00", "12:00 PM"},
		{"afternoon", "14:30", "2:30 PM"},
		{"midnight", "00:15", "12:15 AM"},
		{"with seconds", "23:45:00", "11:45 PM"},
		{"rfc3339", "2025-03-05T10:15:00Z", "10:15 AM"},
		{"empty", "", ""},
		{"garbage", "not-a-time", ""},
		{"out of range", "25:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, To12HourDisplay(tt.input))
		})
	}
}

func TestAddFixedDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		minutes  int
		expected string
	}{
		{"same hour", "10:00", 30, "10:30"},
		{"past the hour", "10:45", 30, "11:15"},
		{"past midnight", "23:45", 30, "00:15"},
		{"negative wraps back", "00:10", -30, "23:40"},
		{"full day", "08:00", 24 * 60, "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AddFixedDuration(tt.input, tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := AddFixedDuration("bogus", 30)
	assert.Error(t, err)
}

func TestConsultationEndAndRange(t *testing.T) {
	end, err := ConsultationEnd("10:15")
	require.NoError(t, err)
	assert.Equal(t, "10:45", end)

	assert.Equal(t, "10:15 AM - 10:45 AM", FormatSlotRange("10:15"))
	assert.Equal(t, "11:45 PM - 12:15 AM", FormatSlotRange("23:45"))
	assert.Equal(t, "", FormatSlotRange("bad"))
}

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"2025-03-05", "2025-03-05", false},
		{"05-03-2025", "2025-03-05", false},
		{"2025-03-05T00:00:00Z", "2025-03-05", false},
		{" 2025-03-05 ", "2025-03-05", false},
		{"2025-02-30", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParseCalendarDate(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, result)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "05 Mar 2025", FormatDisplayDate("2025-03-05"))
	assert.Equal(t, "someday", FormatDisplayDate("someday"))
}

func TestIsTimeWithinRange(t *testing.T) {
	assert.True(t, IsTimeWithinRange("09:00", "09:00", "17:00"), "start is inclusive")
	assert.True(t, IsTimeWithinRange("16:59", "09:00", "17:00"))
	assert.False(t, IsTimeWithinRange("17:00", "09:00", "17:00"), "end is exclusive")
	assert.False(t, IsTimeWithinRange("08:59", "09:00", "17:00"))
	assert.True(t, IsTimeWithinRange("23:30", "22:00", "02:00"), "overnight window")
	assert.True(t, IsTimeWithinRange("01:00", "22:00", "02:00"), "overnight window")
	assert.False(t, IsTimeWithinRange("03:00", "22:00", "02:00"))
	assert.False(t, IsTimeWithinRange("10:00", "bad", "17:00"))
}
