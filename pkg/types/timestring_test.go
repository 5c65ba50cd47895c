package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidTimeSlot(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidTimeSlot(s), s)
	}

	invalid := []string{"", "9:00", "09:0", "0900", "09:00:00", " 09:00", "09:00 ", "ab:cd", "24h"}
	for _, s := range invalid {
		assert.False(t, IsValidTimeSlot(s), s)
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	// Pattern match alone is not enough; the value must parse as a clock time
	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:30").IsBefore("09:45"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = TimeString("not a time").AddMinutes(10)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 3, 10, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}
