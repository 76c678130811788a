package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- parsing and formatting tests --

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 15), d)
	assert.Equal(t, "2024-01-15", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("15/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2023, time.December, 31)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-12-31"`, string(raw))

	var decoded Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDate_UnmarshalRejectsNonString(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`20240115`), &d))
}

// -- arithmetic tests --

func TestDate_AddDays(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	assert.Equal(t, NewDate(2023, time.December, 31), start.AddDays(-1))
	assert.Equal(t, NewDate(2024, time.January, 31), start.AddDays(30))
}

func TestDate_FirstOfMonth(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.January, 1), NewDate(2024, time.January, 15).FirstOfMonth())
	assert.Equal(t, NewDate(2024, time.January, 1), NewDate(2024, time.January, 1).FirstOfMonth())
}

func TestDate_Comparisons(t *testing.T) {
	earlier := NewDate(2024, time.January, 1)
	later := NewDate(2024, time.January, 2)

	assert.True(t, later.OnOrAfter(earlier))
	assert.True(t, earlier.OnOrAfter(earlier))
	assert.False(t, earlier.OnOrAfter(later))

	assert.True(t, earlier.OnOrBefore(later))
	assert.True(t, earlier.OnOrBefore(earlier))
	assert.False(t, later.OnOrBefore(earlier))
}
