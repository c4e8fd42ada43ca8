package datex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAndFormat(t *testing.T) {
	d, err := Parse("2023-12-18")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC), d)
	require.Equal(t, "2023-12-18", Format(d))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("18-12-2023")
	require.Error(t, err)
	_, err = Parse("")
	require.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		d, err := Parse(s)
		require.NoError(t, err)
		return d
	}

	require.Equal(t, 0, DaysBetween(day("2023-12-18"), day("2023-12-18")))
	require.Equal(t, 3, DaysBetween(day("2023-12-18"), day("2023-12-21")))
	require.Equal(t, 5, DaysBetween(day("2023-12-28"), day("2024-01-02")))
	require.Equal(t, -2, DaysBetween(day("2023-12-20"), day("2023-12-18")))
}

func TestParseRange(t *testing.T) {
	s, e, err := ParseRange("2023-12-15", "2023-12-31")
	require.NoError(t, err)
	require.True(t, s.Before(e))

	// same day is a valid window
	_, _, err = ParseRange("2023-12-15", "2023-12-15")
	require.NoError(t, err)

	_, _, err = ParseRange("2023-12-31", "2023-12-15")
	require.ErrorIs(t, err, ErrBadRange)

	_, _, err = ParseRange("", "2023-12-15")
	require.Error(t, err)
}
