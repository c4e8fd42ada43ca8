package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/datex"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := datex.Parse(s)
	require.NoError(t, err)
	return d
}

func TestFee(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"same day", "2023-12-18", "2023-12-18", 0},
		{"one day", "2023-12-18", "2023-12-19", 1},
		{"two days", "2023-12-18", "2023-12-20", 2},
		{"grace boundary", "2023-12-18", "2023-12-21", 3},
		{"first discounted day", "2023-12-18", "2023-12-22", 3.5},
		{"five days", "2023-12-18", "2023-12-23", 4.0},
		{"ten days", "2023-12-18", "2023-12-28", 6.5},
		{"across month boundary", "2023-12-28", "2024-01-02", 4.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fee(date(t, tc.start), date(t, tc.end))
			require.Equal(t, tc.want, got)
		})
	}
}
