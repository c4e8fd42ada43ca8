package rental

import (
	"time"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/datex"
)

// Rental pricing: the first graceDays are billed at the base rate, every
// day after that at the discounted rate. A same-day return costs nothing.
const (
	graceDays      = 3
	baseRate       = 1.0
	discountedRate = 0.5
)

// Fee computes the rental fee for a finished episode. Days are counted as
// end minus start, inclusive-start/exclusive-end. Callers must pass
// end >= start; Return derives end from the clock so that always holds.
func Fee(start, end time.Time) float64 {
	days := datex.DaysBetween(start, end)
	if days <= graceDays {
		return float64(days) * baseRate
	}
	return graceDays*baseRate + float64(days-graceDays)*discountedRate
}
