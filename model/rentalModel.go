// model/rental.go
package model

import "time"

// Rental is one rental episode in the history ledger. EndDate == nil means
// the rental is still open; TotalCost stays 0 until the return finalizes it.
// Rows are permanent history and are never deleted.
type Rental struct {
	ID        int64      `json:"id"`
	ISBN      string     `json:"isbn"`
	UserID    int64      `json:"user_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	TotalCost float64    `json:"total_cost"`
}

// Open reports whether the book is still checked out on this record.
func (r *Rental) Open() bool { return r.EndDate == nil }
