// Package pricing computes the cost breakdown for a rental date range.
// Quotes are pure: identical inputs always produce identical breakdowns.
package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the platform service fee applied on top of
// base rent.
const DefaultCommissionRate = 0.10

var (
	ErrMissingDates = errors.New("start and end dates are required")
	ErrInvalidRange = errors.New("end date must not be before start date")
	ErrInvalidRate  = errors.New("daily rate must be positive")
)

// Breakdown is the cost of renting an item for an inclusive date range.
type Breakdown struct {
	Days       int `json:"days"`
	BaseRent   int `json:"baseRent"`
	ServiceFee int `json:"serviceFee"`
	Total      int `json:"total"`
}

// Quote prices a rental from start to end inclusive at ratePerDay, with
// the service fee rounded up to the next whole currency unit.
func Quote(start, end time.Time, ratePerDay int, commissionRate float64) (Breakdown, error) {
	if start.IsZero() || end.IsZero() {
		return Breakdown{}, ErrMissingDates
	}
	if ratePerDay <= 0 {
		return Breakdown{}, ErrInvalidRate
	}

	days := InclusiveDays(start, end)
	if days < 1 {
		return Breakdown{}, ErrInvalidRange
	}

	baseRent := days * ratePerDay
	fee := decimal.NewFromInt(int64(baseRent)).
		Mul(decimal.NewFromFloat(commissionRate)).
		Ceil().
		IntPart()

	return Breakdown{
		Days:       days,
		BaseRent:   baseRent,
		ServiceFee: int(fee),
		Total:      baseRent + int(fee),
	}, nil
}

// InclusiveDays counts calendar days from start to end where both ends
// count as rental days: start == end yields 1. Time-of-day and timezone
// are ignored.
func InclusiveDays(start, end time.Time) int {
	s := toDate(start)
	e := toDate(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
