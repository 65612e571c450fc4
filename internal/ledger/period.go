// Package ledger holds the financial aggregation engine: pure computations
// that turn a raw transaction ledger plus budget and goal records into the
// derived figures the views display. Nothing in this package touches storage
// or carries state between calls.
package ledger

import (
	"time"

	"fintrack/internal/models"
)

// Period is an inclusive [Start, End] boundary pair covering one calendar
// month. Start is the first day at local midnight; End is the last instant
// before the following month begins. No timezone normalization happens here:
// a period is a calendar construct, and every downstream comparison must use
// the same location the period was resolved in.
type Period struct {
	Token string    `json:"month"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MonthPeriod resolves a "YYYY-MM" month token into its period boundaries.
// It is stable under month-length variation (28-31 days, leap February) and
// year rollover.
func MonthPeriod(token string) (Period, error) {
	parsed, err := time.ParseInLocation(models.MonthTokenLayout, token, time.Local)
	if err != nil {
		return Period{}, models.ErrInvalidMonthToken
	}

	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return Period{Token: token, Start: start, End: end}, nil
}

// PeriodForTime resolves the period of the month containing t.
func PeriodForTime(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Period{
		Token: start.Format(models.MonthTokenLayout),
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// CurrentMonthPeriod resolves the period for the current calendar month.
func CurrentMonthPeriod() Period {
	return PeriodForTime(time.Now())
}

// Contains reports whether t falls inside the period, boundaries included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
