package stats

import (
	"time"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/httperr"
)

type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Window is a half-open [Start, End) interval in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Resolve maps a period to the calendar window containing now, in UTC.
// Weeks start on Monday.
func Resolve(p Period, now time.Time) (Window, error) {
	now = now.UTC()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	switch p {
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7 // Monday = 0
		start := today.AddDate(0, 0, -offset)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}, nil

	case PeriodMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil

	case PeriodQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		start := time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(0, 3, 0)}, nil

	case PeriodYear:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}, nil
	}

	return Window{}, httperr.ErrBusiness(httperr.CodeValidation)
}
