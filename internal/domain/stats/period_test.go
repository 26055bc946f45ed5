package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeekStartsMonday(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	w, err := Resolve(PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	now := time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC)

	w, err := Resolve(PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2025, 2, 20, 12, 0, 0, 0, time.UTC)

	w, err := Resolve(PeriodMonth, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveQuarter(t *testing.T) {
	now := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)

	w, err := Resolve(PeriodQuarter, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	w, err := Resolve(PeriodYear, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), w.End)
}

func TestResolveInvalidPeriod(t *testing.T) {
	_, err := Resolve(Period("fortnight"), time.Now())
	assert.Error(t, err)
}

func TestWindowContainsIsHalfOpen(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End.Add(-time.Second)))
	assert.False(t, w.Contains(w.End))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
}
