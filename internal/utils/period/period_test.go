package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	defFrom, defTo := date(2024, 3, 1), date(2024, 3, 31)

	tests := []struct {
		name             string
		from, to         string
		wantFrom, wantTo string
	}{
		{"both given", "2024-03-02", "2024-03-20", "2024-03-02", "2024-03-20"},
		{"to before from is clamped", "2024-03-10", "2024-03-01", "2024-03-10", "2024-03-10"},
		{"missing values take defaults", "", "", "2024-03-01", "2024-03-31"},
		{"malformed values take defaults", "10/03/2024", "2024-13-40", "2024-03-01", "2024-03-31"},
		{"default to before given from is clamped", "2024-04-15", "", "2024-04-15", "2024-04-15"},
		{"whitespace is ignored", " 2024-03-05 ", "2024-03-06", "2024-03-05", "2024-03-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Days(tt.from, tt.to, defFrom, defTo)
			assert.Equal(t, tt.wantFrom, r.FromDisplay)
			assert.Equal(t, tt.wantTo, r.ToDisplay)
			assert.Equal(t, tt.wantFrom, r.From.Format(DayLayout))
			assert.Equal(t, tt.wantTo, r.To.Format(DayLayout))
		})
	}
}

func TestCurrentMonthDays(t *testing.T) {
	from, to := CurrentMonthDays(time.Date(2024, 2, 17, 15, 4, 5, 0, time.Local))
	assert.Equal(t, date(2024, 2, 1), from)
	assert.Equal(t, date(2024, 2, 29), to, "leap year February")
}

func TestMonths(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("previous month policy without params", func(t *testing.T) {
		r := Months("", "", MonthPrevious, now)
		assert.Equal(t, "2024-02", r.FromDisplay)
		assert.Equal(t, "2024-02", r.ToDisplay)
		assert.Equal(t, date(2024, 2, 1), r.From)
		assert.Equal(t, date(2024, 2, 29), r.To)
	})

	t.Run("previous month across a year boundary", func(t *testing.T) {
		r := Months("", "", MonthPrevious, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "2024-12", r.FromDisplay)
		assert.Equal(t, date(2024, 12, 31), r.To)
	})

	t.Run("current month policy", func(t *testing.T) {
		r := Months("", "", MonthCurrent, now)
		assert.Equal(t, date(2024, 3, 1), r.From)
		assert.Equal(t, date(2024, 3, 31), r.To)
	})

	t.Run("unbounded policy leaves missing bounds open", func(t *testing.T) {
		r := Months("", "", MonthUnbounded, now)
		assert.False(t, r.HasFrom())
		assert.False(t, r.HasTo())
		assert.Empty(t, r.FromDisplay)
		assert.True(t, r.Contains(date(1999, 1, 1)))

		r = Months("2023-11", "junk", MonthUnbounded, now)
		assert.Equal(t, date(2023, 11, 1), r.From)
		assert.False(t, r.HasTo())
	})

	t.Run("to before from is clamped", func(t *testing.T) {
		r := Months("2024-05", "2024-01", MonthCurrent, now)
		assert.Equal(t, "2024-05", r.FromDisplay)
		assert.Equal(t, "2024-05", r.ToDisplay)
		assert.Equal(t, date(2024, 5, 31), r.To)
	})

	t.Run("explicit range expands to whole months", func(t *testing.T) {
		r := Months("2023-11", "2024-02", MonthCurrent, now)
		assert.Equal(t, date(2023, 11, 1), r.From)
		assert.Equal(t, date(2024, 2, 29), r.To)
	})
}

func TestRange_Contains(t *testing.T) {
	r := Days("2024-03-01", "2024-03-31", time.Time{}, time.Time{})
	assert.True(t, r.Contains(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(date(2024, 4, 1)))
	assert.False(t, r.Contains(date(2024, 2, 29)))
}
