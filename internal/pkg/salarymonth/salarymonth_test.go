package salarymonth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFor(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		startDay  int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "day before anchor belongs to previous window",
			ref:       date(2024, time.March, 3),
			startDay:  6,
			wantStart: date(2024, time.February, 6),
			wantEnd:   date(2024, time.March, 5),
		},
		{
			name:      "anchor day starts a new window",
			ref:       date(2024, time.March, 6),
			startDay:  6,
			wantStart: date(2024, time.March, 6),
			wantEnd:   date(2024, time.April, 5),
		},
		{
			name:      "mid window",
			ref:       date(2024, time.March, 20),
			startDay:  6,
			wantStart: date(2024, time.March, 6),
			wantEnd:   date(2024, time.April, 5),
		},
		{
			name:      "start day 1 behaves like a calendar month",
			ref:       date(2024, time.July, 15),
			startDay:  1,
			wantStart: date(2024, time.July, 1),
			wantEnd:   date(2024, time.July, 31),
		},
		{
			name:      "january ref before anchor crosses the year boundary",
			ref:       date(2024, time.January, 2),
			startDay:  6,
			wantStart: date(2023, time.December, 6),
			wantEnd:   date(2024, time.January, 5),
		},
		{
			name:      "invalid start day falls back to the default",
			ref:       date(2024, time.March, 3),
			startDay:  0,
			wantStart: date(2024, time.February, 6),
			wantEnd:   date(2024, time.March, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := For(tt.ref, tt.startDay)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestKeyRoundTrip(t *testing.T) {
	// Key(FromKey(key)) must reproduce the key for every month of a year.
	for month := 1; month <= 12; month++ {
		key := fmt.Sprintf("2024-%02d", month)
		w, err := FromKey(key, 6)
		require.NoError(t, err)
		assert.Equal(t, key, Key(w))
	}
}

func TestFromKeyInvalid(t *testing.T) {
	_, err := FromKey("2024-13", 6)
	assert.Error(t, err)

	_, err = FromKey("not-a-key", 6)
	assert.Error(t, err)
}

func TestWindowCoversEveryDayExactlyOnce(t *testing.T) {
	// Consecutive windows must tile the calendar with no gap or overlap.
	w := For(date(2024, time.February, 10), 6)
	next := For(w.End.AddDate(0, 0, 1), 6)

	assert.Equal(t, w.End.AddDate(0, 0, 1), next.Start)
}

func TestDays(t *testing.T) {
	w := For(date(2024, time.March, 3), 6)
	days := w.Days()

	// [2024-02-06, 2024-03-05] in a leap year is 29 days.
	require.Len(t, days, 29)
	assert.Equal(t, w.Start, days[0])
	assert.Equal(t, w.End, days[len(days)-1])
}

func TestContains(t *testing.T) {
	w := For(date(2024, time.March, 3), 6)

	assert.True(t, w.Contains(date(2024, time.February, 6)))
	assert.True(t, w.Contains(date(2024, time.March, 5)))
	assert.False(t, w.Contains(date(2024, time.February, 5)))
	assert.False(t, w.Contains(date(2024, time.March, 6)))
}

func TestSundaysInYear(t *testing.T) {
	sundays := SundaysInYear(2024)

	// 2024 has 52 Sundays, starting on January 7.
	require.Len(t, sundays, 52)
	assert.Equal(t, "2024-01-07", sundays[0])
	assert.Equal(t, "2024-12-29", sundays[len(sundays)-1])

	for _, s := range sundays {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, d.Weekday())
	}
}

func TestSundaysIn(t *testing.T) {
	w := For(date(2024, time.March, 3), 6)
	sundays := SundaysIn(w)

	// Sundays in [2024-02-06, 2024-03-05]: Feb 11, 18, 25 and Mar 3.
	assert.Equal(t, []string{"2024-02-11", "2024-02-18", "2024-02-25", "2024-03-03"}, sundays)
}
