package busdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Jdash99/workingdays-back/internal/holidays"
)

func date(y int, m time.Month, d int) holidays.Date {
	return holidays.NewDate(y, m, d)
}

func holidayOn(dates ...holidays.Date) IsHolidayFunc {
	set := map[holidays.Date]bool{}
	for _, d := range dates {
		set[d] = true
	}
	return func(d holidays.Date) bool { return set[d] }
}

func TestCount(t *testing.T) {
	// Jan 1, 2023 was a Sunday; Jan 2-6 and Jan 9-10 are weekdays
	start := date(2023, time.January, 1)
	stop := date(2023, time.January, 11)

	assert.Equal(t, 7, Count(start, stop, nil))

	// the observed Epiphany on Monday Jan 9 removes one working day
	assert.Equal(t, 6, Count(start, stop, holidayOn(date(2023, time.January, 9))))

	// weekend holidays change nothing
	assert.Equal(t, 7, Count(start, stop, holidayOn(date(2023, time.January, 8))))

	// empty and reversed ranges
	assert.Equal(t, 0, Count(start, start, nil))
	assert.Equal(t, -7, Count(stop, start, nil))
}

func TestWeekendCount(t *testing.T) {
	// Jan 1, 7 and 8 are the weekend days in [Jan 1, Jan 11)
	assert.Equal(t, 3, WeekendCount(date(2023, time.January, 1), date(2023, time.January, 11)))
	assert.Equal(t, 0, WeekendCount(date(2023, time.January, 2), date(2023, time.January, 7)))
}

func TestOffset(t *testing.T) {
	thu := date(2023, time.January, 5)

	// zero offset rolls forward only
	assert.Equal(t, thu, Offset(thu, 0, nil))
	assert.Equal(t, date(2023, time.January, 9), Offset(date(2023, time.January, 7), 0, nil))

	// weekends are skipped
	assert.Equal(t, date(2023, time.January, 6), Offset(thu, 1, nil))
	assert.Equal(t, date(2023, time.January, 9), Offset(thu, 2, nil))

	// holidays are skipped too
	epiphany := holidayOn(date(2023, time.January, 9))
	assert.Equal(t, date(2023, time.January, 10), Offset(thu, 2, epiphany))

	// rolled start that lands on a holiday keeps rolling
	assert.Equal(t, date(2023, time.January, 10), Offset(date(2023, time.January, 7), 0, epiphany))

	// negative offsets walk backward
	assert.Equal(t, date(2023, time.January, 4), Offset(thu, -1, nil))
	assert.Equal(t, date(2023, time.January, 5), Offset(date(2023, time.January, 10), -2, epiphany))
}
