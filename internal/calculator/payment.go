package calculator

import "time"

// AddMonths returns t advanced by the given number of calendar months.
//
// When the target month is shorter than t's day of month, the result is
// clamped to the last day of that month (Jan 31 + 1 month = Feb 28/29).
// The time of day and location are preserved.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// NextPaymentDate returns the smallest date of the form start + k months
// (k >= 0) that is strictly after now.
//
// Every candidate is computed from start itself, so a lease starting on the
// 31st is due on the last day of short months and back on the 31st afterwards
// (Jan 31 -> Feb 29 -> Mar 31 -> Apr 30).
func NextPaymentDate(start, now time.Time) time.Time {
	k := monthsBetween(start, now) - 1
	if k < 0 {
		k = 0
	}
	for {
		next := AddMonths(start, k)
		if next.After(now) {
			return next
		}
		k++
	}
}

// DueDates lists every due date start + k months (k >= 0) that is on or
// before through and strictly before end.
func DueDates(start, end, through time.Time) []time.Time {
	var dates []time.Time
	for k := 0; ; k++ {
		due := AddMonths(start, k)
		if due.After(through) || !due.Before(end) {
			return dates
		}
		dates = append(dates, due)
	}
}

// monthsBetween counts calendar month boundaries from a to b.
// start + (monthsBetween-1) months always falls before b's month.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
