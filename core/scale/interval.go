package scale

import (
	"math"
	"time"
)

type unit int

const (
	unitFixed unit = iota // sub-day durations aligned on the local day
	unitDay
	unitWeek
	unitMonth
	unitYear
)

// interval is a calendar-aware tick step.
type interval struct {
	unit  unit
	step  int
	fixed time.Duration
	span  time.Duration // approximate length, for choosing between candidates
}

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

var tickIntervals = []interval{
	{unitFixed, 1, time.Second, time.Second},
	{unitFixed, 5, 5 * time.Second, 5 * time.Second},
	{unitFixed, 15, 15 * time.Second, 15 * time.Second},
	{unitFixed, 30, 30 * time.Second, 30 * time.Second},
	{unitFixed, 1, time.Minute, time.Minute},
	{unitFixed, 5, 5 * time.Minute, 5 * time.Minute},
	{unitFixed, 15, 15 * time.Minute, 15 * time.Minute},
	{unitFixed, 30, 30 * time.Minute, 30 * time.Minute},
	{unitFixed, 1, time.Hour, time.Hour},
	{unitFixed, 3, 3 * time.Hour, 3 * time.Hour},
	{unitFixed, 6, 6 * time.Hour, 6 * time.Hour},
	{unitFixed, 12, 12 * time.Hour, 12 * time.Hour},
	{unitDay, 1, 0, day},
	{unitDay, 2, 0, 2 * day},
	{unitWeek, 1, 0, week},
	{unitMonth, 1, 0, month},
	{unitMonth, 3, 0, 3 * month},
	{unitYear, 1, 0, year},
}

// tickInterval picks the interval whose length is closest to span/count.
// Spans longer than the largest candidate use a whole number of years.
func tickInterval(start, stop time.Time, count int) interval {
	target := stop.Sub(start) / time.Duration(count)
	last := tickIntervals[len(tickIntervals)-1]
	if target > last.span {
		years := niceStep(target.Hours() / year.Hours())
		return interval{unit: unitYear, step: years, span: time.Duration(years) * year}
	}
	best := tickIntervals[0]
	for _, iv := range tickIntervals {
		if absDuration(iv.span-target) < absDuration(best.span-target) {
			best = iv
		}
	}
	return best
}

// floor rounds t down to the interval boundary in t's own zone.
func (iv interval) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch iv.unit {
	case unitDay:
		return time.Date(y, m, d-(d-1)%iv.step, 0, 0, 0, 0, loc)
	case unitWeek:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case unitMonth:
		return time.Date(y, m-time.Month((int(m)-1)%iv.step), 1, 0, 0, 0, 0, loc)
	case unitYear:
		return time.Date(y-y%iv.step, time.January, 1, 0, 0, 0, 0, loc)
	default:
		midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)
		return midnight.Add(t.Sub(midnight).Truncate(iv.fixed))
	}
}

// offset advances t by one interval step.
func (iv interval) offset(t time.Time) time.Time {
	switch iv.unit {
	case unitDay:
		return t.AddDate(0, 0, iv.step)
	case unitWeek:
		return t.AddDate(0, 0, 7*iv.step)
	case unitMonth:
		return t.AddDate(0, iv.step, 0)
	case unitYear:
		return t.AddDate(iv.step, 0, 0)
	default:
		return t.Add(iv.fixed)
	}
}

// niceStep rounds v up to 1, 2 or 5 times a power of ten.
func niceStep(v float64) int {
	if v <= 1 {
		return 1
	}
	power := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*power {
			return int(m * power)
		}
	}
	return int(10 * power)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
