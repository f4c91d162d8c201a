package dataset

import "time"

// BucketDate returns the calendar date of a bucket ordinal in the given
// year: the Sunday of ISO week ordinal for weekly series, the last day of
// month ordinal for monthly series.
//
// The second return is false when the ordinal does not exist in that year
// (week 53 of a 52-week year, months outside 1..12). Weekly dates are
// checked against the ISO year so a trailing week 53 never leaks into the
// following year's output.
func BucketDate(unit TimeUnit, year, ordinal int) (time.Time, bool) {
	switch unit {
	case TimeUnitWeekly:
		if ordinal < 1 || ordinal > 53 {
			return time.Time{}, false
		}
		d := isoWeekSunday(year, ordinal)
		if isoYear, _ := d.ISOWeek(); isoYear != year {
			return time.Time{}, false
		}
		return d, true
	case TimeUnitMonthly:
		if ordinal < 1 || ordinal > 12 {
			return time.Time{}, false
		}
		// Day 0 of the next month normalizes to the last day of this one.
		return time.Date(year, time.Month(ordinal+1), 0, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}

// Ordinal returns the bucket ordinal of a date: its ISO week number for
// weekly series, its month for monthly series. The first return is the
// bucket year, which for weekly series is the ISO year and can differ from
// the calendar year at year boundaries.
func Ordinal(unit TimeUnit, d time.Time) (year, ordinal int) {
	if unit == TimeUnitWeekly {
		return d.ISOWeek()
	}
	return d.Year(), int(d.Month())
}

// WeeksIn reports the number of ISO weeks in a year: 52 or 53.
func WeeksIn(year int) int {
	// December 28 is always in the last ISO week of its year.
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// isoWeekSunday returns the Sunday (last day) of the given ISO week.
func isoWeekSunday(year, week int) time.Time {
	// January 4 is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -sinceMonday)
	return week1Monday.AddDate(0, 0, (week-1)*7+6)
}
