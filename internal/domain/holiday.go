package domain

import (
	"fmt"
	"time"
)

type HolidayType string

const (
	HolidayTypeExactDayOfMonth      HolidayType = "EXACT_DAY_OF_MONTH"
	HolidayTypeFirstDayOfWeekInMonth HolidayType = "FIRST_DAY_OF_WEEK_IN_MONTH"
	HolidayTypeLastDayOfWeekInMonth  HolidayType = "LAST_DAY_OF_WEEK_IN_MONTH"
)

// Holiday is a floating holiday rule. DayNumber is a day of month (1..31)
// for EXACT_DAY_OF_MONTH, otherwise an ISO-8601 day of week (1=Monday..7=Sunday).
type Holiday struct {
	ID                       int64       `json:"id"`
	Name                     string      `json:"name"`
	HolidayType              HolidayType `json:"holiday_type"`
	MonthNumber              int         `json:"month_number"`
	DayNumber                int         `json:"day_number"`
	ObservedOnClosestWeekday bool        `json:"observed_on_closest_weekday"`
}

// Resolve computes the concrete calendar date of the holiday in the given
// year. Pure: identical inputs always yield the identical date.
func (h Holiday) Resolve(year int) (time.Time, error) {
	if h.MonthNumber < 1 || h.MonthNumber > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range for %q", ErrInvalidRule, h.MonthNumber, h.Name)
	}

	var resolved time.Time
	switch h.HolidayType {
	case HolidayTypeExactDayOfMonth:
		if h.DayNumber < 1 || h.DayNumber > DaysInMonth(year, h.MonthNumber) {
			return time.Time{}, fmt.Errorf("%w: day %d does not exist in %d-%02d for %q",
				ErrInvalidRule, h.DayNumber, year, h.MonthNumber, h.Name)
		}
		resolved = time.Date(year, time.Month(h.MonthNumber), h.DayNumber, 0, 0, 0, 0, time.UTC)

	case HolidayTypeFirstDayOfWeekInMonth:
		if h.DayNumber < 1 || h.DayNumber > 7 {
			return time.Time{}, fmt.Errorf("%w: weekday %d out of range for %q", ErrInvalidRule, h.DayNumber, h.Name)
		}
		first := time.Date(year, time.Month(h.MonthNumber), 1, 0, 0, 0, 0, time.UTC)
		offset := (h.DayNumber - isoWeekday(first) + 7) % 7
		resolved = first.AddDate(0, 0, offset)

	case HolidayTypeLastDayOfWeekInMonth:
		if h.DayNumber < 1 || h.DayNumber > 7 {
			return time.Time{}, fmt.Errorf("%w: weekday %d out of range for %q", ErrInvalidRule, h.DayNumber, h.Name)
		}
		last := time.Date(year, time.Month(h.MonthNumber), DaysInMonth(year, h.MonthNumber), 0, 0, 0, 0, time.UTC)
		offset := (isoWeekday(last) - h.DayNumber + 7) % 7
		resolved = last.AddDate(0, 0, -offset)

	default:
		return time.Time{}, fmt.Errorf("%w: unknown holiday type %q for %q", ErrInvalidRule, h.HolidayType, h.Name)
	}

	if h.ObservedOnClosestWeekday {
		switch resolved.Weekday() {
		case time.Saturday:
			resolved = resolved.AddDate(0, 0, -1)
		case time.Sunday:
			resolved = resolved.AddDate(0, 0, 1)
		}
	}

	return resolved, nil
}

// isoWeekday maps time.Weekday to ISO-8601 numbering (1=Monday..7=Sunday).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}
