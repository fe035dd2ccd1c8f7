package domain

// DayCounts partitions the occupied days of a rental into four disjoint
// buckets. The four counts always sum to the rental day count.
type DayCounts struct {
	Weekdays          int `json:"weekdays"`
	WeekendNonHoliday int `json:"weekend_non_holiday"`
	HolidayNonWeekend int `json:"holiday_non_weekend"`
	WeekendAndHoliday int `json:"weekend_and_holiday"`
}

// Total returns the sum of all four buckets.
func (c DayCounts) Total() int {
	return c.Weekdays + c.WeekendNonHoliday + c.HolidayNonWeekend + c.WeekendAndHoliday
}
