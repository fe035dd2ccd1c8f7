package domain

import "github.com/shopspring/decimal"

// Charge is the per-tool-type charge policy: the daily rate plus three
// independent flags declaring which day buckets are billable.
type Charge struct {
	ID            int64           `json:"id"`
	ToolType      ToolType        `json:"tool_type"`
	DailyCharge   decimal.Decimal `json:"daily_charge"`
	WeekdayCharge bool            `json:"weekday_charge"`
	WeekendCharge bool            `json:"weekend_charge"`
	HolidayCharge bool            `json:"holiday_charge"`
}

// Charges is the result of a charge calculation for one rental period.
type Charges struct {
	DailyCharge   decimal.Decimal `json:"daily_charge"`
	ChargedDays   int             `json:"charged_days"`
	ChargedAmount decimal.Decimal `json:"charged_amount"`
}
