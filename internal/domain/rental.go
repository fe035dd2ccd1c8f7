package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusCreated    RentalStatus = "CREATED"
	RentalStatusCheckedOut RentalStatus = "CHECKED_OUT"
	RentalStatusCheckedIn  RentalStatus = "CHECKED_IN"
	RentalStatusCancelled  RentalStatus = "CANCELLED"
)

// CanTransitionTo reports whether the rental state machine allows moving
// from s to next. CHECKED_IN and CANCELLED are terminal.
func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	switch s {
	case RentalStatusCreated:
		return next == RentalStatusCheckedOut || next == RentalStatusCancelled
	case RentalStatusCheckedOut:
		return next == RentalStatusCheckedIn
	default:
		return false
	}
}

// Rental occupies the dayCount calendar days strictly after the check-out
// date through the due date. Dates are plain calendar days (UTC midnight);
// timezone is not strictly required.
type Rental struct {
	ID              int64           `json:"id"`
	CheckOutDate    time.Time       `json:"check_out_date"`
	DayCount        int             `json:"day_count"`
	DiscountPercent int             `json:"discount_percent"`
	Status          RentalStatus    `json:"status"`
	ChargeAmount    decimal.Decimal `json:"charge_amount"`
	CustomerID      int64           `json:"customer_id"`
	ToolCode        string          `json:"tool_code"`

	// Derived at charge-calculation time, never persisted.
	ChargedDaysCount int             `json:"charged_days_count,omitempty"`
	DailyCharge      decimal.Decimal `json:"daily_charge,omitempty"`
}

// DueDate is the last occupied day of the rental.
func (r *Rental) DueDate() time.Time {
	return r.CheckOutDate.AddDate(0, 0, r.DayCount)
}

// DiscountAmount is chargeAmount * discountPercent / 100, rounded half-up
// to 2 decimals.
func (r *Rental) DiscountAmount() decimal.Decimal {
	return r.ChargeAmount.
		Mul(decimal.NewFromInt(int64(r.DiscountPercent))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

// FinalCharge is the pre-discount charge minus the discount amount.
func (r *Rental) FinalCharge() decimal.Decimal {
	return r.ChargeAmount.Sub(r.DiscountAmount())
}
