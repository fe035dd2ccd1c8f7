package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

// ChargeService computes rental charges adjusted for weekends and holidays.
type ChargeService struct {
	chargeRepo repository.ChargeRepository
	calendar   *CalendarService
}

func NewChargeService(chargeRepo repository.ChargeRepository, calendar *CalendarService) *ChargeService {
	return &ChargeService{
		chargeRepo: chargeRepo,
		calendar:   calendar,
	}
}

// CalculateCharges looks up the charge policy for the tool type, classifies
// the rental days and bills the chargeable buckets. A day that is both
// weekend and holiday is billed only when both flags are set, never twice.
func (s *ChargeService) CalculateCharges(ctx context.Context, toolType domain.ToolType, checkOutDate time.Time, dayCount int) (domain.Charges, error) {
	counts, err := s.calendar.DayCounts(checkOutDate, dayCount)
	if err != nil {
		return domain.Charges{}, err
	}

	charge, err := s.chargeRepo.GetByToolType(ctx, toolType)
	if err != nil {
		return domain.Charges{}, err
	}

	chargedDays := chargedDays(charge.WeekdayCharge, counts.Weekdays) +
		chargedDays(charge.WeekendCharge, counts.WeekendNonHoliday) +
		chargedDays(charge.HolidayCharge, counts.HolidayNonWeekend) +
		chargedDays(charge.WeekendCharge && charge.HolidayCharge, counts.WeekendAndHoliday)

	chargedAmount := charge.DailyCharge.
		Mul(decimal.NewFromInt(int64(chargedDays))).
		Round(2)

	return domain.Charges{
		DailyCharge:   charge.DailyCharge,
		ChargedDays:   chargedDays,
		ChargedAmount: chargedAmount,
	}, nil
}

// ListCharges returns all charge policies on file.
func (s *ChargeService) ListCharges(ctx context.Context) ([]domain.Charge, error) {
	return s.chargeRepo.ListAll(ctx)
}

func chargedDays(chargeable bool, count int) int {
	if chargeable {
		return count
	}
	return 0
}
