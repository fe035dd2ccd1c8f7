package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

// CalendarService classifies the occupied days of a rental period into
// weekday/weekend/holiday buckets. Holiday rules are read from an immutable
// snapshot swapped atomically on Refresh, so classification is deterministic
// between refreshes and needs no locking.
type CalendarService struct {
	holidayRepo repository.HolidayRepository
	snapshot    atomic.Pointer[[]domain.Holiday]
}

func NewCalendarService(holidayRepo repository.HolidayRepository) *CalendarService {
	s := &CalendarService{holidayRepo: holidayRepo}
	empty := []domain.Holiday{}
	s.snapshot.Store(&empty)
	return s
}

// Refresh reloads the holiday rule snapshot from the store.
func (s *CalendarService) Refresh(ctx context.Context) error {
	holidays, err := s.holidayRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("refresh holiday calendar: %w", err)
	}
	s.snapshot.Store(&holidays)
	logger.Debug("Holiday calendar refreshed", "rules", len(holidays))
	return nil
}

// Holidays returns the current holiday rule snapshot.
func (s *CalendarService) Holidays() []domain.Holiday {
	return *s.snapshot.Load()
}

// DayCounts partitions the day range (checkOutDate, checkOutDate+dayCount]
// into the four disjoint buckets. The due date is included, the check-out
// day itself is not.
func (s *CalendarService) DayCounts(checkOutDate time.Time, dayCount int) (domain.DayCounts, error) {
	if checkOutDate.IsZero() {
		return domain.DayCounts{}, fmt.Errorf("%w: check-out date is required", domain.ErrInvalidInput)
	}
	if dayCount < 1 || dayCount > 365 {
		return domain.DayCounts{}, fmt.Errorf("%w: day count %d must be between 1 and 365", domain.ErrInvalidInput, dayCount)
	}

	checkOutDate = normalizeDate(checkOutDate)
	weekends := s.weekends(checkOutDate, dayCount)
	holidays, err := s.holidays(checkOutDate, dayCount)
	if err != nil {
		return domain.DayCounts{}, err
	}

	intersection := 0
	for day := range holidays {
		if _, ok := weekends[day]; ok {
			intersection++
		}
	}

	weekendsAndHolidays := intersection
	weekendsNonHolidays := len(weekends) - intersection
	holidaysNonWeekends := len(holidays) - intersection
	weekdays := dayCount - weekendsNonHolidays - holidaysNonWeekends - weekendsAndHolidays

	return domain.DayCounts{
		Weekdays:          weekdays,
		WeekendNonHoliday: weekendsNonHolidays,
		HolidayNonWeekend: holidaysNonWeekends,
		WeekendAndHoliday: weekendsAndHolidays,
	}, nil
}

func (s *CalendarService) weekends(checkOutDate time.Time, dayCount int) map[time.Time]struct{} {
	weekends := make(map[time.Time]struct{})
	for i := 1; i <= dayCount; i++ {
		day := checkOutDate.AddDate(0, 0, i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekends[day] = struct{}{}
		}
	}
	return weekends
}

func (s *CalendarService) holidays(checkOutDate time.Time, dayCount int) (map[time.Time]struct{}, error) {
	firstDay := checkOutDate.AddDate(0, 0, 1)
	lastDay := checkOutDate.AddDate(0, 0, dayCount)

	years := map[int]struct{}{firstDay.Year(): {}, lastDay.Year(): {}}

	holidays := make(map[time.Time]struct{})
	for _, rule := range s.Holidays() {
		for year := range years {
			resolved, err := rule.Resolve(year)
			if err != nil {
				return nil, err
			}
			if !resolved.Before(firstDay) && !resolved.After(lastDay) {
				holidays[resolved] = struct{}{}
			}
		}
	}
	return holidays, nil
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
