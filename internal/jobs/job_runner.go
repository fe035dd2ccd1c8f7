package jobs

import (
	"context"
	"time"

	"toolrent-backend/internal/config"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/service"
)

// JobRunner holds the dependencies shared by scheduled jobs.
type JobRunner struct {
	cfg      *config.Config
	calendar *service.CalendarService
}

func NewJobRunner(cfg *config.Config, calendar *service.CalendarService) *JobRunner {
	return &JobRunner{
		cfg:      cfg,
		calendar: calendar,
	}
}

// Config returns the application configuration.
func (r *JobRunner) Config() *config.Config {
	return r.cfg
}

// RefreshHolidayCalendar reloads the holiday rule snapshot so that edits to
// the holiday store become visible without a restart.
func (r *JobRunner) RefreshHolidayCalendar() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("Running job: RefreshHolidayCalendar")
	if err := r.calendar.Refresh(ctx); err != nil {
		logger.Error("RefreshHolidayCalendar failed", "error", err)
		return
	}
	logger.Info("RefreshHolidayCalendar completed", "rules", len(r.calendar.Holidays()))
}
