package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h PaidHoliday) (PaidHoliday, error)
	GetByID(ctx context.Context, id string) (PaidHoliday, error)
	// GetByDate returns nil when no holiday exists for the date.
	GetByDate(ctx context.Context, date time.Time) (*PaidHoliday, error)
	ListByYear(ctx context.Context, year int) ([]PaidHoliday, error)
	// ActiveDatesInRange returns active holiday dates with date in [start, end).
	ActiveDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error)
	Update(ctx context.Context, h PaidHoliday) error
	Delete(ctx context.Context, id string) error
}
