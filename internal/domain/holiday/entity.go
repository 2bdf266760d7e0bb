package holiday

import "time"

// PaidHoliday is a date payable without attendance while is_active is true.
type PaidHoliday struct {
	ID        string
	Date      time.Time
	Name      string
	Year      int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
