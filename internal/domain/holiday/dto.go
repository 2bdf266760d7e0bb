package holiday

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`

	date time.Time
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	d, ok := validator.IsValidDate(r.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	} else {
		r.date = d
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate returns the parsed date; call Validate first.
func (r *CreateHolidayRequest) ParsedDate() time.Time {
	return r.date
}

type UpdateHolidayRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	IsActive bool   `json:"is_active"`
}
