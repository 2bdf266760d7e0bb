package holiday

import (
	"context"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.HolidayRepository.GetByDate(ctx, req.ParsedDate())
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	if existing != nil {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.PaidHoliday{
		Date:     req.ParsedDate(),
		Name:     req.Name,
		Year:     req.ParsedDate().Year(),
		IsActive: isActive,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapToResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, mapToResponse(h))
	}
	return responses, nil
}

// UpdateHoliday implements holiday.HolidayService. Toggling is_active is the
// usual edit: a deactivated holiday drops out of every summary immediately.
func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	h, err := s.HolidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	now := time.Now().UTC()
	h.UpdatedAt = &now

	if err := s.HolidayRepository.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapToResponse(h), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if _, err := s.HolidayRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.HolidayRepository.Delete(ctx, id)
}

func mapToResponse(h holiday.PaidHoliday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:       h.ID,
		Date:     h.Date.Format("2006-01-02"),
		Name:     h.Name,
		Year:     h.Year,
		IsActive: h.IsActive,
	}
}
