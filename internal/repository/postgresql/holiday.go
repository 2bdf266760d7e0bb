package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

const holidayColumns = `id, date, name, year, is_active, created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.PaidHoliday, error) {
	var h holiday.PaidHoliday
	err := row.Scan(&h.ID, &h.Date, &h.Name, &h.Year, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.PaidHoliday) (holiday.PaidHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO paid_holidays (date, name, year, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Date, h.Name, h.Year, h.IsActive).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.PaidHoliday{}, holiday.ErrHolidayExists
		}
		return holiday.PaidHoliday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.PaidHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM paid_holidays WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.PaidHoliday{}, holiday.ErrHolidayNotFound
		}
		return holiday.PaidHoliday{}, fmt.Errorf("failed to get holiday by ID: %w", err)
	}

	return h, nil
}

func (r *holidayRepository) GetByDate(ctx context.Context, date time.Time) (*holiday.PaidHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM paid_holidays WHERE date = $1`, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday by date: %w", err)
	}

	return &h, nil
}

func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.PaidHoliday, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+holidayColumns+` FROM paid_holidays WHERE year = $1 ORDER BY date ASC`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.PaidHoliday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func (r *holidayRepository) ActiveDatesInRange(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT date FROM paid_holidays
		WHERE is_active AND date >= $1 AND date < $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list active holiday dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

func (r *holidayRepository) Update(ctx context.Context, h holiday.PaidHoliday) error {
	q := database.GetQuerier(ctx, r.db)

	query := `UPDATE paid_holidays SET name = $2, is_active = $3, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, h.ID, h.Name, h.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM paid_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
