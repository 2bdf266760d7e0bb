package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/request"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `
	id, user_id, attendance_id, request_type, requested_time, reason,
	status, admin_comment, reviewed_by, reviewed_at, created_at
`

func scanRequest(row pgx.Row) (request.CorrectionRequest, error) {
	var req request.CorrectionRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.AttendanceID, &req.RequestType, &req.RequestedTime, &req.Reason,
		&req.Status, &req.AdminComment, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt,
	)
	return req, err
}

func (r *requestRepository) Create(ctx context.Context, req request.CorrectionRequest) (request.CorrectionRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_requests (
			user_id, attendance_id, request_type, requested_time, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		req.UserID,
		req.AttendanceID,
		req.RequestType,
		req.RequestedTime,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt)

	if err != nil {
		return request.CorrectionRequest{}, fmt.Errorf("failed to create correction request: %w", err)
	}

	return req, nil
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (request.CorrectionRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM attendance_requests WHERE id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.CorrectionRequest{}, request.ErrRequestNotFound
		}
		return request.CorrectionRequest{}, fmt.Errorf("failed to get correction request by ID: %w", err)
	}

	return req, nil
}

func (r *requestRepository) GetPendingByUserAndType(ctx context.Context, userID string, from, to time.Time, reqType request.RequestType) (*request.CorrectionRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM attendance_requests
		WHERE user_id = $1
		  AND request_type = $2
		  AND status = 'PENDING'
		  AND created_at >= $3 AND created_at < $4
		ORDER BY created_at DESC
		LIMIT 1
	`

	req, err := scanRequest(q.QueryRow(ctx, query, userID, reqType, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending request: %w", err)
	}

	return &req, nil
}

func (r *requestRepository) ListByUser(ctx context.Context, userID string) ([]request.CorrectionRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM attendance_requests WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}
	defer rows.Close()

	var reqs []request.CorrectionRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan correction request: %w", err)
		}
		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

func (r *requestRepository) ListPending(ctx context.Context) ([]request.CorrectionRequest, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.user_id, r.attendance_id, r.request_type, r.requested_time, r.reason,
		       r.status, r.admin_comment, r.reviewed_by, r.reviewed_at, r.created_at,
		       u.name AS user_name
		FROM attendance_requests r
		JOIN users u ON u.id = r.user_id
		WHERE r.status = 'PENDING'
		ORDER BY r.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	defer rows.Close()

	var reqs []request.CorrectionRequest
	for rows.Next() {
		var req request.CorrectionRequest
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.AttendanceID, &req.RequestType, &req.RequestedTime, &req.Reason,
			&req.Status, &req.AdminComment, &req.ReviewedBy, &req.ReviewedAt, &req.CreatedAt,
			&req.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pending request: %w", err)
		}
		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

// Decide is the only write path out of PENDING. The status guard in the
// WHERE clause makes concurrent decisions race-safe: the second caller
// matches zero rows and reports false.
func (r *requestRepository) Decide(ctx context.Context, id string, status request.Status, reviewedBy string, reviewedAt time.Time) (bool, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1 AND status = 'PENDING'
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy, reviewedAt)
	if err != nil {
		return false, fmt.Errorf("failed to decide correction request: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *requestRepository) SetAttendanceID(ctx context.Context, id string, attendanceID string) error {
	q := database.GetQuerier(ctx, r.db)

	query := `UPDATE attendance_requests SET attendance_id = $2 WHERE id = $1`

	if _, err := q.Exec(ctx, query, id, attendanceID); err != nil {
		return fmt.Errorf("failed to set attendance ID on request: %w", err)
	}

	return nil
}
