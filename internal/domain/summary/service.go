package summary

import "context"

type SummaryService interface {
	// MonthlySummary aggregates one user's ledger for the YYYY-MM month.
	MonthlySummary(ctx context.Context, userID string, month string) (MonthlySummary, error)

	// PayrollForMonth computes one payout row per payable user, skipping
	// users with no attendance in the month.
	PayrollForMonth(ctx context.Context, month string) ([]PayrollRow, error)

	// Dashboard builds the admin landing view: everyone's state today plus
	// the oldest pending correction requests.
	Dashboard(ctx context.Context) (AdminDashboard, error)
}
