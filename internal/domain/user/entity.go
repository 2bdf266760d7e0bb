package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	// PerDayRate is the payroll rate for one payable day. Users without a
	// rate are skipped by the payroll engine.
	PerDayRate *decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
