package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReleaseStatus string

const (
	ReleaseStatusPending ReleaseStatus = "PENDING"
	ReleaseStatusPaid    ReleaseStatus = "PAID"
)

// Valid reports whether s is a known status.
func (s ReleaseStatus) Valid() bool {
	return s == ReleaseStatusPending || s == ReleaseStatusPaid
}

type ReleaseType string

const (
	ReleaseTypeIncome  ReleaseType = "INCOME"
	ReleaseTypeExpense ReleaseType = "EXPENSE"
)

// Valid reports whether t is a known type.
func (t ReleaseType) Valid() bool {
	return t == ReleaseTypeIncome || t == ReleaseTypeExpense
}

// Release is a single income or expense record.
type Release struct {
	ID          string
	UserID      string
	CategoryID  string
	Value       decimal.Decimal
	Description string
	Status      ReleaseStatus
	Type        ReleaseType
	DueDate     time.Time
	CreatedAt   time.Time
}
