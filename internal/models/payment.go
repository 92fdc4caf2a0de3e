package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment amounts are in minor currency units.
type Payment struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	UserID    uint          `json:"userId" gorm:"not null;index"`
	Amount    int           `json:"amount" gorm:"not null"`
	Currency  string        `json:"currency" gorm:"type:varchar(3);not null"`
	Status    PaymentStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type UpgradeResponse struct {
	Payment Payment      `json:"payment"`
	User    UserResponse `json:"user"`
}
