package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type Booking struct {
	gorm.Model
	ServiceID     uint          `json:"service_id"`
	Service       Service       `json:"service" gorm:"foreignKey:ServiceID"`
	UserID        uint          `json:"user_id"`
	User          User          `json:"user" gorm:"foreignKey:UserID"`
	ProviderID    uint          `json:"provider_id"`
	Provider      User          `json:"provider" gorm:"foreignKey:ProviderID"`
	Date          string        `json:"date"` // "2006-01-02"
	Time          string        `json:"time"` // "15:04"
	Address       string        `json:"address"`
	Notes         string        `json:"notes,omitempty"`
	Status        BookingStatus `json:"status"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return nil
}

// CanTransition validates the one-directional booking lifecycle.
// Re-applying the current status is a no-op, so cancelling an already
// cancelled booking never errors.
func CanTransition(from, to BookingStatus) error {
	if from == to {
		return nil
	}
	switch from {
	case StatusPending:
		if to != StatusConfirmed && to != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", to)
		}
	case StatusConfirmed:
		if to != StatusCompleted && to != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", to)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", from)
	default:
		return fmt.Errorf("unknown booking status %s", from)
	}
	return nil
}

// UpdateStatus applies a lifecycle transition and persists it.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if err := CanTransition(b.Status, newStatus); err != nil {
		return err
	}
	if b.Status == newStatus {
		return nil
	}
	b.Status = newStatus
	return tx.Save(b).Error
}
