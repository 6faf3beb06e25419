package models

import (
	"time"
)

// PaymentIntent is the externally persisted snapshot of a checkout that is
// in flight at the hosted gateway. It is written before the redirect and
// read back on the gateway's return so the booking can be finalised with the
// exact amounts the customer saw.
type PaymentIntent struct {
	ID            string    `json:"id"`
	ServiceID     uint      `json:"service_id"`
	UserID        uint      `json:"user_id"`
	ProviderID    uint      `json:"provider_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}
