package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CheckBookingDate rejects dates strictly before today's calendar day.
// Time-of-day is ignored on both sides, so a booking for later today passes.
func CheckBookingDate(dateStr string, now time.Time) error {
	date, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return errors.New("booking date cannot be in the past")
	}
	return nil
}

// CheckBookingRequest validates the fields gating the payment step
func CheckBookingRequest(dateStr, timeStr, address string, now time.Time) error {
	if dateStr == "" || timeStr == "" || strings.TrimSpace(address) == "" {
		return errors.New("date, time and address are required")
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return CheckBookingDate(dateStr, now)
}
