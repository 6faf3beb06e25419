package models

import (
	"time"
)

const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name"`
	Email            string    `json:"email" gorm:"unique"`
	Password         string    `json:"password,omitempty"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	Location         string    `json:"location"`
	Profession       string    `json:"profession,omitempty"`
	Verified         bool      `json:"verified"`
	OTP              string    `json:"-"`
	OTPExpiresAt     time.Time `json:"-"`
	Services         []Service `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings         []Booking `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	ProviderBookings []Booking `json:"provider_bookings,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleProvider, RoleAdmin:
		return true
	}
	return false
}
