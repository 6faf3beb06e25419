package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating     float64 `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment    string  `json:"comment"`
	ServiceID  uint    `json:"service_id"`
	Service    Service `json:"service" gorm:"foreignKey:ServiceID"`
	ProviderID uint    `json:"provider_id"`
	Provider   User    `json:"provider" gorm:"foreignKey:ProviderID"`
	CustomerID uint    `json:"customer_id"`
	Customer   User    `json:"customer" gorm:"foreignKey:CustomerID"`
	BookingID  *uint   `json:"booking_id"` // Optional link to a completed booking
	IsVerified bool    `json:"is_verified" gorm:"default:false"`
}

// BeforeCreate hook to clamp rating into the 1.0-5.0 range
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}

// HasExistingReview checks if the customer already reviewed this service
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("customer_id = ? AND service_id = ? AND deleted_at IS NULL",
			r.CustomerID, r.ServiceID).
		Count(&count).Error

	return count > 0, err
}

// RecalculateServiceRating refreshes the service's aggregate rating from its
// reviews. The aggregate feeds the "rating" sort on the services listing.
func RecalculateServiceRating(tx *gorm.DB, serviceID uint) error {
	var avg struct {
		Rating float64
	}
	if err := tx.Model(&Review{}).
		Where("service_id = ? AND deleted_at IS NULL", serviceID).
		Select("COALESCE(AVG(rating), 0) as rating").
		Scan(&avg).Error; err != nil {
		return err
	}
	return tx.Model(&Service{}).Where("id = ?", serviceID).
		Update("rating", avg.Rating).Error
}
