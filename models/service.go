package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ProviderID  uint    `json:"provider_id"`
	Provider    User    `json:"provider" gorm:"foreignKey:ProviderID"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating" gorm:"type:decimal(2,1);default:0"`
	ImageURL    string  `json:"image_url"`
	Available   bool    `json:"available" gorm:"default:true"`
}
