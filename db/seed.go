package db

import (
	"log"

	"github.com/homefixbd/home-fix-server/models"
)

// SeedCategories creates the default service categories if they don't exist
func SeedCategories() {
	categories := []models.Category{
		{Name: "ইলেকট্রিক্যাল", Description: "Electrical repair and wiring", Icon: "zap"},
		{Name: "প্লাম্বিং", Description: "Plumbing and water line work", Icon: "droplets"},
		{Name: "এসি মেরামত", Description: "AC servicing and repair", Icon: "wind"},
		{Name: "ক্লিনিং", Description: "Home and office cleaning", Icon: "sparkles"},
		{Name: "পেইন্টিং", Description: "Interior and exterior painting", Icon: "paintbrush"},
		{Name: "কাঠমিস্ত্রি", Description: "Carpentry and furniture work", Icon: "hammer"},
	}

	for _, category := range categories {
		var existing models.Category
		if DB.Where("name = ?", category.Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&category).Error; err != nil {
				log.Printf("Failed to seed category %s: %v", category.Name, err)
			}
		}
	}
}
