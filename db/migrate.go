package db

import (
	"fmt"
	"log"

	"github.com/homefixbd/home-fix-server/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	SeedCategories()

	fmt.Println("✅ Migrations applied successfully!")
}
