package consumer

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
)

// GetAllServices returns the public catalog: available services with their
// provider profile, newest first, with optional search/filter/sort from
// query params. A failed read is logged and degrades to an empty list.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.
		Preload("Provider").
		Where("available = ?", true).
		Order("created_at desc").
		Find(&services).Error; err != nil {
		log.Printf("Error fetching services: %v", err)
		return c.JSON([]models.Service{})
	}

	filter := models.ServiceFilter{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		SortBy:   c.Query("sort", "newest"),
	}
	services = models.FilterServices(services, filter)

	for i := range services {
		services[i].Provider.Password = ""
	}

	return c.JSON(services)
}

// GetServiceDetails returns details for a specific service
func GetServiceDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Preload("Provider").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	service.Provider.Password = ""
	return c.JSON(service)
}
