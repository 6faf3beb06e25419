package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
)

// GetAllCategories returns all categories ordered by name. A failed read is
// logged and degrades to an empty list so the catalog stays browsable.
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Order("name asc").Find(&categories).Error; err != nil {
		log.Printf("Error fetching categories: %v", err)
		return c.JSON([]models.Category{})
	}
	return c.JSON(categories)
}

type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreateCategory adds a category (admin only)
func CreateCategory(c *fiber.Ctx) error {
	input := new(CategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var existing models.Category
	if db.DB.Where("name = ?", input.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category with this name already exists",
		})
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
	}
	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}
