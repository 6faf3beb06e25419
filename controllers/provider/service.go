package provider

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/utils"
)

var validate = validator.New()

// GetMyServices returns all of the caller's listings, including ones hidden
// from the public catalog
func GetMyServices(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var services []models.Service
	if err := db.DB.
		Where("provider_id = ?", userID).
		Order("created_at desc").
		Find(&services).Error; err != nil {
		log.Printf("Error fetching services for provider %d: %v", userID, err)
		return c.JSON([]models.Service{})
	}

	return c.JSON(services)
}

type ServiceInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Location    string  `json:"location"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
}

// CreateService adds a new listing owned by the caller. The provider is
// always the authenticated user, never taken from the body.
func CreateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ServiceInput)
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

	service := models.Service{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ProviderID:  userID,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Available:   true,
	}
	if input.Available != nil {
		service.Available = *input.Available
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial update to one of the caller's listings
func UpdateService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid service ID",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if role != models.RoleAdmin && service.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't own this service",
		})
	}

	updateData := make(map[string]interface{})
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Ownership and the review aggregate are never client writable
	fieldsToIgnore := []string{"id", "ID", "provider", "Provider", "ProviderID", "provider_id", "rating"}
	for _, field := range fieldsToIgnore {
		delete(updateData, field)
	}

	if price, ok := updateData["price"].(float64); ok && price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Price cannot be negative",
		})
	}

	if err := db.DB.Model(&service).Updates(updateData).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	db.DB.First(&service, id)
	return c.JSON(service)
}

// DeleteService removes a listing. The row is soft deleted, so existing
// bookings keep their reference.
func DeleteService(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if role != models.RoleAdmin && service.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't own this service",
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Service deleted successfully",
	})
}

// UploadServiceImage uploads a listing photo to Cloudinary and stores the URL
func UploadServiceImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if role != models.RoleAdmin && service.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't own this service",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadServiceImage(file, fmt.Sprintf("service_%d", service.ID))
	if err != nil {
		log.Printf("Cloudinary upload failed for service %d: %v", service.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload image",
		})
	}

	if err := db.DB.Model(&service).Update("image_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image URL",
		})
	}

	service.ImageURL = url
	return c.JSON(service)
}
