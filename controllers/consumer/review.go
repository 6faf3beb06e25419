package consumer

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
)

type ReviewInput struct {
	ServiceID uint    `json:"service_id" validate:"required"`
	BookingID uint    `json:"booking_id"`
	Rating    float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment   string  `json:"comment"`
}

// CreateReview records a rating for a service. One review per customer per
// service; a review tied to a completed booking is marked verified.
func CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ReviewInput)
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

	var service models.Service
	if err := db.DB.First(&service, input.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	review := models.Review{
		ServiceID:  input.ServiceID,
		ProviderID: service.ProviderID,
		CustomerID: userID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	exists, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this service",
		})
	}

	if input.BookingID != 0 {
		var booking models.Booking
		err := db.DB.Where("id = ? AND user_id = ? AND service_id = ? AND status = ?",
			input.BookingID, userID, input.ServiceID, models.StatusCompleted).
			First(&booking).Error
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Booking not found or not completed",
			})
		}
		review.BookingID = &input.BookingID
		review.IsVerified = true
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	if err := models.RecalculateServiceRating(db.DB, input.ServiceID); err != nil {
		log.Printf("Failed to recalculate rating for service %d: %v", input.ServiceID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetServiceReviews returns all reviews for a service, newest first
func GetServiceReviews(c *fiber.Ctx) error {
	id := c.Params("id")

	var reviews []models.Review
	if err := db.DB.
		Preload("Customer").
		Where("service_id = ?", id).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		log.Printf("Error fetching reviews for service %s: %v", id, err)
		return c.JSON([]models.Review{})
	}

	for i := range reviews {
		reviews[i].Customer.Password = ""
	}

	return c.JSON(reviews)
}
