package consumer

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/redis"
	"github.com/homefixbd/home-fix-server/utils"
)

var validate = validator.New()

type CheckoutInput struct {
	ServiceID     uint   `json:"service_id" validate:"required"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=bkash nagad"`
}

// InitiateCheckout validates the booking request and hands off to the
// hosted payment gateway. No booking row is written here; the checkout
// snapshot is parked as a payment intent and finalised when the gateway
// redirects the customer back.
func InitiateCheckout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(CheckoutInput)
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

	// The validation gate runs before anything leaves the process
	if err := utils.CheckBookingRequest(input.Date, input.Time, input.Address, utils.ToBST(time.Now())); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "bkash"
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND available = ?", input.ServiceID, true).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	intent := &models.PaymentIntent{
		ID:            uuid.New().String(),
		ServiceID:     service.ID,
		UserID:        userID,
		ProviderID:    service.ProviderID,
		Date:          input.Date,
		Time:          input.Time,
		Address:       input.Address,
		Notes:         input.Notes,
		TotalAmount:   service.Price,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now(),
	}
	if err := redis.SaveIntent(intent); err != nil {
		// The gateway hand-off still works without the intent; the booking
		// just cannot be finalised automatically on return.
		log.Printf("Failed to save payment intent %s: %v", intent.ID, err)
	}

	payload := utils.CheckoutPayload{
		IntentID:      intent.ID,
		ServiceID:     service.ID,
		UserID:        userID,
		ProviderID:    service.ProviderID,
		Date:          input.Date,
		Time:          input.Time,
		Address:       input.Address,
		Notes:         input.Notes,
		Status:        string(models.StatusPending),
		TotalAmount:   service.Price,
		PaymentMethod: paymentMethod,
		PaymentStatus: string(models.PaymentCompleted),
	}

	url, err := utils.CreateCheckout(payload)
	if err != nil {
		log.Printf("Payment gateway error for intent %s: %v", intent.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"url":       url,
		"intent_id": intent.ID,
	})
}
