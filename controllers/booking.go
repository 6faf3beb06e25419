package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"github.com/homefixbd/home-fix-server/utils"
)

// GetAllBookings returns bookings visible to the caller, newest first.
// Customers see their own, providers see bookings on their services, admins
// see everything.
func GetAllBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
	}

	query := db.DB.Preload("Service").Preload("User").Preload("Provider")
	switch role {
	case models.RoleProvider:
		query = query.Where("provider_id = ?", userID)
	case models.RoleAdmin:
		// Admin sees all bookings, no filter
	default:
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		log.Printf("Error fetching bookings: %v", err)
		return c.JSON([]models.Booking{})
	}

	for i := range bookings {
		bookings[i].User.Password = ""
		bookings[i].Provider.Password = ""
	}

	return c.JSON(bookings)
}

// GetBooking returns a single booking if the caller may see it
func GetBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("User").Preload("Provider").First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorResponse("Booking not found", err))
	}

	if role != models.RoleAdmin && booking.UserID != userID && booking.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this booking",
		})
	}

	booking.User.Password = ""
	booking.Provider.Password = ""
	return c.JSON(booking)
}

type CreateBookingInput struct {
	ServiceID     uint   `json:"service_id" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=bkash nagad"`
}

// CreateBooking is the direct booking path. The total is always the service
// price at booking time, never client supplied.
func CreateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(CreateBookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err := utils.CheckBookingRequest(input.Date, input.Time, input.Address, utils.ToBST(time.Now())); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND available = ?", input.ServiceID, true).First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	booking := models.Booking{
		ServiceID:     service.ID,
		UserID:        userID,
		ProviderID:    service.ProviderID,
		Date:          input.Date,
		Time:          input.Time,
		Address:       input.Address,
		Notes:         input.Notes,
		Status:        models.StatusPending,
		TotalAmount:   service.Price,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: models.PaymentPending,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	sendBookingEmails(&booking, &service)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// sendBookingEmails notifies customer and provider. Delivery problems are
// logged, not surfaced, so a flaky SMTP relay can't fail the booking.
func sendBookingEmails(booking *models.Booking, service *models.Service) {
	var customer, provider models.User
	if err := db.DB.First(&customer, booking.UserID).Error; err != nil {
		log.Printf("Failed to load customer %d for booking email: %v", booking.UserID, err)
		return
	}
	if err := db.DB.First(&provider, booking.ProviderID).Error; err != nil {
		log.Printf("Failed to load provider %d for booking email: %v", booking.ProviderID, err)
		return
	}

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been received.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Total:</strong> ৳%.0f</li>
		</ul>
		<p>Thank you for choosing HomeFix!</p>
		<p>Best regards,</p>
		<p>The HomeFix Team</p>
	`, customer.Name, service.Title, provider.Name,
		booking.Date, booking.Time, booking.Address, booking.TotalAmount)
	if err := utils.SendEmail(customer.Email, "Booking Received", emailBody); err != nil {
		log.Printf("Failed to send booking email to customer %s: %v", customer.Email, err)
	}

	emailBody = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Total:</strong> ৳%.0f</li>
		</ul>
		<p>Please confirm it from your dashboard.</p>
		<p>Best regards,</p>
		<p>The HomeFix Team</p>
	`, provider.Name, service.Title, customer.Name,
		booking.Date, booking.Time, booking.Address, booking.TotalAmount)
	if err := utils.SendEmail(provider.Email, "New Booking", emailBody); err != nil {
		log.Printf("Failed to send booking email to provider %s: %v", provider.Email, err)
	}
}

type UpdateBookingInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// UpdateBooking applies a status transition. Only the booking's provider or
// an admin may move a booking through its lifecycle.
func UpdateBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	input := new(UpdateBookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if role != models.RoleAdmin && booking.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only the provider can update this booking",
		})
	}

	if err := booking.UpdateStatus(db.DB, models.BookingStatus(input.Status)); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	notifyStatusChange(&booking)

	return c.JSON(booking)
}

// CancelBooking marks a booking cancelled. Re-cancelling an already
// cancelled booking succeeds without another write.
func CancelBooking(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if role != models.RoleAdmin && booking.UserID != userID && booking.ProviderID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have access to this booking",
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot cancel this booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

func notifyStatusChange(booking *models.Booking) {
	var customer models.User
	if err := db.DB.First(&customer, booking.UserID).Error; err != nil {
		log.Printf("Failed to load customer %d for status email: %v", booking.UserID, err)
		return
	}

	emailBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking for %s at %s is now <strong>%s</strong>.</p>
		<p>Best regards,</p>
		<p>The HomeFix Team</p>
	`, customer.Name, booking.Date, booking.Time, booking.Status)
	if err := utils.SendEmail(customer.Email, "Booking Update", emailBody); err != nil {
		log.Printf("Failed to send status email to %s: %v", customer.Email, err)
	}
}
