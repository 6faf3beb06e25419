package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/db"
	"github.com/homefixbd/home-fix-server/models"
	"gorm.io/gorm"
)

// GetDashboardOverview returns booking counts, listing count and revenue for
// the caller. Providers see their side of the marketplace, customers their
// own bookings, admins the whole platform.
func GetDashboardOverview(c *fiber.Ctx) error {
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

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		TotalServices  int64     `json:"total_services"`
		TotalRevenue   float64   `json:"total_revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	scoped := func() *gorm.DB {
		q := db.DB.Model(&models.Booking{})
		if role == models.RoleProvider {
			q = q.Where("provider_id = ?", userID)
		} else if role != models.RoleAdmin {
			q = q.Where("user_id = ?", userID)
		}
		return q
	}

	scoped().Count(&statistics.TotalBookings)
	scoped().Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	scoped().Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	scoped().Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	scoped().Where("status = ?", models.StatusCancelled).Count(&statistics.CancelledCount)

	serviceQuery := db.DB.Model(&models.Service{})
	if role == models.RoleProvider {
		serviceQuery = serviceQuery.Where("provider_id = ?", userID)
	}
	serviceQuery.Count(&statistics.TotalServices)

	// Revenue is the sum of completed bookings at their booked price
	var revenue struct {
		Total float64
	}
	scoped().Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0) as total").
		Scan(&revenue)
	statistics.TotalRevenue = revenue.Total

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentBookings returns the most recent bookings visible to the caller
func GetRecentBookings(c *fiber.Ctx) error {
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

	limit := 5
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	query := db.DB.
		Preload("Service").
		Preload("User").
		Preload("Provider")
	if role == models.RoleProvider {
		query = query.Where("provider_id = ?", userID)
	} else if role != models.RoleAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.
		Order("created_at desc").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].User.Password = ""
		bookings[i].Provider.Password = ""
	}

	return c.JSON(bookings)
}
