package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/controllers/provider"
	"github.com/homefixbd/home-fix-server/middleware"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.Protected())

	dashboard.Get("/overview", provider.GetDashboardOverview)
	dashboard.Get("/recent", provider.GetRecentBookings)
}
