package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/controllers"
	"github.com/homefixbd/home-fix-server/controllers/consumer"
	"github.com/homefixbd/home-fix-server/middleware"
)

func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.Protected())

	booking.Get("/", controllers.GetAllBookings)
	booking.Get("/:id", controllers.GetBooking)
	booking.Post("/", controllers.CreateBooking)
	booking.Patch("/:id", controllers.UpdateBooking)
	booking.Post("/:id/cancel", controllers.CancelBooking)

	review := app.Group("/reviews", middleware.Protected())
	review.Post("/", consumer.CreateReview)
}
