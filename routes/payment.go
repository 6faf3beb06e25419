package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/controllers"
	"github.com/homefixbd/home-fix-server/controllers/consumer"
	"github.com/homefixbd/home-fix-server/middleware"
)

func SetupPaymentRoutes(app *fiber.App) {
	app.Post("/checkout", middleware.Protected(), consumer.InitiateCheckout)

	// The gateway redirects the customer's browser to these landings, so
	// they have to stay public.
	app.Get("/payment-success", controllers.PaymentSuccess)
	app.Get("/payment-fail", controllers.PaymentFail)
	app.Get("/payment-cancel", controllers.PaymentCancel)
}
