package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/controllers/consumer"
	"github.com/homefixbd/home-fix-server/controllers/provider"
	"github.com/homefixbd/home-fix-server/middleware"
	"github.com/homefixbd/home-fix-server/models"
)

func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")

	// Public catalog
	service.Get("/", consumer.GetAllServices)
	service.Get("/mine", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.GetMyServices)
	service.Get("/:id", consumer.GetServiceDetails)
	service.Get("/:id/reviews", consumer.GetServiceReviews)

	// Provider side
	service.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.CreateService)
	service.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UpdateService)
	service.Delete("/:id", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.DeleteService)
	service.Post("/:id/image", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin), provider.UploadServiceImage)
}
