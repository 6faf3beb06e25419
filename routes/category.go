package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/homefixbd/home-fix-server/controllers"
	"github.com/homefixbd/home-fix-server/middleware"
	"github.com/homefixbd/home-fix-server/models"
)

func SetupCategoryRoutes(app *fiber.App) {
	category := app.Group("/categories")

	category.Get("/", controllers.GetAllCategories)
	category.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleAdmin), controllers.CreateCategory)
}
