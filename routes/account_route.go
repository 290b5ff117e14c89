package routes

import (
	controllers "github.com/Lohithsai06/Eco-finds/controllers/accounts"
	"github.com/Lohithsai06/Eco-finds/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AccountRoute(app *fiber.App) {
	app.Get("/api/get-user-profile", middlewares.AuthMiddleware, controllers.GetUserProfile)
	app.Post("/api/update-profile", middlewares.AuthMiddleware, controllers.UpdateUserProfile)
}
