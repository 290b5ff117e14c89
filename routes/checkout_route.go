package routes

import (
	checkoutController "github.com/Lohithsai06/Eco-finds/controllers/checkout"
	"github.com/Lohithsai06/Eco-finds/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CheckoutRoutes(app *fiber.App) {
	app.Post("/api/checkout", middlewares.AuthMiddleware, checkoutController.Checkout)
}
