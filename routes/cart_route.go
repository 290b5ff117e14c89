package routes

import (
	cartController "github.com/Lohithsai06/Eco-finds/controllers/cart"
	"github.com/Lohithsai06/Eco-finds/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Get("/api/fetchCartItems", middlewares.AuthMiddleware, cartController.FetchCartItems)

	app.Get("/api/getCartTotal", middlewares.AuthMiddleware, cartController.GetCartTotal)

	app.Post("/api/add-to-cart", middlewares.AuthMiddleware, cartController.AddToCart)

	app.Post("/api/remove-from-cart", middlewares.AuthMiddleware, cartController.RemoveFromCart)

	app.Post("/api/clear-cart", middlewares.AuthMiddleware, cartController.ClearCart)
}
