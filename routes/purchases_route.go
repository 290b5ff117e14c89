package routes

import (
	purchaseController "github.com/Lohithsai06/Eco-finds/controllers/purchases"
	"github.com/Lohithsai06/Eco-finds/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PurchaseRoutes(app *fiber.App) {
	app.Get("/api/purchases", middlewares.AuthMiddleware, purchaseController.GetPurchases)

	app.Delete("/api/purchases", middlewares.AuthMiddleware, purchaseController.DeletePurchase)
}
