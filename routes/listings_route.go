package routes

import (
	listingController "github.com/Lohithsai06/Eco-finds/controllers/listings"
	"github.com/Lohithsai06/Eco-finds/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ListingRoutes(app *fiber.App) {
	app.Get("/api/my-listings", middlewares.AuthMiddleware, listingController.GetMyListings)

	app.Post("/api/add-listing", middlewares.AuthMiddleware, listingController.AddListing)

	app.Put("/api/edit-listing", middlewares.AuthMiddleware, listingController.EditListing)

	app.Delete("/api/delete-listing", middlewares.AuthMiddleware, listingController.DeleteListing)
}
