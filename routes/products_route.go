package routes

import (
	controllers "github.com/Lohithsai06/Eco-finds/controllers/products"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	//Catalog with optional search and category filters
	app.Get("/api/get-all-products", controllers.GetAllProducts)

	//Fetch productDetails
	app.Get("/api/details", controllers.FetchProductDetails)
}
