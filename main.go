package main

import (
	"log"

	"github.com/Lohithsai06/Eco-finds/configs"
	"github.com/Lohithsai06/Eco-finds/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // room for the 5MB image plus form fields
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.UserRoute(app)
	routes.AccountRoute(app)
	routes.ProductsRoute(app)
	routes.CartRoutes(app)
	routes.CheckoutRoutes(app)
	routes.PurchaseRoutes(app)
	routes.ListingRoutes(app)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
