package cartController

import (
	"context"
	"time"

	"github.com/Lohithsai06/Eco-finds/configs"
	"github.com/Lohithsai06/Eco-finds/models"
	"github.com/Lohithsai06/Eco-finds/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var cartCollection *mongo.Collection = configs.GetCollection(configs.DB, "carts")

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

// loadCart fetches the user's cart document. A missing document is an empty
// cart, not an error.
func loadCart(ctx context.Context, userId string) (models.Cart, error) {
	var cart models.Cart
	err := cartCollection.FindOne(ctx, bson.M{"_id": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return models.Cart{UserID: userId, Products: []models.CartItem{}}, nil
	}
	return cart, err
}

// saveCart persists the full replacement item list. The document is rewritten
// wholesale, so concurrent sessions resolve by last writer wins.
func saveCart(ctx context.Context, userId string, items []models.CartItem) error {
	cart := models.Cart{UserID: userId, Products: items}
	_, err := cartCollection.ReplaceOne(ctx, bson.M{"_id": userId},
		cart, options.Replace().SetUpsert(true))
	return err
}

// resolveProducts looks up every cart item's product, silently dropping items
// whose product no longer exists.
func resolveProducts(ctx context.Context, items []models.CartItem) ([]models.Product, error) {
	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		var product models.Product
		err := productCollection.FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// FetchCartItems returns the cart items with their resolved product snapshots
// and the running total.
func FetchCartItems(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	cart, err := loadCart(ctx, userId)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error loading cart",
			Result:  nil,
		})
	}

	products, err := resolveProducts(ctx, cart.Products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched cart items",
		Result: &fiber.Map{
			"status":       "success",
			"cartItems":    cart.Products,
			"cartProducts": products,
			"totalPrice":   models.CartTotal(products),
		},
	})
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

// AddToCart appends the product with quantity 1. Adding a product already in
// the cart is rejected; there is no increment path.
func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request AddToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
			Result:  nil,
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	// The product must still exist before it can be referenced
	var product models.Product
	if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	cart, err := loadCart(ctx, userId)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error loading cart",
			Result:  nil,
		})
	}

	// Duplicate check runs against the list just loaded, not a fresh query at
	// write time, so two tabs adding at once can still race.
	newItems, err := models.AddCartItem(cart.Products, productID)
	if err == models.ErrAlreadyInCart {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Item already in cart",
			Result:  nil,
		})
	}

	if err := saveCart(ctx, userId, newItems); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Added to cart",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": len(newItems),
		},
	})
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId"`
}

// RemoveFromCart filters the product out and persists the result. Removing a
// product that is not in the cart is a no-op.
func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request RemoveFromCartRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request",
			Result:  nil,
		})
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product Id",
			Result:  nil,
		})
	}

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	cart, err := loadCart(ctx, userId)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error loading cart",
			Result:  nil,
		})
	}

	newItems := models.RemoveCartItem(cart.Products, productID)

	if err := saveCart(ctx, userId, newItems); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Removed from cart",
		Result: &fiber.Map{
			"status":    "success",
			"cartCount": len(newItems),
		},
	})
}

// ClearCart persists an empty item list.
func ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	if err := saveCart(ctx, userId, []models.CartItem{}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to clear cart",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared",
		Result:  &fiber.Map{"status": "success"},
	})
}

// GetCartTotal returns the sum of the resolved product prices.
func GetCartTotal(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	cart, err := loadCart(ctx, userId)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error loading cart",
			Result:  nil,
		})
	}

	products, err := resolveProducts(ctx, cart.Products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully calculated cart total",
		Result: &fiber.Map{
			"totalPrice": models.CartTotal(products),
		},
	})
}
