package checkoutController

import (
	"context"
	"fmt"
	"time"

	"github.com/Lohithsai06/Eco-finds/configs"
	"github.com/Lohithsai06/Eco-finds/models"
	"github.com/Lohithsai06/Eco-finds/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var cartCollection *mongo.Collection = configs.GetCollection(configs.DB, "carts")

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

var purchaseCollection *mongo.Collection = configs.GetCollection(configs.DB, "purchases")

// Checkout validates the mock payment details, snapshots the cart into a
// purchase document and then deletes the cart. The two writes are independent:
// if the cart delete fails after the purchase insert, the stale cart stays
// alongside the completed purchase.
func Checkout(c *fiber.Ctx) error {
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

	var payment models.PaymentDetails
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	// Validating
	if err := payment.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	}

	// Processing: resolve the cart into product snapshots
	var cart models.Cart
	err := cartCollection.FindOne(ctx, bson.M{"_id": userId}).Decode(&cart)
	if err == mongo.ErrNoDocuments || (err == nil && len(cart.Products) == 0) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Your cart is empty",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error loading cart",
			Result:  nil,
		})
	}

	cartProducts := make([]models.Product, 0, len(cart.Products))
	for _, item := range cart.Products {
		var product models.Product
		err := productCollection.FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			// Listing was deleted after it went into the cart
			continue
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching product details",
				Result:  nil,
			})
		}
		cartProducts = append(cartProducts, product)
	}

	if len(cartProducts) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Your cart is empty",
			Result:  nil,
		})
	}

	purchase := models.Purchase{
		UserID:      userId,
		Items:       models.PurchaseItems(cartProducts),
		TotalAmount: models.CartTotal(cartProducts),
		PurchasedAt: time.Now(),
	}

	result, err := purchaseCollection.InsertOne(ctx, purchase)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to process payment. Please try again.",
			Result:  nil,
		})
	}

	// Drain the cart. Not transactional with the insert above.
	if _, err := cartCollection.DeleteOne(ctx, bson.M{"_id": userId}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Purchase recorded but cart could not be cleared",
			Result: &fiber.Map{
				"purchaseId": result.InsertedID,
			},
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Payment of $%.2f processed successfully!", purchase.TotalAmount),
		Result: &fiber.Map{
			"status":      "success",
			"purchaseId":  result.InsertedID,
			"totalAmount": purchase.TotalAmount,
			"items":       purchase.Items,
		},
	})
}
