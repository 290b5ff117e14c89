package purchaseController

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

var purchaseCollection *mongo.Collection = configs.GetCollection(configs.DB, "purchases")

// GetPurchases returns the user's purchase history, newest first.
func GetPurchases(c *fiber.Ctx) error {
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

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"purchasedAt": -1})

	var purchases []models.Purchase
	cursor, err := purchaseCollection.Find(ctx, bson.M{"userId": userId}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load purchase history",
			Result:  nil,
		})
	}
	if err = cursor.All(ctx, &purchases); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing purchases",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched purchases",
		Result: &fiber.Map{
			"status":    "success",
			"purchases": purchases,
		},
	})
}

// DeletePurchase removes one purchase record. Only the owner may delete it.
func DeletePurchase(c *fiber.Ctx) error {
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

	purchaseId, err := primitive.ObjectIDFromHex(c.Query("purchaseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid purchase ID format",
			Result:  nil,
		})
	}

	var purchase models.Purchase
	err = purchaseCollection.FindOne(ctx, bson.M{"_id": purchaseId}).Decode(&purchase)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Purchase not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching purchase",
			Result:  nil,
		})
	}

	if purchase.UserID != userId {
		return c.Status(fiber.StatusForbidden).JSON(responses.UserResponse{
			Status:  fiber.StatusForbidden,
			Message: "You can only delete your own purchases",
			Result:  nil,
		})
	}

	if _, err := purchaseCollection.DeleteOne(ctx, bson.M{"_id": purchaseId}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete the purchase",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Purchase deleted successfully",
		Result:  &fiber.Map{"status": "success"},
	})
}
