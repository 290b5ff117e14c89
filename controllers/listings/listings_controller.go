package listingController

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Lohithsai06/Eco-finds/configs"
	"github.com/Lohithsai06/Eco-finds/models"
	"github.com/Lohithsai06/Eco-finds/responses"
	"github.com/Lohithsai06/Eco-finds/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

var validate = validator.New()

type ListingForm struct {
	Title       string  `validate:"required"`
	Description string  `validate:"required"`
	Category    string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
}

func parseListingForm(c *fiber.Ctx) (ListingForm, error) {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	form := ListingForm{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    c.FormValue("category"),
		Price:       price,
	}
	return form, validate.Struct(form)
}

// compressUpload reads the "image" form file and returns the inline data URI,
// or "" when no file was attached.
func compressUpload(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	if fileHeader.Size > utils.MaxUploadBytes {
		return "", utils.ErrImageTooLarge
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", utils.ErrUnsupportedImage
	}
	defer file.Close()
	return utils.CompressToDataURI(file)
}

// GetMyListings returns the current user's products, newest first.
func GetMyListings(c *fiber.Ctx) error {
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
	findOptions.SetSort(bson.M{"createdAt": -1})

	var products []models.Product
	cursor, err := productCollection.Find(ctx, bson.M{"ownerId": userId}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to load your products",
			Result:  nil,
		})
	}
	if err = cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Successfully fetched listings",
		Result: &fiber.Map{
			"status":   "success",
			"listings": products,
		},
	})
}

// AddListing creates a product document. The image is mandatory on create and
// stored inline as a compressed JPEG data URI.
func AddListing(c *fiber.Ctx) error {
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

	form, err := parseListingForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill in all required fields",
			Result:  nil,
		})
	}

	imageUrl, err := compressUpload(c)
	if err == utils.ErrImageTooLarge {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Failed to process image",
			Result:  nil,
		})
	}
	if imageUrl == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please provide an image for the product",
			Result:  nil,
		})
	}

	// Seller snapshot comes from the owner's profile
	var owner models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userId}).Decode(&owner); err != nil && err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user data",
			Result:  nil,
		})
	}

	product := models.NewListing(userId, form.Title, form.Description, form.Category,
		form.Price, imageUrl, owner.Username)

	result, err := productCollection.InsertOne(ctx, product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
			Result:  nil,
		})
	}
	product.ID = result.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result: &fiber.Map{
			"status":  "success",
			"product": product,
		},
	})
}

// EditListing overwrites only the editable fields. OwnerId, createdAt and the
// derived figures stay as they were no matter what the caller sends.
func EditListing(c *fiber.Ctx) error {
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

	productID, err := primitive.ObjectIDFromHex(c.FormValue("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	var existing models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	if existing.OwnerID != userId {
		return c.Status(fiber.StatusForbidden).JSON(responses.UserResponse{
			Status:  fiber.StatusForbidden,
			Message: "You can only edit your own listings",
			Result:  nil,
		})
	}

	form, err := parseListingForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please fill in all required fields",
			Result:  nil,
		})
	}

	// A new image is optional on edit; keep the existing one otherwise
	imageUrl, err := compressUpload(c)
	if err == utils.ErrImageTooLarge {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Failed to process image",
			Result:  nil,
		})
	}
	if imageUrl == "" {
		imageUrl = existing.ImageUrl
	}

	update := models.ListingUpdate(form.Title, form.Description, form.Category, form.Price, imageUrl)
	if _, err := productCollection.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": update}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
		Result: &fiber.Map{
			"status": "success",
			"data":   update,
		},
	})
}

// DeleteListing removes the product document and then best-effort deletes any
// legacy on-disk image it referenced. A blob already gone is not an error.
func DeleteListing(c *fiber.Ctx) error {
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

	productID, err := primitive.ObjectIDFromHex(c.Query("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	var existing models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
			Result:  nil,
		})
	}

	if existing.OwnerID != userId {
		return c.Status(fiber.StatusForbidden).JSON(responses.UserResponse{
			Status:  fiber.StatusForbidden,
			Message: "You can only delete your own listings",
			Result:  nil,
		})
	}

	if _, err := productCollection.DeleteOne(ctx, bson.M{"_id": productID}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete product",
			Result:  nil,
		})
	}

	deleteBlob(existing.ImageUrl)

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted successfully",
		Result:  &fiber.Map{"status": "success"},
	})
}

// deleteBlob removes a legacy uploaded file referenced by imageUrl. Inline
// data URIs have nothing to delete, and a file already removed out-of-band is
// deliberately swallowed.
func deleteBlob(imageUrl string) {
	if imageUrl == "" || strings.HasPrefix(imageUrl, "data:") {
		return
	}
	_ = os.Remove(filepath.Join(configs.EnvUploadsDir(), filepath.Base(imageUrl)))
}
