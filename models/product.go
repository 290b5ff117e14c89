package models

import (
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var Categories = []string{
	"All",
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Books",
	"Sports",
	"Beauty",
	"Food",
	"Other",
}

type Seller struct {
	Name     string `bson:"name" json:"name"`
	Rating   int    `bson:"rating" json:"rating"`
	Verified bool   `bson:"verified" json:"verified"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OwnerID     string             `bson:"ownerId" json:"ownerId"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	ImageUrl    string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	// Assigned once at creation and never recomputed.
	Views               int    `bson:"views" json:"views"`
	SustainabilityScore int    `bson:"sustainabilityScore" json:"sustainabilityScore"`
	Condition           string `bson:"condition" json:"condition"`
	Co2Saved            int    `bson:"co2Saved" json:"co2Saved"`
	WaterSaved          int    `bson:"waterSaved" json:"waterSaved"`
	Seller              Seller `bson:"seller" json:"seller"`
}

// NewListing builds a product document for a freshly created listing. The
// sustainability figures are cosmetic and randomly assigned, matching what the
// storefront displays.
func NewListing(ownerID, title, description, category string, price float64, imageUrl, sellerName string) Product {
	if sellerName == "" {
		sellerName = "Anonymous"
	}
	return Product{
		OwnerID:             ownerID,
		Title:               title,
		Description:         description,
		Category:            category,
		Price:               price,
		ImageUrl:            imageUrl,
		CreatedAt:           time.Now(),
		Views:               0,
		SustainabilityScore: rand.Intn(5) + 1,
		Condition:           "Good",
		Co2Saved:            rand.Intn(100) + 10,
		WaterSaved:          rand.Intn(500) + 50,
		Seller: Seller{
			Name:     sellerName,
			Rating:   5,
			Verified: true,
		},
	}
}

// ListingUpdate is the $set document for editing a listing. Only the editable
// fields appear here; ownerId, createdAt, views and the sustainability figures
// must survive an edit untouched no matter what the caller sends.
func ListingUpdate(title, description, category string, price float64, imageUrl string) bson.M {
	return bson.M{
		"title":       title,
		"description": description,
		"category":    category,
		"price":       price,
		"imageUrl":    imageUrl,
	}
}
