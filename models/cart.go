package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrAlreadyInCart is returned when a product is added a second time; a cart
// never holds the same product twice and there is no quantity-increment path.
var ErrAlreadyInCart = errors.New("item already in cart")

// Cart is one document per user in the "carts" collection, keyed by the
// user's uid. Every mutation rewrites the whole products array, so the last
// writer wins when two sessions race.
type Cart struct {
	UserID   string     `bson:"_id" json:"userId"`
	Products []CartItem `bson:"products" json:"products"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// AddCartItem appends productID with quantity 1, rejecting duplicates.
func AddCartItem(items []CartItem, productID primitive.ObjectID) ([]CartItem, error) {
	for _, item := range items {
		if item.ProductID == productID {
			return items, ErrAlreadyInCart
		}
	}
	return append(items, CartItem{ProductID: productID, Quantity: 1}), nil
}

// RemoveCartItem filters productID out. Removing an absent product is a no-op.
func RemoveCartItem(items []CartItem, productID primitive.ObjectID) []CartItem {
	filtered := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// CartTotal sums the resolved product prices. No tax or rounding policy.
func CartTotal(products []Product) float64 {
	var total float64
	for _, product := range products {
		total += product.Price
	}
	return total
}
