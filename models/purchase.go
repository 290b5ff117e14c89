package models

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseItem is a snapshot of a product at checkout time. Name and price are
// copied, not referenced, so later edits to the product never rewrite history.
type PurchaseItem struct {
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	Price       float64            `bson:"price" json:"price"`
}

// Purchase is an append-only record in the "purchases" collection, deletable
// only by its owner.
type Purchase struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Items       []PurchaseItem     `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	PurchasedAt time.Time          `bson:"purchasedAt" json:"purchasedAt"`
}

// PurchaseItems snapshots the resolved cart products.
func PurchaseItems(products []Product) []PurchaseItem {
	items := make([]PurchaseItem, 0, len(products))
	for _, product := range products {
		items = append(items, PurchaseItem{
			ProductID:   product.ID,
			ProductName: product.Title,
			Price:       product.Price,
		})
	}
	return items
}

// PaymentDetails carries the mock payment form. Fields are only checked for
// presence; no gateway is involved and nothing is charged.
type PaymentDetails struct {
	Method     string `json:"method" validate:"required,oneof=credit-card debit-card upi"`
	CardNumber string `json:"cardNumber" validate:"required_unless=Method upi"`
	CardName   string `json:"cardName" validate:"required_unless=Method upi"`
	ExpiryDate string `json:"expiryDate" validate:"required_unless=Method upi"`
	Cvv        string `json:"cvv" validate:"required_unless=Method upi"`
	UpiID      string `json:"upiId" validate:"required_if=Method upi"`
}

var validate = validator.New()

var (
	ErrInvalidPaymentMethod = errors.New("please select a valid payment method")
	ErrMissingCardDetails   = errors.New("please fill in all card details")
	ErrMissingUpiID         = errors.New("please enter your UPI ID")
)

// Validate checks the method-specific required fields.
func (p PaymentDetails) Validate() error {
	if err := validate.Struct(p); err == nil {
		return nil
	}
	switch p.Method {
	case "credit-card", "debit-card":
		return ErrMissingCardDetails
	case "upi":
		return ErrMissingUpiID
	default:
		return ErrInvalidPaymentMethod
	}
}
