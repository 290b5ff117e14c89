package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPaymentDetailsValidate(t *testing.T) {
	card := PaymentDetails{
		Method:     "credit-card",
		CardNumber: "4111 1111 1111 1111",
		CardName:   "Jamie Doe",
		ExpiryDate: "12/27",
		Cvv:        "123",
	}

	tests := []struct {
		name    string
		payment PaymentDetails
		wantErr error
	}{
		{"credit card ok", card, nil},
		{"debit card ok", PaymentDetails{Method: "debit-card", CardNumber: "1", CardName: "a", ExpiryDate: "01/26", Cvv: "000"}, nil},
		{"upi ok", PaymentDetails{Method: "upi", UpiID: "jamie@upi"}, nil},
		{"missing cvv", PaymentDetails{Method: "credit-card", CardNumber: "1", CardName: "a", ExpiryDate: "01/26"}, ErrMissingCardDetails},
		{"missing card number", PaymentDetails{Method: "debit-card", CardName: "a", ExpiryDate: "01/26", Cvv: "1"}, ErrMissingCardDetails},
		{"missing upi id", PaymentDetails{Method: "upi"}, ErrMissingUpiID},
		{"unknown method", PaymentDetails{Method: "crypto"}, ErrInvalidPaymentMethod},
		{"empty method", PaymentDetails{}, ErrInvalidPaymentMethod},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.payment.Validate(); err != tc.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestPurchaseItemsSnapshotsNameAndPrice(t *testing.T) {
	first := Product{ID: primitive.NewObjectID(), Title: "Bamboo Toothbrush", Price: 4.5}
	second := Product{ID: primitive.NewObjectID(), Title: "Solar Charger", Price: 35}

	items := PurchaseItems([]Product{first, second})
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	if items[0].ProductID != first.ID || items[0].ProductName != "Bamboo Toothbrush" || items[0].Price != 4.5 {
		t.Errorf("first item snapshot wrong: %+v", items[0])
	}
	if items[1].ProductID != second.ID || items[1].ProductName != "Solar Charger" || items[1].Price != 35 {
		t.Errorf("second item snapshot wrong: %+v", items[1])
	}

	// Editing the product afterwards must not touch the snapshot
	first.Price = 99
	first.Title = "Renamed"
	if items[0].Price != 4.5 || items[0].ProductName != "Bamboo Toothbrush" {
		t.Errorf("snapshot followed product edit: %+v", items[0])
	}

	// The invariant the checkout flow relies on
	if total := CartTotal([]Product{{Price: 4.5}, {Price: 35}}); total != 39.5 {
		t.Errorf("CartTotal = %v, want 39.5", total)
	}
}

func TestPurchaseItemsEmptyCart(t *testing.T) {
	if items := PurchaseItems(nil); len(items) != 0 {
		t.Fatalf("got %+v, want empty", items)
	}
}
