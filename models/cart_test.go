package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddCartItemRejectsDuplicate(t *testing.T) {
	productID := primitive.NewObjectID()

	items, err := AddCartItem(nil, productID)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != productID || items[0].Quantity != 1 {
		t.Fatalf("unexpected items after first add: %+v", items)
	}

	again, err := AddCartItem(items, productID)
	if err != ErrAlreadyInCart {
		t.Fatalf("second add: got err %v, want ErrAlreadyInCart", err)
	}
	if len(again) != 1 {
		t.Fatalf("cart changed by rejected add: %+v", again)
	}
}

func TestAddCartItemAppendsNewProduct(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	items, _ := AddCartItem(nil, first)
	items, err := AddCartItem(items, second)
	if err != nil {
		t.Fatalf("add second product: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Quantity != 1 {
			t.Errorf("quantity for %s = %d, want 1", item.ProductID.Hex(), item.Quantity)
		}
	}
}

func TestRemoveCartItem(t *testing.T) {
	keep := primitive.NewObjectID()
	drop := primitive.NewObjectID()
	absent := primitive.NewObjectID()

	items := []CartItem{
		{ProductID: keep, Quantity: 1},
		{ProductID: drop, Quantity: 1},
	}

	got := RemoveCartItem(items, drop)
	if len(got) != 1 || got[0].ProductID != keep {
		t.Fatalf("remove present item: got %+v", got)
	}

	// Removing something not in the cart must leave it unchanged
	got = RemoveCartItem(got, absent)
	if len(got) != 1 || got[0].ProductID != keep {
		t.Fatalf("remove absent item changed cart: %+v", got)
	}
}

func TestRemoveCartItemEmpty(t *testing.T) {
	got := RemoveCartItem(nil, primitive.NewObjectID())
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{9.99}, 9.99},
		{"two products", []float64{12.50, 7.25}, 19.75},
		{"three products", []float64{5, 10, 0.5}, 15.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products := make([]Product, 0, len(tc.prices))
			for _, price := range tc.prices {
				products = append(products, Product{Price: price})
			}
			if got := CartTotal(products); got != tc.expected {
				t.Errorf("CartTotal = %v, want %v", got, tc.expected)
			}
		})
	}
}
