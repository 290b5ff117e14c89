package models

import (
	"testing"
	"time"
)

func TestListingUpdateWhitelist(t *testing.T) {
	update := ListingUpdate("Reusable Bottle", "Steel, 750ml", "Home & Garden", 15.0, "data:image/jpeg;base64,xyz")

	want := map[string]interface{}{
		"title":       "Reusable Bottle",
		"description": "Steel, 750ml",
		"category":    "Home & Garden",
		"price":       15.0,
		"imageUrl":    "data:image/jpeg;base64,xyz",
	}
	if len(update) != len(want) {
		t.Fatalf("update has %d fields, want %d: %v", len(update), len(want), update)
	}
	for key, value := range want {
		if update[key] != value {
			t.Errorf("update[%q] = %v, want %v", key, update[key], value)
		}
	}

	// Ownership and creation metadata must never be part of an edit
	for _, forbidden := range []string{"ownerId", "createdAt", "views", "sustainabilityScore", "co2Saved", "waterSaved", "seller", "_id"} {
		if _, ok := update[forbidden]; ok {
			t.Errorf("update must not contain %q", forbidden)
		}
	}
}

func TestNewListing(t *testing.T) {
	before := time.Now()
	product := NewListing("uid-1", "Hemp Tote", "Sturdy bag", "Clothing", 12.5, "data:image/jpeg;base64,abc", "greta")

	if product.OwnerID != "uid-1" {
		t.Errorf("OwnerID = %q, want uid-1", product.OwnerID)
	}
	if product.Views != 0 {
		t.Errorf("Views = %d, want 0", product.Views)
	}
	if product.CreatedAt.Before(before) {
		t.Errorf("CreatedAt %v predates construction", product.CreatedAt)
	}
	if product.SustainabilityScore < 1 || product.SustainabilityScore > 5 {
		t.Errorf("SustainabilityScore = %d, want 1..5", product.SustainabilityScore)
	}
	if product.Co2Saved < 10 || product.Co2Saved > 109 {
		t.Errorf("Co2Saved = %d, want 10..109", product.Co2Saved)
	}
	if product.WaterSaved < 50 || product.WaterSaved > 549 {
		t.Errorf("WaterSaved = %d, want 50..549", product.WaterSaved)
	}
	if product.Condition != "Good" {
		t.Errorf("Condition = %q, want Good", product.Condition)
	}
	if product.Seller.Name != "greta" || product.Seller.Rating != 5 || !product.Seller.Verified {
		t.Errorf("unexpected seller snapshot: %+v", product.Seller)
	}
}

func TestNewListingAnonymousSeller(t *testing.T) {
	product := NewListing("uid-2", "Title", "Desc", "Other", 1, "data:image/jpeg;base64,abc", "")
	if product.Seller.Name != "Anonymous" {
		t.Errorf("Seller.Name = %q, want Anonymous", product.Seller.Name)
	}
}
