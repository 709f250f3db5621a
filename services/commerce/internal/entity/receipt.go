package entity

import (
	"strings"
	"time"
)

// productCredits maps store product identifiers to granted credits.
// Unknown products grant nothing.
var productCredits = map[string]int{
	"credits_5":        5,
	"credits_20":       20,
	"credits_100":      100,
	"sub_monthly_plus": 50,
}

// ProductCredits returns the credits granted for a store product id.
func ProductCredits(productID string) int {
	return productCredits[productID]
}

// IsSubscription reports whether a product id is a subscription product.
func IsSubscription(productID string) bool {
	return strings.HasPrefix(productID, "sub_")
}

// Receipt product types.
const (
	ProductConsumable   = "consumable"
	ProductSubscription = "subscription"
)

type Receipt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Store          string    `json:"store"`
	ProductID      string    `json:"product_id"`
	ProductType    string    `json:"product_type"`
	TransactionID  string    `json:"transaction_id"`
	Raw            string    `json:"-"`
	Validated      bool      `json:"validated"`
	CreditsGranted int       `json:"credits_granted"`
	CreatedAt      time.Time `json:"created_at"`
}
