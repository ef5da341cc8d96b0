package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a weak reference to a product or bundle inside a user's cart,
// with a denormalized availability flag kept in sync by the availability
// cascade. Exactly one of ProductID and BundleID is set.
type CartItem struct {
	ProductID     *uuid.UUID `json:"productId,omitempty"`
	BundleID      *uuid.UUID `json:"bundleId,omitempty"`
	Quantity      int        `json:"quantity"`
	IsUnavailable bool       `json:"isUnavailable"`
}

// Cart holds a user's cart items. Carts never own the referenced entities;
// they cache availability for display.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
