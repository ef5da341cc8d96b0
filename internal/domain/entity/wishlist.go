package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem mirrors CartItem for wishlists.
type WishlistItem struct {
	ProductID     *uuid.UUID `json:"productId,omitempty"`
	BundleID      *uuid.UUID `json:"bundleId,omitempty"`
	IsUnavailable bool       `json:"isUnavailable"`
}

// Wishlist holds a user's saved items.
type Wishlist struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
