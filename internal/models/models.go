package models

import "time"

// Product is one catalog item. The engine never mutates products; catalog
// management lives in the storefront, we only read.
type Product struct {
	ID       int64    `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Price    float64  `json:"price" bson:"price"`
	Category string   `json:"category" bson:"category"`
	Sizes    []string `json:"sizes" bson:"sizes"`
	Colors   []string `json:"colors" bson:"colors"`
}

// OutfitItem is one role slot inside a bundle. Product is nil when nothing
// in the catalog matched the role; Label then carries a generic filler phrase
// and the renderer must not attach a product link.
type OutfitItem struct {
	Label   string   `json:"label"`
	Product *Product `json:"product,omitempty"`
}

// OutfitBundle is one proposed combination. IDs are sequence labels unique
// within a single recommendation call only.
type OutfitBundle struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Items      []OutfitItem `json:"items"`
	Colors     string       `json:"colors"`
	Why        string       `json:"why"`
	StylingTip string       `json:"styling_tip"`
}

// Message is one transcript entry, either side of the conversation.
type Message struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds the slot-filling state accumulated for one user.
type Session struct {
	UserID      int64       `json:"user_id"`
	Preferences Preferences `json:"preferences"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
