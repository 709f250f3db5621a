package entity

import "time"

type OwnedItemType string

const (
	ItemTypeWallpaper  OwnedItemType = "wallpaper"
	ItemTypeGeneration OwnedItemType = "generation"
)

type OwnershipSource string

const (
	SourcePurchase OwnershipSource = "purchase"
	SourceUnlock   OwnershipSource = "unlock"
)

// Ownership grants permanent access to an item. At most one record
// exists per (user, ref) pair.
type Ownership struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ItemType  OwnedItemType   `json:"item_type"`
	RefID     string          `json:"ref_id"`
	Source    OwnershipSource `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}
