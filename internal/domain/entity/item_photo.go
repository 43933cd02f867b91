package entity

import (
	"time"
)

// ItemPhoto is one photo attached to an item. Exactly one photo per item is
// primary once the item has any photos; DisplayOrder is dense and 0-based
// per item.
type ItemPhoto struct {
	ID             int       `json:"id"`
	ItemID         int       `json:"itemId"`
	PhotoUrl       string    `json:"photoUrl"`
	IsPrimaryPhoto bool      `json:"isPrimaryPhoto"`
	UploadedAt     time.Time `json:"uploadedAt"`
	DisplayOrder   int       `json:"displayOrder"`
}
