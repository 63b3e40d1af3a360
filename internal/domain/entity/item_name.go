package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ItemName is a catalog entry for an order line-item name. Normalized
// holds the lower-cased, whitespace-collapsed form; (type, normalized)
// is unique so dedup is case and whitespace insensitive.
type ItemName struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name       string           `gorm:"size:120;not null" json:"name"`
	Type       enum.ServiceType `gorm:"size:20;not null;uniqueIndex:idx_item_type_normalized" json:"type"`
	Normalized string           `gorm:"size:120;not null;uniqueIndex:idx_item_type_normalized" json:"-"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new item name
func (n *ItemName) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ItemName model
func (ItemName) TableName() string {
	return "item_names"
}
