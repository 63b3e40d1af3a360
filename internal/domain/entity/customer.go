package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a registered customer of the shop.
//
// Contact is stored as text so leading zeros survive; CustomerNo is the
// shop-facing sequential number assigned atomically on creation.
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerNo int       `gorm:"uniqueIndex;not null" json:"customerID"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Contact    string    `gorm:"size:11;not null" json:"contact"`
	Companies  []string  `gorm:"serializer:json" json:"company"`
	Address    string    `gorm:"type:text" json:"address"`
	ImagePath  *string   `gorm:"size:255" json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Counter is a named atomic sequence row. The customer number allocator
// increments its row inside the create transaction so two concurrent
// registrations can never share a number.
type Counter struct {
	Name  string `gorm:"size:50;primary_key"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName returns the table name for the Counter model
func (Counter) TableName() string {
	return "counters"
}
