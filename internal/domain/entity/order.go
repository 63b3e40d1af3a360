package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is a hallmark or X-ray service order. Customer attributes are a
// denormalized snapshot taken at creation time; later customer edits do
// not flow back into existing orders. Orders are never updated in place
// and deletes are hard deletes.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name         string           `gorm:"size:255" json:"name"`
	CustomerID   string           `gorm:"size:50;index" json:"customerID"`
	Company      string           `gorm:"size:255" json:"company"`
	Contact      string           `gorm:"size:11" json:"contact"`
	Address      string           `gorm:"type:text" json:"address"`
	Type         enum.ServiceType `gorm:"size:20;not null;index" json:"type"`
	Voucher      string           `gorm:"size:6;not null" json:"voucher"`
	TotalAmount  int64            `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	DeliveryDate *time.Time       `gorm:"type:date" json:"deliveryDate,omitempty"`
	ImagePath    *string          `gorm:"size:255" json:"image,omitempty"`
	CreatedAt    time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"totalAmount"`
	}{
		Alias:       Alias(o),
		TotalAmount: float64(o.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.TotalAmount) / 100
}

// OrderItem represents one priced row of an order
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemName   string          `gorm:"size:120;not null" json:"item"`
	Quantity   float64         `gorm:"not null;default:0" json:"quantity"`
	Rate       int64           `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Weight     float64         `gorm:"default:0" json:"weight"`
	WeightUnit enum.WeightUnit `gorm:"size:10" json:"weightUnite"`
	Amount     int64           `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Note       string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt  time.Time       `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Rate   float64 `json:"rate"`
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(i),
		Rate:   float64(i.Rate) / 100,
		Amount: float64(i.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
