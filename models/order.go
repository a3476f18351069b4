package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

// Order is created exactly once per successful order transaction. TotalAmount
// is written as zero when the shell row is inserted and finalized to the
// recomputed sum before commit; only the finalized value is ever visible
// outside the transaction.
type Order struct {
	Id           uint            `gorm:"primaryKey" json:"id"`
	CustomerName string          `gorm:"size:256;not null" json:"customer_name"`
	Address      string          `gorm:"not null" json:"address"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status       string          `gorm:"size:20;default:pending" json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is immutable once written. PriceAtTime is the product's unit
// price as read inside the same transaction that created the order; later
// catalog price changes never touch it.
type OrderItem struct {
	Id          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"column:order_id;not null" json:"order_id"`
	ProductID   uint            `gorm:"column:product_id;not null" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"column:price_at_time;type:decimal(12,2);not null" json:"price_at_time"`
}

func (OrderItem) TableName() string { return "order_items" }
