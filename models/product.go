package models

import (
	"github.com/shopspring/decimal"
)

type Category struct {
	Id   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Category) TableName() string { return "categories" }

// Product corresponds to the 'products' table. Price is a fixed-point
// decimal(12,2); it is read inside the order transaction to freeze the
// per-line snapshot and must never be handled as a float.
type Product struct {
	Id          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:256;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	ImageURL    string          `gorm:"column:image_url" json:"image_url"`
	CategoryID  *uint           `gorm:"column:category_id" json:"category_id"`
}

func (Product) TableName() string { return "products" }
