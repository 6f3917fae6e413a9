package models

import "time"

// Product is the catalog listing that owns one or more purchasable options.
type Product struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductName string    `gorm:"column:product_name;not null"`
	Description string    `gorm:"column:description;not null;default:''"`
	Image       string    `gorm:"column:image;not null;default:''"`
	Price       int64     `gorm:"column:price;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
