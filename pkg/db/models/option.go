package models

import "time"

// Option is a purchasable variant of a product with its own current price.
type Option struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID  int64     `gorm:"column:product_id;not null;index"`
	Product    *Product  `gorm:"foreignKey:ProductID"`
	OptionName string    `gorm:"column:option_name;not null"`
	Price      int64     `gorm:"column:price;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Option) TableName() string { return "options" }
