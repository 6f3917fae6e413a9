package models

import (
	"errors"
	"math"
	"time"
)

// ErrPriceOverflow reports a line price that does not fit in int64.
var ErrPriceOverflow = errors.New("cart line price overflows")

// CartLine is one option held in a member's cart. UnitPrice is the option price captured
// when the line was added so later catalog changes do not alter the cart total.
type CartLine struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID  int64     `gorm:"column:member_id;not null;index"`
	OptionID  int64     `gorm:"column:option_id;not null"`
	Option    *Option   `gorm:"foreignKey:OptionID"`
	Quantity  int       `gorm:"column:quantity;not null"`
	UnitPrice int64     `gorm:"column:unit_price;not null"`
	Price     int64     `gorm:"column:price;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CartLine) TableName() string { return "cart_lines" }

// Reprice sets the quantity and recomputes the line price from the stored unit price.
// The line is left untouched when the product overflows.
func (l *CartLine) Reprice(quantity int) error {
	q := int64(quantity)
	if q > 0 && l.UnitPrice > 0 && q > math.MaxInt64/l.UnitPrice {
		return ErrPriceOverflow
	}
	l.Quantity = quantity
	l.Price = q * l.UnitPrice
	return nil
}

// AddPrice sums two amounts, failing with ErrPriceOverflow instead of wrapping.
func AddPrice(total, price int64) (int64, error) {
	if (price > 0 && total > math.MaxInt64-price) || (price < 0 && total < math.MinInt64-price) {
		return 0, ErrPriceOverflow
	}
	return total + price, nil
}
