package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/cart-backend/pkg/db/models"
)

// Repository reads catalog products and options.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindOption loads the option with its owning product. Missing options surface
// gorm.ErrRecordNotFound.
func (r *Repository) FindOption(ctx context.Context, id int64) (*models.Option, error) {
	var option models.Option
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&option).Error
	if err != nil {
		return nil, err
	}
	return &option, nil
}
