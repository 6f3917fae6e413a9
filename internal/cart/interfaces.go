package cart

import (
	"context"

	"github.com/angelmondragon/cart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	CreateBatch(ctx context.Context, lines []models.CartLine) error
	FindByIDForMember(ctx context.Context, id, memberID int64) (*models.CartLine, error)
	Save(ctx context.Context, line *models.CartLine) error
	FindAllForMember(ctx context.Context, memberID int64) ([]models.CartLine, error)
}

// OptionLookup resolves catalog options. Missing options must surface gorm.ErrRecordNotFound.
type OptionLookup interface {
	FindOption(ctx context.Context, id int64) (*models.Option, error)
}
