package cart

import (
	"context"

	"github.com/angelmondragon/cart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence operations for cart lines.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// CreateBatch inserts the provided lines in order, filling their ids.
func (r *Repository) CreateBatch(ctx context.Context, lines []models.CartLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Option").Create(&lines).Error
}

// FindByIDForMember returns the line only when it belongs to memberID; lines owned by
// other members are reported as gorm.ErrRecordNotFound.
func (r *Repository) FindByIDForMember(ctx context.Context, id, memberID int64) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.WithContext(ctx).
		Preload("Option").
		Where("id = ? AND member_id = ?", id, memberID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// Save persists quantity and price changes for an existing line. A line that no
// longer exists yields gorm.ErrRecordNotFound.
func (r *Repository) Save(ctx context.Context, line *models.CartLine) error {
	res := r.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("id = ? AND member_id = ?", line.ID, line.MemberID).
		Updates(map[string]any{
			"quantity": line.Quantity,
			"price":    line.Price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindAllForMember lists the member's lines in insertion order with option and product loaded.
func (r *Repository) FindAllForMember(ctx context.Context, memberID int64) ([]models.CartLine, error) {
	var rows []models.CartLine
	if err := r.db.WithContext(ctx).
		Preload("Option.Product").
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
