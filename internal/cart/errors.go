package cart

import (
	"errors"
	"fmt"

	"github.com/angelmondragon/cart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cart-backend/pkg/errors"
	"gorm.io/gorm"
)

func duplicateItemError(key any) *pkgerrors.Error {
	return pkgerrors.Newf(pkgerrors.CodeValidation, "duplicate item: %v", key).
		WithDetails(map[string]any{"key": key})
}

func optionNotFoundError(optionID int64) *pkgerrors.Error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "option not found: %d", optionID).
		WithDetails(map[string]any{"id": optionID})
}

// cartLineNotFoundError is used for missing lines and lines owned by another member alike.
func cartLineNotFoundError(cartID int64) *pkgerrors.Error {
	return pkgerrors.Newf(pkgerrors.CodeNotFound, "cart item not found: %d", cartID).
		WithDetails(map[string]any{"id": cartID})
}

func priceOverflowError(key int64, quantity int) *pkgerrors.Error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, models.ErrPriceOverflow,
		fmt.Sprintf("quantity too large: %d", quantity)).
		WithDetails(map[string]any{"id": key, "quantity": quantity})
}

func batchTotalOverflowError() *pkgerrors.Error {
	return pkgerrors.Wrap(pkgerrors.CodeValidation, models.ErrPriceOverflow, "cart total too large")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
