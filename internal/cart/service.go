package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/cart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cart-backend/pkg/errors"
	"github.com/angelmondragon/cart-backend/pkg/logger"
	"github.com/angelmondragon/cart-backend/pkg/metrics"
	"gorm.io/gorm"
)

const (
	opAdd    = "add"
	opUpdate = "update"
	opList   = "list"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type operationRecorder interface {
	Observe(op, outcome string, duration time.Duration)
	ObserveBatch(op string, items int)
}

// Service exposes the member cart operations.
type Service interface {
	AddCart(ctx context.Context, memberID int64, items []AddItemInput) error
	UpdateCart(ctx context.Context, memberID int64, items []UpdateItemInput) (*UpdateView, error)
	ListCart(ctx context.Context, memberID int64) (*CartView, error)
}

// AddItemInput asks for quantity units of a catalog option.
type AddItemInput struct {
	OptionID int64
	Quantity int
}

// UpdateItemInput sets the quantity of an existing cart line.
type UpdateItemInput struct {
	CartID   int64
	Quantity int
}

// ServiceParams wires the cart service dependencies. Metrics is optional.
type ServiceParams struct {
	Repo    CartRepository
	Tx      txRunner
	Options OptionLookup
	Metrics operationRecorder
	Logger  *logger.Logger
}

type service struct {
	repo    CartRepository
	tx      txRunner
	options OptionLookup
	metrics operationRecorder
	logg    *logger.Logger
}

// NewService builds a cart service backed by the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Options == nil {
		return nil, fmt.Errorf("option lookup required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	recorder := params.Metrics
	if recorder == nil {
		recorder = (*metrics.CartMetrics)(nil)
	}
	return &service{
		repo:    params.Repo,
		tx:      params.Tx,
		options: params.Options,
		metrics: recorder,
		logg:    params.Logger,
	}, nil
}

// AddCart validates the whole batch, resolves every option against the catalog, and
// persists the new lines together. Any failure leaves the cart untouched.
func (s *service) AddCart(ctx context.Context, memberID int64, items []AddItemInput) (err error) {
	start := time.Now()
	defer func() { s.observe(opAdd, start, err) }()
	s.metrics.ObserveBatch(opAdd, len(items))

	if err := ensureUnique(optionIDs(items)); err != nil {
		return err
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		option, err := s.options.FindOption(ctx, item.OptionID)
		if err != nil {
			if isNotFound(err) {
				return optionNotFoundError(item.OptionID)
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load option")
		}

		line := models.CartLine{
			MemberID:  memberID,
			OptionID:  option.ID,
			UnitPrice: option.Price,
		}
		if err := line.Reprice(item.Quantity); err != nil {
			return priceOverflowError(item.OptionID, item.Quantity)
		}
		lines = append(lines, line)
	}
	if err := checkBatchTotal(lines); err != nil {
		return err
	}

	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).CreateBatch(ctx, lines)
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart lines")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{"items": len(lines)})
	s.logg.Info(logCtx, "cart.add.completed")
	return nil
}

// UpdateCart changes quantities on existing lines and reprices them from the unit price
// captured when each line was added. The response lists the updated lines first, in
// request order, followed by the rest of the member's cart.
func (s *service) UpdateCart(ctx context.Context, memberID int64, items []UpdateItemInput) (view *UpdateView, err error) {
	start := time.Now()
	defer func() { s.observe(opUpdate, start, err) }()
	s.metrics.ObserveBatch(opUpdate, len(items))

	if err := ensureUnique(cartIDs(items)); err != nil {
		return nil, err
	}

	updated := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		line, err := s.repo.FindByIDForMember(ctx, item.CartID, memberID)
		if err != nil {
			if isNotFound(err) {
				return nil, cartLineNotFoundError(item.CartID)
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
		}
		if err := line.Reprice(item.Quantity); err != nil {
			return nil, priceOverflowError(item.CartID, item.Quantity)
		}
		updated = append(updated, *line)
	}
	if err := checkBatchTotal(updated); err != nil {
		return nil, err
	}

	var all []models.CartLine
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for i := range updated {
			if err := repo.Save(ctx, &updated[i]); err != nil {
				// Removed since it was loaded; roll the whole batch back.
				if isNotFound(err) {
					return cartLineNotFoundError(updated[i].ID)
				}
				return err
			}
		}
		var err error
		all, err = repo.FindAllForMember(ctx, memberID)
		return err
	}); err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart lines")
	}

	result := buildUpdateView(updated, all)
	logCtx := s.logg.WithFields(ctx, map[string]any{
		"items":       len(updated),
		"total_price": result.TotalPrice,
	})
	s.logg.Info(logCtx, "cart.update.completed")
	return &result, nil
}

// ListCart returns the member's cart grouped by product.
func (s *service) ListCart(ctx context.Context, memberID int64) (view *CartView, err error) {
	start := time.Now()
	defer func() { s.observe(opList, start, err) }()

	lines, err := s.repo.FindAllForMember(ctx, memberID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	result := BuildCartView(lines)
	return &result, nil
}

func (s *service) observe(op string, start time.Time, err error) {
	s.metrics.Observe(op, outcomeOf(err), time.Since(start))
}

func checkBatchTotal(lines []models.CartLine) error {
	var total int64
	for _, line := range lines {
		next, err := models.AddPrice(total, line.Price)
		if err != nil {
			return batchTotalOverflowError()
		}
		total = next
	}
	return nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, models.ErrPriceOverflow):
		return metrics.OutcomeInvalid
	case pkgerrors.HasCode(err, pkgerrors.CodeValidation):
		return metrics.OutcomeDuplicate
	case pkgerrors.HasCode(err, pkgerrors.CodeNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
