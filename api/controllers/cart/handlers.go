package cart

import (
	"net/http"

	cartdto "github.com/angelmondragon/cart-backend/api/controllers/cart/dto"
	"github.com/angelmondragon/cart-backend/api/middleware"
	"github.com/angelmondragon/cart-backend/api/responses"
	"github.com/angelmondragon/cart-backend/api/validators"
	cartsvc "github.com/angelmondragon/cart-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/cart-backend/pkg/errors"
	"github.com/angelmondragon/cart-backend/pkg/logger"
)

// maxBatchItems caps the number of entries accepted in one mutation request.
const maxBatchItems = 100

// CartList returns the member's cart grouped by product.
func CartList(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		memberID, err := memberIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.ListCart(r.Context(), memberID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartList(view))
	}
}

// CartAdd adds a batch of options to the member's cart. The batch is committed whole or not at all.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		memberID, err := memberIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload, err := validators.DecodeJSONList[cartdto.AddCartItem](r, maxBatchItems)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddCart(r.Context(), memberID, toAddInputs(payload)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cartdto.AddCartResult{Success: true})
	}
}

// CartUpdate changes quantities on existing cart lines and returns the repriced cart.
func CartUpdate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		memberID, err := memberIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload, err := validators.DecodeJSONList[cartdto.UpdateCartItem](r, maxBatchItems)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.UpdateCart(r.Context(), memberID, toUpdateInputs(payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newUpdateCartResult(view))
	}
}

func memberIDFromRequest(r *http.Request) (int64, error) {
	memberID, ok := middleware.MemberIDFromContext(r.Context())
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "member context missing")
	}
	return memberID, nil
}
