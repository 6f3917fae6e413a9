package cart

import (
	cartdto "github.com/angelmondragon/cart-backend/api/controllers/cart/dto"
	cartsvc "github.com/angelmondragon/cart-backend/internal/cart"
)

func newCartList(view *cartsvc.CartView) cartdto.CartList {
	out := cartdto.CartList{Products: []cartdto.ProductGroup{}}
	if view == nil {
		return out
	}
	out.TotalPrice = view.TotalPrice
	for _, group := range view.Products {
		entries := make([]cartdto.CartEntry, 0, len(group.Carts))
		for _, entry := range group.Carts {
			entries = append(entries, cartdto.CartEntry{
				ID: entry.ID,
				Option: cartdto.OptionSummary{
					ID:         entry.Option.ID,
					OptionName: entry.Option.OptionName,
					Price:      entry.Option.Price,
				},
				Quantity: entry.Quantity,
				Price:    entry.Price,
			})
		}
		out.Products = append(out.Products, cartdto.ProductGroup{
			ID:          group.ProductID,
			ProductName: group.ProductName,
			Carts:       entries,
			TotalPrice:  group.Subtotal,
		})
	}
	return out
}

func newUpdateCartResult(view *cartsvc.UpdateView) cartdto.UpdateCartResult {
	out := cartdto.UpdateCartResult{Carts: []cartdto.UpdatedCartEntry{}}
	if view == nil {
		return out
	}
	out.TotalPrice = view.TotalPrice
	for _, entry := range view.Carts {
		out.Carts = append(out.Carts, cartdto.UpdatedCartEntry{
			CartID:     entry.CartID,
			OptionID:   entry.OptionID,
			OptionName: entry.OptionName,
			Quantity:   entry.Quantity,
			Price:      entry.Price,
		})
	}
	return out
}
