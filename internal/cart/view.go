package cart

import "github.com/angelmondragon/cart-backend/pkg/db/models"

// CartView is the member's cart grouped by product.
type CartView struct {
	Products   []ProductGroup
	TotalPrice int64
}

// ProductGroup holds a product's lines in the order they were added.
type ProductGroup struct {
	ProductID   int64
	ProductName string
	Carts       []CartEntry
	Subtotal    int64
}

// CartEntry is one cart line inside a product group.
type CartEntry struct {
	ID       int64
	Option   OptionSummary
	Quantity int
	Price    int64
}

// OptionSummary carries the option identity and the unit price captured on the line.
type OptionSummary struct {
	ID         int64
	OptionName string
	Price      int64
}

// UpdateView lists the updated lines in request order followed by the rest of the cart.
type UpdateView struct {
	Carts      []UpdatedEntry
	TotalPrice int64
}

// UpdatedEntry is one line of the cart as returned by an update.
type UpdatedEntry struct {
	CartID     int64
	OptionID   int64
	OptionName string
	Quantity   int
	Price      int64
}

// BuildCartView folds flat cart lines into product groups. Groups are ordered by the
// first appearance of their product and keep the relative order of their lines.
func BuildCartView(lines []models.CartLine) CartView {
	view := CartView{Products: []ProductGroup{}}
	index := make(map[int64]int)

	for _, line := range lines {
		productID, productName := productOf(line)
		pos, ok := index[productID]
		if !ok {
			pos = len(view.Products)
			index[productID] = pos
			view.Products = append(view.Products, ProductGroup{
				ProductID:   productID,
				ProductName: productName,
				Carts:       []CartEntry{},
			})
		}

		group := &view.Products[pos]
		group.Carts = append(group.Carts, CartEntry{
			ID: line.ID,
			Option: OptionSummary{
				ID:         line.OptionID,
				OptionName: optionNameOf(line),
				Price:      line.UnitPrice,
			},
			Quantity: line.Quantity,
			Price:    line.Price,
		})
		group.Subtotal += line.Price
	}

	for _, group := range view.Products {
		view.TotalPrice += group.Subtotal
	}
	return view
}

func buildUpdateView(updated, all []models.CartLine) UpdateView {
	view := UpdateView{Carts: make([]UpdatedEntry, 0, len(all))}
	touched := make(map[int64]struct{}, len(updated))

	for _, line := range updated {
		touched[line.ID] = struct{}{}
		view.Carts = append(view.Carts, toUpdatedEntry(line))
		view.TotalPrice += line.Price
	}
	for _, line := range all {
		if _, ok := touched[line.ID]; ok {
			continue
		}
		view.Carts = append(view.Carts, toUpdatedEntry(line))
		view.TotalPrice += line.Price
	}
	return view
}

func toUpdatedEntry(line models.CartLine) UpdatedEntry {
	return UpdatedEntry{
		CartID:     line.ID,
		OptionID:   line.OptionID,
		OptionName: optionNameOf(line),
		Quantity:   line.Quantity,
		Price:      line.Price,
	}
}

func productOf(line models.CartLine) (int64, string) {
	if line.Option == nil {
		return 0, ""
	}
	if line.Option.Product == nil {
		return line.Option.ProductID, ""
	}
	return line.Option.Product.ID, line.Option.Product.ProductName
}

func optionNameOf(line models.CartLine) string {
	if line.Option == nil {
		return ""
	}
	return line.Option.OptionName
}
