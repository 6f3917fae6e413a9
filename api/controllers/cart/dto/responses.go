package cartdto

// AddCartResult acknowledges a committed add batch.
type AddCartResult struct {
	Success bool `json:"success"`
}

// CartList is the member cart grouped by product.
type CartList struct {
	Products   []ProductGroup `json:"products"`
	TotalPrice int64          `json:"totalPrice"`
}

type ProductGroup struct {
	ID          int64       `json:"id"`
	ProductName string      `json:"productName"`
	Carts       []CartEntry `json:"carts"`
	TotalPrice  int64       `json:"totalPrice"`
}

type CartEntry struct {
	ID       int64         `json:"id"`
	Option   OptionSummary `json:"option"`
	Quantity int           `json:"quantity"`
	Price    int64         `json:"price"`
}

type OptionSummary struct {
	ID         int64  `json:"id"`
	OptionName string `json:"optionName"`
	Price      int64  `json:"price"`
}

// UpdateCartResult lists the updated lines first, then the rest of the cart.
type UpdateCartResult struct {
	Carts      []UpdatedCartEntry `json:"carts"`
	TotalPrice int64              `json:"totalPrice"`
}

type UpdatedCartEntry struct {
	CartID     int64  `json:"cartId"`
	OptionID   int64  `json:"optionId"`
	OptionName string `json:"optionName"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}
