package cartdto

// MaxQuantity caps the units of one option a single line may hold.
const MaxQuantity = 10000

// AddCartItem is one entry of the add-to-cart request body.
type AddCartItem struct {
	OptionID int64 `json:"optionId" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,min=1,max=10000"`
}

// UpdateCartItem is one entry of the update-cart request body.
type UpdateCartItem struct {
	CartID   int64 `json:"cartId" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,min=1,max=10000"`
}
