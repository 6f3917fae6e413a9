package cart

import (
	cartdto "github.com/angelmondragon/cart-backend/api/controllers/cart/dto"
	cartsvc "github.com/angelmondragon/cart-backend/internal/cart"
)

func toAddInputs(payload []cartdto.AddCartItem) []cartsvc.AddItemInput {
	items := make([]cartsvc.AddItemInput, len(payload))
	for i, item := range payload {
		items[i] = cartsvc.AddItemInput{OptionID: item.OptionID, Quantity: item.Quantity}
	}
	return items
}

func toUpdateInputs(payload []cartdto.UpdateCartItem) []cartsvc.UpdateItemInput {
	items := make([]cartsvc.UpdateItemInput, len(payload))
	for i, item := range payload {
		items[i] = cartsvc.UpdateItemInput{CartID: item.CartID, Quantity: item.Quantity}
	}
	return items
}
