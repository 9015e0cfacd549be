package cart

import "github.com/Kajalkumari31/ministore/internal/domain"

type ActionType string

const (
	ActionAdd       ActionType = "cart/add"
	ActionIncrement ActionType = "cart/increment"
	ActionDecrement ActionType = "cart/decrement"
	ActionRemove    ActionType = "cart/remove"
	ActionClear     ActionType = "cart/clear"
)

// Action is a discrete cart mutation. Use the constructors below.
type Action struct {
	Type      ActionType
	Product   *domain.Product
	ProductID int64
}

// Add merges a product into the cart: existing line items gain quantity,
// new products get a fresh snapshot line item.
func Add(p domain.Product) Action {
	return Action{Type: ActionAdd, Product: &p, ProductID: p.ID}
}

func Increment(productID int64) Action {
	return Action{Type: ActionIncrement, ProductID: productID}
}

func Decrement(productID int64) Action {
	return Action{Type: ActionDecrement, ProductID: productID}
}

func Remove(productID int64) Action {
	return Action{Type: ActionRemove, ProductID: productID}
}

func Clear() Action {
	return Action{Type: ActionClear}
}
