package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Operation is one of AddItem, RemoveItem, SetQuantity or Clear
type Operation interface {
	fmt.Stringer
	isOperation()
}

type AddItem struct {
	Product Product
}

type RemoveItem struct {
	ID string
}

type SetQuantity struct {
	ID       string
	Quantity int
}

type Clear struct{}

func (AddItem) isOperation()     {}
func (RemoveItem) isOperation()  {}
func (SetQuantity) isOperation() {}
func (Clear) isOperation()       {}

func (o AddItem) String() string     { return fmt.Sprintf("add-item(%s)", o.Product.ID) }
func (o RemoveItem) String() string  { return fmt.Sprintf("remove-item(%s)", o.ID) }
func (o SetQuantity) String() string { return fmt.Sprintf("set-quantity(%s,%d)", o.ID, o.Quantity) }
func (o Clear) String() string       { return "clear" }

// Reduce is the pure transition function of the cart. The input state is never modified.
// Totals are adjusted by deltas, unknown ids leave the state as is.
func Reduce(state CartState, op Operation) CartState {
	next := state.Copy()

	switch o := op.(type) {
	case AddItem:
		idx := next.indexOf(o.Product.ID)
		if idx >= 0 {
			// price stays locked at the value of the first add
			next.Items[idx].Quantity++
			next.TotalPrice = next.TotalPrice.Add(next.Items[idx].UnitPrice)
		} else {
			next.Items = append(next.Items, CartItem{Product: o.Product, Quantity: 1})
			next.TotalPrice = next.TotalPrice.Add(o.Product.UnitPrice)
		}
		next.TotalItems++
		return next

	case RemoveItem:
		return removeAt(next, next.indexOf(o.ID))

	case SetQuantity:
		idx := next.indexOf(o.ID)
		if idx < 0 {
			return next
		}
		if o.Quantity <= 0 {
			return removeAt(next, idx)
		}
		delta := o.Quantity - next.Items[idx].Quantity
		next.Items[idx].Quantity = o.Quantity
		next.TotalItems += delta
		next.TotalPrice = next.TotalPrice.Add(next.Items[idx].UnitPrice.Mul(decimal.NewFromInt(int64(delta))))
		return next

	case Clear:
		return EmptyState()

	default:
		return next
	}
}

func removeAt(state CartState, idx int) CartState {
	if idx < 0 {
		return state
	}
	removed := state.Items[idx]
	state.Items = append(state.Items[:idx], state.Items[idx+1:]...)
	state.TotalItems -= removed.Quantity
	state.TotalPrice = state.TotalPrice.Sub(removed.LinePrice())
	return state
}

// targetOf returns the item id an operation refers to
func targetOf(op Operation) (string, bool) {
	switch o := op.(type) {
	case RemoveItem:
		return o.ID, true
	case SetQuantity:
		return o.ID, true
	default:
		return "", false
	}
}
