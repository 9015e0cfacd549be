package cart

// reduce applies one action and returns a fresh state snapshot. It never
// mutates the input state.
func reduce(s State, a Action) State {
	next := s.clone()
	switch a.Type {
	case ActionAdd:
		if a.Product == nil {
			return next
		}
		for i := range next.Items {
			if next.Items[i].ProductID == a.Product.ID {
				next.Items[i].Qty++
				return next
			}
		}
		next.Items = append(next.Items, NewLineItem(*a.Product))
	case ActionIncrement:
		for i := range next.Items {
			if next.Items[i].ProductID == a.ProductID {
				next.Items[i].Qty++
				break
			}
		}
	case ActionDecrement:
		// Quantity is clamped at 1; removal is a distinct action.
		for i := range next.Items {
			if next.Items[i].ProductID == a.ProductID {
				if next.Items[i].Qty > 1 {
					next.Items[i].Qty--
				}
				break
			}
		}
	case ActionRemove:
		for i := range next.Items {
			if next.Items[i].ProductID == a.ProductID {
				next.Items = append(next.Items[:i], next.Items[i+1:]...)
				break
			}
		}
	case ActionClear:
		next.Items = []LineItem{}
	}
	return next
}
