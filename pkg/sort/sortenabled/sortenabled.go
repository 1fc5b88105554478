//nolint:revive // exported
package sortenabled

type Enabled interface {
	IsEnabled() bool
}

// FilterByState returns the items whose enabled flag equals state, keeping
// their relative order. The input slice is left untouched.
func FilterByState[E Enabled](items []E, state bool) []E {
	out := make([]E, 0, len(items))
	for _, item := range items {
		if item.IsEnabled() == state {
			out = append(out, item)
		}
	}
	return out
}

func CountEnabled[E Enabled](items []E) int {
	n := 0
	for _, item := range items {
		if item.IsEnabled() {
			n++
		}
	}
	return n
}
