package domain

import "fmt"

// InvalidInputError rejects a request before any allocation work
// happens: empty selections, negative budgets, non-positive prices,
// or budgets past the optimizer's sanity ceiling.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// PriceUnavailableError means the price source could not produce a
// usable quote for a symbol. The whole allocation request fails - we
// never substitute a default price or allocate a partial selection.
type PriceUnavailableError struct {
	Symbol string
}

func (e PriceUnavailableError) Error() string {
	return fmt.Sprintf("price unavailable for %s", e.Symbol)
}
