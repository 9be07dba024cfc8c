package internal

import (
	"sort"

	"stockalloc/internal/domain"

	"github.com/shopspring/decimal"
)

/**

how the cash gets split:

1. baseline pass
every asset gets an equal slice of the budget (not price-weighted) and
we floor-divide the slice by the unit price. cheap assets soak up more
shares, expensive ones may get zero. whatever the floors leave behind
becomes the leftover.

2. leftover pass
the leftover is converted to integer cents and we search for the
smallest total >= leftover that is buildable from unlimited repeat
purchases of the selected assets' unit costs. classic coin reachability:
amounts are explored strictly in increasing order, so the first amount
at or past the target is minimal by construction.

the search itself may overshoot the target (e.g. one asset priced above
the leftover). whether an overshooting combo is applied is the
assembler's call, not ours - we just report the minimal combo.

*/

// the reachability table is O(target + cheapest unit cost) slots, so a
// pathological budget could eat memory. anything past this many cents
// of leftover gets rejected up front.
const maxReachableTarget = 10_000_000

var centsPerUnit = decimal.NewFromInt(100)

// BaselineShares computes, per asset, the whole shares purchasable
// from an equal split of the budget. Callers must reject empty price
// maps, non-positive prices and negative budgets first.
func BaselineShares(prices map[string]decimal.Decimal, budget decimal.Decimal) map[string]int64 {
	perAssetSpend := budget.Div(decimal.NewFromInt(int64(len(prices))))

	shares := map[string]int64{}
	for symbol, price := range prices {
		shares[symbol] = perAssetSpend.Div(price).Floor().IntPart()
	}
	return shares
}

// OptimizeLeftover finds the non-negative extra share counts whose
// total cost is the smallest reachable amount >= leftover, buying any
// asset any number of times. Returns all zeros when leftover is not
// positive, or when nothing within the search horizon reaches the
// target (defensive - the horizon definition makes that impossible).
func OptimizeLeftover(prices map[string]decimal.Decimal, leftover decimal.Decimal) (map[string]int64, error) {
	extras := zeroShares(prices)
	if leftover.LessThanOrEqual(decimal.Zero) {
		return extras, nil
	}

	// everything in cents from here on - the floats behind a naive
	// "subtract prices until it fits" loop drift
	target := leftover.Mul(centsPerUnit).IntPart()

	symbols := make([]string, 0, len(prices))
	for symbol := range prices {
		symbols = append(symbols, symbol)
	}
	// map iteration order is random; the "first combo wins" tie-break
	// below is only deterministic if assets are visited in a fixed
	// order, so walk them sorted by symbol
	sort.Strings(symbols)

	unitCosts := map[string]int64{}
	minUnitCost := int64(0)
	for _, symbol := range symbols {
		cost := prices[symbol].Mul(centsPerUnit).IntPart()
		unitCosts[symbol] = cost
		if minUnitCost == 0 || cost < minUnitCost {
			minUnitCost = cost
		}
	}

	if target > maxReachableTarget {
		return nil, domain.InvalidInputError{
			Reason: "leftover too large for the reachability search",
		}
	}

	// any reachable amount past the horizon cannot be minimal: the
	// cheapest unit can always close a gap smaller than itself from
	// some reachable amount below it
	horizon := target + minUnitCost

	reachable := make([]map[string]int64, horizon+1)
	reachable[0] = extras

	for amount := int64(0); amount <= horizon; amount++ {
		combo := reachable[amount]
		if combo == nil {
			continue
		}
		if amount >= target {
			return combo, nil
		}
		for _, symbol := range symbols {
			next := amount + unitCosts[symbol]
			if next <= horizon && reachable[next] == nil {
				nextCombo := copyShares(combo)
				nextCombo[symbol]++
				reachable[next] = nextCombo
			}
		}
	}

	return zeroShares(prices), nil
}

// SharesCost totals the cost of a share-count map at the given prices.
func SharesCost(prices map[string]decimal.Decimal, shares map[string]int64) decimal.Decimal {
	total := decimal.Zero
	for symbol, count := range shares {
		total = total.Add(prices[symbol].Mul(decimal.NewFromInt(count)))
	}
	return total
}

func zeroShares(prices map[string]decimal.Decimal) map[string]int64 {
	shares := map[string]int64{}
	for symbol := range prices {
		shares[symbol] = 0
	}
	return shares
}

func copyShares(in map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(in))
	for symbol, count := range in {
		out[symbol] = count
	}
	return out
}
