package app

import (
	"context"
	"fmt"

	"stockalloc/internal"
	"stockalloc/internal/domain"
	"stockalloc/internal/logger"
	"stockalloc/internal/service"

	"github.com/shopspring/decimal"
)

type AllocatorHandler struct {
	PriceService service.PriceService
}

type AllocateInput struct {
	Symbols   []string
	MaxInvest decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// Allocate runs the full pipeline: validate the selection, fetch a
// complete price set, floor-allocate an equal split, then try to place
// the leftover via the reachability search. The returned allocation
// never spends past MaxInvest; when the optimizer's minimal combo
// overshoots the leftover it is surfaced as a top-up suggestion
// instead of being merged.
func (h AllocatorHandler) Allocate(ctx context.Context, in AllocateInput) (*domain.Allocation, error) {
	log := logger.FromContext(ctx)
	performanceProfile := domain.GetPerformanceProfile(ctx)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	prices, err := h.PriceService.GetLatestPrices(ctx, in.Symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	performanceProfile.Add("prices fetched")
	for _, symbol := range in.Symbols {
		price, ok := prices[symbol]
		if !ok {
			return nil, domain.PriceUnavailableError{Symbol: symbol}
		}
		if price.LessThanOrEqual(decimal.Zero) {
			return nil, domain.InvalidInputError{
				Reason: fmt.Sprintf("non-positive price %s for %s", price, symbol),
			}
		}
	}

	baseline := internal.BaselineShares(prices, in.MaxInvest)
	leftover := in.MaxInvest.Sub(internal.SharesCost(prices, baseline)).Round(2)
	performanceProfile.Add("baseline allocated")

	finalShares := baseline
	var topUp *domain.TopUpSuggestion

	if leftover.GreaterThan(decimal.Zero) {
		extras, err := internal.OptimizeLeftover(prices, leftover)
		if err != nil {
			return nil, err
		}
		performanceProfile.Add("leftover optimized")

		extraCost := internal.SharesCost(prices, extras)
		if extraCost.GreaterThan(leftover) {
			// minimal reachable amount overshoots the unspent cash;
			// merging it would break the budget, so report it as a
			// suggestion and keep the baseline
			topUp = &domain.TopUpSuggestion{
				AdditionalCash: extraCost.Sub(leftover).Round(2),
				Shares:         extras,
			}
			log.Infof("leftover %s not exactly reachable; next combo needs %s more",
				leftover.StringFixed(2), topUp.AdditionalCash.StringFixed(2))
		} else {
			finalShares = map[string]int64{}
			for symbol, count := range baseline {
				finalShares[symbol] = count + extras[symbol]
			}
		}
	}

	return assemble(in.MaxInvest, prices, finalShares, topUp), nil
}

func validateInput(in AllocateInput) error {
	if len(in.Symbols) == 0 {
		return domain.InvalidInputError{Reason: "no assets selected"}
	}
	seen := map[string]bool{}
	for _, symbol := range in.Symbols {
		if symbol == "" {
			return domain.InvalidInputError{Reason: "empty symbol in selection"}
		}
		if seen[symbol] {
			return domain.InvalidInputError{Reason: fmt.Sprintf("%s selected twice", symbol)}
		}
		seen[symbol] = true
	}
	if in.MaxInvest.IsNegative() {
		return domain.InvalidInputError{Reason: "budget must not be negative"}
	}
	return nil
}

func assemble(budget decimal.Decimal, prices map[string]decimal.Decimal, shares map[string]int64, topUp *domain.TopUpSuggestion) *domain.Allocation {
	lines := map[string]domain.AllocationLine{}
	totalSpent := decimal.Zero

	for symbol, price := range prices {
		count := shares[symbol]
		spent := price.Mul(decimal.NewFromInt(count)).Round(2)
		totalSpent = totalSpent.Add(spent)

		percent := decimal.Zero
		if count > 0 {
			percent = price.Div(spent).Mul(oneHundred).Round(2)
		}

		lines[symbol] = domain.AllocationLine{
			Symbol:         symbol,
			Shares:         count,
			Price:          price,
			Spent:          spent,
			PercentOfSpend: percent,
		}
	}

	return &domain.Allocation{
		Lines:      lines,
		TotalSpent: totalSpent.Round(2),
		Leftover:   budget.Sub(totalSpent).Round(2),
		TopUp:      topUp,
	}
}
