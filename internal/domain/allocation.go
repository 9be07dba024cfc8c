package domain

import (
	"github.com/shopspring/decimal"
)

// AllocationLine is the per-asset row of the final report. Spent and
// PercentOfSpend are rounded to 2 decimal places (round half away
// from zero). PercentOfSpend is the share price as a percentage of
// this asset's own spend; it is zero when Shares is zero.
type AllocationLine struct {
	Symbol         string          `json:"symbol"`
	Shares         int64           `json:"shares"`
	Price          decimal.Decimal `json:"price"`
	Spent          decimal.Decimal `json:"spent"`
	PercentOfSpend decimal.Decimal `json:"percentOfSpend"`
}

// TopUpSuggestion is reported when the leftover optimizer's minimal
// reachable amount overshoots the unspent cash. The suggested shares
// are never merged into the allocation - buying them would exceed the
// budget by AdditionalCash.
type TopUpSuggestion struct {
	AdditionalCash decimal.Decimal  `json:"additionalCash"`
	Shares         map[string]int64 `json:"shares"`
}

type Allocation struct {
	Lines      map[string]AllocationLine `json:"lines"`
	TotalSpent decimal.Decimal           `json:"totalSpent"`
	Leftover   decimal.Decimal           `json:"leftover"`
	TopUp      *TopUpSuggestion          `json:"topUp,omitempty"`
}

// HeldSymbols lists the symbols with at least one purchased share.
func (a Allocation) HeldSymbols() []string {
	symbols := []string{}
	for symbol, line := range a.Lines {
		if line.Shares > 0 {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

type Ticker struct {
	Symbol string `csv:"symbol" json:"symbol"`
	Name   string `csv:"name" json:"name"`
}
