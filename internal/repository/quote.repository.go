package repository

import (
	"context"
	"fmt"

	"stockalloc/internal/domain"
	"stockalloc/internal/logger"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

type QuoteRepository interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

type quoteRepositoryHandler struct{}

// GetLatestPrices fetches the current market price for each symbol,
// rounded to 2 decimal places. Any symbol without a usable quote fails
// the whole call - allocation needs a complete price set, and a
// defaulted price would silently skew the split.
func (h quoteRepositoryHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		q, err := quote.Get(symbol)
		if err != nil {
			log.Errorf("quote fetch failed for %s: %v", symbol, err)
			return nil, fmt.Errorf("%w: %v", domain.PriceUnavailableError{Symbol: symbol}, err)
		}
		if q == nil || q.RegularMarketPrice <= 0 {
			log.Errorf("no market price in quote response for %s", symbol)
			return nil, domain.PriceUnavailableError{Symbol: symbol}
		}

		price := decimal.NewFromFloat(q.RegularMarketPrice).Round(2)
		out[symbol] = price
		log.Infof("%s: %s", symbol, price.StringFixed(2))
	}

	return out, nil
}
