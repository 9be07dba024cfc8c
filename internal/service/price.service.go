package service

import (
	"context"
	"time"

	"stockalloc/internal/logger"
	"stockalloc/internal/repository"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
)

/**

behavior - when i ask for prices, repeated requests for the same
symbols within the ttl should not hit the quote provider again. the
allocation core itself stays cache-free; this is the only place
quotes are memoized.

*/

type PriceService interface {
	GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

type priceServiceHandler struct {
	QuoteRepository repository.QuoteRepository
	cache           *expirable.LRU[string, decimal.Decimal]
}

const quoteCacheSize = 512

func NewPriceService(quoteRepository repository.QuoteRepository, cacheTtl time.Duration) PriceService {
	return &priceServiceHandler{
		QuoteRepository: quoteRepository,
		cache:           expirable.NewLRU[string, decimal.Decimal](quoteCacheSize, nil, cacheTtl),
	}
}

// GetLatestPrices serves what it can from the cache and fetches the
// rest in one repository call. A failed fetch fails the whole request
// and caches nothing - a partial price set must never reach the
// allocator.
func (h *priceServiceHandler) GetLatestPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	out := map[string]decimal.Decimal{}
	misses := []string{}
	for _, symbol := range symbols {
		if price, ok := h.cache.Get(symbol); ok {
			out[symbol] = price
			continue
		}
		misses = append(misses, symbol)
	}

	if len(misses) == 0 {
		return out, nil
	}
	log.Debugf("quote cache missed %v", misses)

	fetched, err := h.QuoteRepository.GetLatestPrices(ctx, misses)
	if err != nil {
		return nil, err
	}

	for symbol, price := range fetched {
		h.cache.Add(symbol, price)
		out[symbol] = price
	}

	return out, nil
}
