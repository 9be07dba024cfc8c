package repository

import (
	"fmt"
	"os"

	"stockalloc/internal/domain"

	"github.com/gocarina/gocsv"
)

// UniverseRepository lists the tickers a caller may allocate across.
// Backed by a csv file (symbol,name) so the universe can be edited
// without a rebuild.
type UniverseRepository interface {
	List() ([]domain.Ticker, error)
}

func NewUniverseRepository(filePath string) UniverseRepository {
	return universeRepositoryHandler{
		FilePath: filePath,
	}
}

type universeRepositoryHandler struct {
	FilePath string
}

func (h universeRepositoryHandler) List() ([]domain.Ticker, error) {
	f, err := os.Open(h.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open universe file: %w", err)
	}
	defer f.Close()

	tickers := []domain.Ticker{}
	if err := gocsv.UnmarshalFile(f, &tickers); err != nil {
		return nil, fmt.Errorf("failed to parse universe file %s: %w", h.FilePath, err)
	}

	seen := map[string]bool{}
	for _, ticker := range tickers {
		if ticker.Symbol == "" {
			return nil, fmt.Errorf("universe file %s has a row with no symbol", h.FilePath)
		}
		if seen[ticker.Symbol] {
			return nil, fmt.Errorf("universe file %s lists %s twice", h.FilePath, ticker.Symbol)
		}
		seen[ticker.Symbol] = true
	}

	return tickers, nil
}
