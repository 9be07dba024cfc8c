package repository

import (
	"os"
	"path/filepath"
	"testing"

	"stockalloc/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeUniverseFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickers.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func Test_universeRepositoryHandler_List(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		path := writeUniverseFile(t, "symbol,name\nVALE3,Vale\nPETR4,Petrobras\n")

		out, err := NewUniverseRepository(path).List()
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			[]domain.Ticker{
				{Symbol: "VALE3", Name: "Vale"},
				{Symbol: "PETR4", Name: "Petrobras"},
			},
			out,
		))
	})

	t.Run("duplicate symbol is rejected", func(t *testing.T) {
		path := writeUniverseFile(t, "symbol,name\nVALE3,Vale\nVALE3,Vale again\n")

		_, err := NewUniverseRepository(path).List()
		require.ErrorContains(t, err, "twice")
	})

	t.Run("row without a symbol is rejected", func(t *testing.T) {
		path := writeUniverseFile(t, "symbol,name\n,Nameless\n")

		_, err := NewUniverseRepository(path).List()
		require.ErrorContains(t, err, "no symbol")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewUniverseRepository("does-not-exist.csv").List()
		require.Error(t, err)
	})
}
