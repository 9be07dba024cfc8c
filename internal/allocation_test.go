package internal

import (
	"testing"

	"stockalloc/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func priceMap(in map[string]float64) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for symbol, price := range in {
		out[symbol] = decimal.NewFromFloat(price)
	}
	return out
}

func Test_BaselineShares(t *testing.T) {
	t.Run("equal split, floored per asset", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"VALE3": 10,
			"PETR4": 20,
		})

		out := BaselineShares(prices, decimal.NewFromFloat(65))

		// 32.50 per asset: 3 shares at 10, 1 share at 20
		require.Equal(t, "", cmp.Diff(
			map[string]int64{
				"VALE3": 3,
				"PETR4": 1,
			},
			out,
		))
	})

	t.Run("zero budget buys nothing", func(t *testing.T) {
		prices := priceMap(map[string]float64{"VALE3": 10})

		out := BaselineShares(prices, decimal.Zero)

		require.Equal(t, "", cmp.Diff(map[string]int64{"VALE3": 0}, out))
	})

	t.Run("unaffordable asset still gets an entry", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"CHEAP": 1,
			"DEAR":  500,
		})

		out := BaselineShares(prices, decimal.NewFromFloat(100))

		require.Equal(t, "", cmp.Diff(
			map[string]int64{
				"CHEAP": 50,
				"DEAR":  0,
			},
			out,
		))
	})

	t.Run("monotonic in budget", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"VALE3": 17.42,
			"PETR4": 33.81,
			"ITUB4": 9.05,
		})

		previous := map[string]int64{}
		for budget := 0; budget <= 500; budget += 13 {
			out := BaselineShares(prices, decimal.NewFromInt(int64(budget)))
			for symbol, count := range out {
				require.GreaterOrEqual(t, count, previous[symbol],
					"budget %d decreased %s baseline", budget, symbol)
			}
			previous = out
		}
	})
}

func Test_OptimizeLeftover(t *testing.T) {
	t.Run("non-positive leftover is a no-op", func(t *testing.T) {
		prices := priceMap(map[string]float64{"VALE3": 10})

		out, err := OptimizeLeftover(prices, decimal.Zero)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(map[string]int64{"VALE3": 0}, out))

		out, err = OptimizeLeftover(prices, decimal.NewFromFloat(-3.50))
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(map[string]int64{"VALE3": 0}, out))
	})

	t.Run("exactly reachable leftover", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"VALE3": 10,
			"ITUB4": 5,
		})

		out, err := OptimizeLeftover(prices, decimal.NewFromFloat(15))
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			map[string]int64{
				"VALE3": 1,
				"ITUB4": 1,
			},
			out,
		))
	})

	t.Run("minimal overshoot when leftover is not reachable", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"VALE3": 10,
			"PETR4": 20,
		})

		// 15.00 is not a combination of 10.00 and 20.00; the smallest
		// reachable amount past it is 20.00
		out, err := OptimizeLeftover(prices, decimal.NewFromFloat(15))
		require.NoError(t, err)

		cost := SharesCost(prices, out)
		require.True(t, cost.Equal(decimal.NewFromFloat(20)),
			"expected minimal cost 20.00, got %s", cost)
	})

	t.Run("single asset pricier than leftover", func(t *testing.T) {
		prices := priceMap(map[string]float64{"VALE3": 7})

		out, err := OptimizeLeftover(prices, decimal.NewFromFloat(6))
		require.NoError(t, err)

		// one share at 7.00 is the minimal reachable amount >= 6.00
		require.Equal(t, "", cmp.Diff(map[string]int64{"VALE3": 1}, out))
	})

	t.Run("minimality against brute force", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"A": 3.30,
			"B": 4.70,
			"C": 11.25,
		})
		unitCosts := []int64{330, 470, 1125}

		for _, leftoverCents := range []int64{1, 99, 330, 331, 500, 777, 1124, 1126, 2000} {
			leftover := decimal.NewFromInt(leftoverCents).Div(decimal.NewFromInt(100))

			out, err := OptimizeLeftover(prices, leftover)
			require.NoError(t, err)

			got := SharesCost(prices, out).Mul(decimal.NewFromInt(100)).IntPart()
			want := bruteForceMinReachable(unitCosts, leftoverCents)
			require.Equal(t, want, got, "leftover %d cents", leftoverCents)
		}
	})

	t.Run("deterministic tie-break across runs", func(t *testing.T) {
		prices := priceMap(map[string]float64{
			"AAAA": 10,
			"BBBB": 10,
			"CCCC": 10,
		})

		first, err := OptimizeLeftover(prices, decimal.NewFromFloat(30))
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			again, err := OptimizeLeftover(prices, decimal.NewFromFloat(30))
			require.NoError(t, err)
			require.Equal(t, "", cmp.Diff(first, again))
		}
	})

	t.Run("leftover past the sanity ceiling is rejected", func(t *testing.T) {
		prices := priceMap(map[string]float64{"VALE3": 10})

		_, err := OptimizeLeftover(prices, decimal.NewFromFloat(100000.01))
		require.Error(t, err)

		var invalidInput domain.InvalidInputError
		require.ErrorAs(t, err, &invalidInput)
	})
}

// smallest multiple-combination total >= target, checked the slow way
func bruteForceMinReachable(unitCosts []int64, target int64) int64 {
	min := int64(0)
	for _, cost := range unitCosts {
		if min == 0 || cost < min {
			min = cost
		}
	}
	horizon := target + min

	reachable := make([]bool, horizon+1)
	reachable[0] = true
	for amount := int64(0); amount <= horizon; amount++ {
		if !reachable[amount] {
			continue
		}
		if amount >= target {
			return amount
		}
		for _, cost := range unitCosts {
			if amount+cost <= horizon {
				reachable[amount+cost] = true
			}
		}
	}
	return 0
}
