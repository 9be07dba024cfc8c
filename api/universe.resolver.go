package api

import (
	"sort"

	"github.com/gin-gonic/gin"
)

type getUniverseResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

func (m ApiHandler) universe(c *gin.Context) {
	tickers, err := m.UniverseRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []getUniverseResponse{}
	for _, ticker := range tickers {
		out = append(out, getUniverseResponse{
			Symbol: ticker.Symbol,
			Name:   ticker.Name,
		})
	}
	sortTickers(out)

	c.JSON(200, out)
}

func sortTickers(tickers []getUniverseResponse) {
	sort.Slice(tickers, func(i, j int) bool {
		return tickers[i].Symbol < tickers[j].Symbol
	})
}
