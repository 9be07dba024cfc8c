package api

import (
	"context"
	"sort"

	"stockalloc/internal/app"
	"stockalloc/internal/domain"
	"stockalloc/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AllocateRequest struct {
	Symbols   []string `json:"symbols"`
	MaxInvest float64  `json:"maxInvest"`
}

type allocationLineResponse struct {
	Symbol         string  `json:"symbol"`
	Shares         int64   `json:"shares"`
	Price          float64 `json:"price"`
	Spent          float64 `json:"spent"`
	PercentOfSpend float64 `json:"percentOfSpend"`
}

type topUpResponse struct {
	AdditionalCash float64          `json:"additionalCash"`
	Shares         map[string]int64 `json:"shares"`
}

type AllocateResponse struct {
	Lines      []allocationLineResponse `json:"lines"`
	TotalSpent float64                  `json:"totalSpent"`
	Leftover   float64                  `json:"leftover"`
	TopUp      *topUpResponse           `json:"topUp,omitempty"`
}

func (m ApiHandler) allocate(c *gin.Context) {
	performanceProfile := domain.NewPerformanceProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, performanceProfile)
	ctx = context.WithValue(ctx, logger.ContextKey, logger.FromContext(c))
	performanceProfile.Add("initialized")
	defer func() {
		performanceProfile.End()
		performanceProfile.Print()
	}()

	var requestBody AllocateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	allocation, err := m.AllocatorHandler.Allocate(ctx, app.AllocateInput{
		Symbols:   requestBody.Symbols,
		MaxInvest: decimal.NewFromFloat(requestBody.MaxInvest).Round(2),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	performanceProfile.Add("allocated")

	c.JSON(200, allocationToResponse(allocation))
}

func allocationToResponse(allocation *domain.Allocation) AllocateResponse {
	lines := []allocationLineResponse{}
	for _, line := range allocation.Lines {
		lines = append(lines, allocationLineResponse{
			Symbol:         line.Symbol,
			Shares:         line.Shares,
			Price:          line.Price.InexactFloat64(),
			Spent:          line.Spent.InexactFloat64(),
			PercentOfSpend: line.PercentOfSpend.InexactFloat64(),
		})
	}
	sortLines(lines)

	out := AllocateResponse{
		Lines:      lines,
		TotalSpent: allocation.TotalSpent.InexactFloat64(),
		Leftover:   allocation.Leftover.InexactFloat64(),
	}
	if allocation.TopUp != nil {
		out.TopUp = &topUpResponse{
			AdditionalCash: allocation.TopUp.AdditionalCash.InexactFloat64(),
			Shares:         allocation.TopUp.Shares,
		}
	}
	return out
}

func sortLines(lines []allocationLineResponse) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Symbol < lines[j].Symbol
	})
}
