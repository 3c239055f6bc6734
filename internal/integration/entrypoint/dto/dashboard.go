// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/gift-tracker/backend/internal/application/usecase/dashboard"
)

// GifteeSummaryResponse aggregates one giftee's dashboard line.
type GifteeSummaryResponse struct {
	Giftee     GifteeResponse   `json:"giftee"`
	GiftCount  int              `json:"gift_count"`
	TotalCost  decimal.Decimal  `json:"total_cost"`
	Progress   ProgressResponse `json:"progress"`
	OverBudget bool             `json:"over_budget"`
}

// DashboardOverviewResponse represents the dashboard overview.
type DashboardOverviewResponse struct {
	Giftees     []GifteeSummaryResponse `json:"giftees"`
	TotalBudget decimal.Decimal         `json:"total_budget"`
	TotalCost   decimal.Decimal         `json:"total_cost"`
	TotalGifts  int                     `json:"total_gifts"`
	Progress    ProgressResponse        `json:"progress"`
}

// ToDashboardOverviewResponse converts the overview output to a DTO.
func ToDashboardOverviewResponse(output *dashboard.GetOverviewOutput) DashboardOverviewResponse {
	giftees := make([]GifteeSummaryResponse, len(output.Giftees))
	for i, summary := range output.Giftees {
		giftees[i] = GifteeSummaryResponse{
			Giftee:     ToGifteeResponse(summary.Giftee),
			GiftCount:  summary.GiftCount,
			TotalCost:  summary.TotalCost,
			Progress:   ToProgressResponse(summary.Progress),
			OverBudget: summary.OverBudget,
		}
	}
	return DashboardOverviewResponse{
		Giftees:     giftees,
		TotalBudget: output.TotalBudget,
		TotalCost:   output.TotalCost,
		TotalGifts:  output.TotalGifts,
		Progress:    ToProgressResponse(output.Progress),
	}
}
