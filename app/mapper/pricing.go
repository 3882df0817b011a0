package mapper

import (
	"github.com/vibast-solutions/ms-go-website/app/dto"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/service"
)

func PlanQuoteToResponse(q service.PlanQuote) dto.PlanQuoteResponse {
	resp := dto.PlanQuoteResponse{
		Name:              q.Plan.Name,
		Description:       q.Plan.Description,
		Popular:           q.Plan.Popular,
		Cycle:             string(q.Cycle),
		MonthlyPrice:      q.Plan.MonthlyPrice,
		AnnualPrice:       q.Plan.AnnualPrice,
		DisplayedPrice:    q.DisplayedPrice,
		FormattedPrice:    q.FormattedPrice,
		SavingsLabel:      q.SavingsLabel,
		CTALabel:          q.Plan.CTA.Label,
		CTAHref:           q.Plan.CTA.Href,
		TopFeatures:       FeaturesToResponse(q.TopFeatures),
		RemainingFeatures: q.RemainingFeatures,
		Features:          FeaturesToResponse(q.Plan.Features),
	}
	if q.HasSavings {
		percent := q.SavingsPercent
		resp.SavingsPercent = &percent
	}
	return resp
}

func PlanQuotesToResponse(cycle entity.BillingCycle, quotes []service.PlanQuote) dto.ListPlanQuotesResponse {
	plans := make([]dto.PlanQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		plans = append(plans, PlanQuoteToResponse(q))
	}
	return dto.ListPlanQuotesResponse{Cycle: string(cycle), Plans: plans}
}

func FeaturesToResponse(features []entity.FeatureEntry) []dto.FeatureResponse {
	result := make([]dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		result = append(result, dto.FeatureResponse{
			Key:       string(f.Key),
			Text:      f.Text,
			Included:  f.Included,
			Highlight: f.Highlight,
		})
	}
	return result
}

func ComparisonToResponse(table service.ComparisonTable) dto.ComparisonResponse {
	rows := make([]dto.ComparisonRowResponse, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]dto.ComparisonCellResponse, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, dto.ComparisonCellResponse{Plan: cell.Plan, Text: cell.Text, Included: cell.Included})
		}
		rows = append(rows, dto.ComparisonRowResponse{
			Key:       string(row.Key),
			Label:     row.Label,
			Highlight: row.Highlight,
			Cells:     cells,
		})
	}
	plans := append([]string(nil), table.Plans...)
	if plans == nil {
		plans = []string{}
	}
	return dto.ComparisonResponse{Plans: plans, Rows: rows}
}
