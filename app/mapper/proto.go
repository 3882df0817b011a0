package mapper

import (
	"github.com/vibast-solutions/ms-go-website/app/dto"
	"google.golang.org/protobuf/types/known/structpb"
)

// PlanQuoteToStruct renders a quote as a protobuf Struct for the gRPC API. The
// field names match the JSON API.
func PlanQuoteToStruct(q dto.PlanQuoteResponse) (*structpb.Struct, error) {
	return structpb.NewStruct(planQuoteFields(q))
}

func PlanQuotesToStruct(resp dto.ListPlanQuotesResponse) (*structpb.Struct, error) {
	plans := make([]interface{}, 0, len(resp.Plans))
	for _, q := range resp.Plans {
		plans = append(plans, planQuoteFields(q))
	}
	return structpb.NewStruct(map[string]interface{}{
		"cycle": resp.Cycle,
		"plans": plans,
	})
}

func planQuoteFields(q dto.PlanQuoteResponse) map[string]interface{} {
	fields := map[string]interface{}{
		"name":               q.Name,
		"description":        q.Description,
		"popular":            q.Popular,
		"cycle":              q.Cycle,
		"monthly_price":      q.MonthlyPrice,
		"annual_price":       q.AnnualPrice,
		"displayed_price":    q.DisplayedPrice,
		"formatted_price":    q.FormattedPrice,
		"cta_label":          q.CTALabel,
		"cta_href":           q.CTAHref,
		"top_features":       featureFields(q.TopFeatures),
		"remaining_features": q.RemainingFeatures,
		"features":           featureFields(q.Features),
	}
	if q.SavingsPercent != nil {
		fields["savings_percent"] = *q.SavingsPercent
		fields["savings_label"] = q.SavingsLabel
	}
	return fields
}

func featureFields(features []dto.FeatureResponse) []interface{} {
	result := make([]interface{}, 0, len(features))
	for _, f := range features {
		result = append(result, map[string]interface{}{
			"key":       f.Key,
			"text":      f.Text,
			"included":  f.Included,
			"highlight": f.Highlight,
		})
	}
	return result
}
