package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vibast-solutions/ms-go-website/app/content"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/metrics"
	"github.com/vibast-solutions/ms-go-website/app/pricing"
)

const (
	topFeatureCount        = 5
	popularTopFeatureCount = 6
	missingFeatureText     = "—"
)

// PlanSource supplies the plans in display order.
type PlanSource interface {
	ListPlans(ctx context.Context) ([]entity.Plan, error)
}

type PlanQuote struct {
	Plan              entity.Plan
	Cycle             entity.BillingCycle
	DisplayedPrice    int64
	FormattedPrice    string
	SavingsPercent    int64
	HasSavings        bool
	SavingsLabel      string
	TopFeatures       []entity.FeatureEntry
	RemainingFeatures int
}

type ComparisonCell struct {
	Plan     string
	Text     string
	Included bool
}

type ComparisonRow struct {
	Key       entity.FeatureKey
	Label     string
	Highlight bool
	Cells     []ComparisonCell
}

type ComparisonTable struct {
	Plans []string
	Rows  []ComparisonRow
}

type PricingService struct {
	plans      PlanSource
	comparison []entity.ComparisonRow
	formatter  *pricing.Formatter
	metrics    *metrics.SiteMetrics
}

func NewPricingService(plans PlanSource, comparison []entity.ComparisonRow, formatter *pricing.Formatter, siteMetrics *metrics.SiteMetrics) *PricingService {
	return &PricingService{
		plans:      plans,
		comparison: comparison,
		formatter:  formatter,
		metrics:    siteMetrics,
	}
}

func (s *PricingService) ListQuotes(ctx context.Context, cycle entity.BillingCycle) ([]PlanQuote, error) {
	plans, err := s.loadPlans(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]PlanQuote, 0, len(plans))
	for _, plan := range plans {
		quotes = append(quotes, s.quote(plan, cycle))
	}
	return quotes, nil
}

func (s *PricingService) Quote(ctx context.Context, name string, cycle entity.BillingCycle) (PlanQuote, error) {
	plans, err := s.loadPlans(ctx)
	if err != nil {
		return PlanQuote{}, err
	}

	name = strings.TrimSpace(name)
	for _, plan := range plans {
		if strings.EqualFold(plan.Name, name) {
			return s.quote(plan, cycle), nil
		}
	}
	return PlanQuote{}, fmt.Errorf("%w: %s", ErrPlanNotFound, name)
}

// Comparison builds one row per configured capability, with a cell per plan in
// catalog order.
func (s *PricingService) Comparison(ctx context.Context) (ComparisonTable, error) {
	plans, err := s.loadPlans(ctx)
	if err != nil {
		return ComparisonTable{}, err
	}

	table := ComparisonTable{
		Plans: make([]string, 0, len(plans)),
		Rows:  make([]ComparisonRow, 0, len(s.comparison)),
	}
	for _, plan := range plans {
		table.Plans = append(table.Plans, plan.Name)
	}

	for _, def := range s.comparison {
		row := ComparisonRow{Key: def.Key, Label: def.Label, Cells: make([]ComparisonCell, 0, len(plans))}
		for _, plan := range plans {
			cell := ComparisonCell{Plan: plan.Name, Text: missingFeatureText}
			if feature, ok := plan.FeatureByKey(def.Key); ok {
				cell.Text = feature.Text
				cell.Included = feature.Included
				row.Highlight = row.Highlight || feature.Highlight
			}
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func (s *PricingService) loadPlans(ctx context.Context) ([]entity.Plan, error) {
	plans, err := s.plans.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	if err := content.ValidatePlans(plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *PricingService) quote(plan entity.Plan, cycle entity.BillingCycle) PlanQuote {
	displayed := pricing.DisplayedMonthlyPrice(plan, cycle)
	q := PlanQuote{
		Plan:           plan,
		Cycle:          cycle,
		DisplayedPrice: displayed,
		FormattedPrice: s.formatter.FormatPrice(displayed),
	}
	if percent, ok := pricing.AnnualSavingsPercent(plan, cycle); ok {
		q.SavingsPercent = percent
		q.HasSavings = true
		q.SavingsLabel = pricing.SavingsLabel(percent)
	}
	q.TopFeatures, q.RemainingFeatures = topFeatures(plan)

	s.metrics.IncQuote(plan.Name, string(cycle))
	return q
}

// topFeatures takes the leading entries of the feature list (one more for the
// popular plan) and keeps the included ones.
func topFeatures(plan entity.Plan) ([]entity.FeatureEntry, int) {
	limit := topFeatureCount
	if plan.Popular {
		limit = popularTopFeatureCount
	}
	if limit > len(plan.Features) {
		limit = len(plan.Features)
	}

	top := make([]entity.FeatureEntry, 0, limit)
	for _, feature := range plan.Features[:limit] {
		if feature.Included {
			top = append(top, feature)
		}
	}
	return top, len(plan.IncludedFeatures()) - len(top)
}
