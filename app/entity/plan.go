package entity

import (
	"fmt"
	"strings"
	"time"
)

type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
)

// ParseBillingCycle maps a request value to a cycle. An empty value is Monthly.
func ParseBillingCycle(raw string) (BillingCycle, error) {
	switch BillingCycle(strings.ToLower(strings.TrimSpace(raw))) {
	case "", BillingCycleMonthly:
		return BillingCycleMonthly, nil
	case BillingCycleAnnual:
		return BillingCycleAnnual, nil
	default:
		return "", fmt.Errorf("unknown billing cycle %q", raw)
	}
}

// FeatureKey identifies a capability row shared by plan feature lists and the
// comparison table.
type FeatureKey string

const (
	FeatureUserLimit      FeatureKey = "user_limit"
	FeatureAnalytics      FeatureKey = "analytics"
	FeatureAIInsights     FeatureKey = "ai_insights"
	FeatureSupportSLA     FeatureKey = "support_sla"
	FeatureStorage        FeatureKey = "storage"
	FeatureReports        FeatureKey = "reports"
	FeatureAPIAccess      FeatureKey = "api_access"
	FeatureIntegrations   FeatureKey = "integrations"
	FeatureSecurity       FeatureKey = "security"
	FeatureAccountManager FeatureKey = "account_manager"
)

var knownFeatureKeys = map[FeatureKey]struct{}{
	FeatureUserLimit:      {},
	FeatureAnalytics:      {},
	FeatureAIInsights:     {},
	FeatureSupportSLA:     {},
	FeatureStorage:        {},
	FeatureReports:        {},
	FeatureAPIAccess:      {},
	FeatureIntegrations:   {},
	FeatureSecurity:       {},
	FeatureAccountManager: {},
}

func (k FeatureKey) Valid() bool {
	_, ok := knownFeatureKeys[k]
	return ok
}

type FeatureEntry struct {
	Key       FeatureKey `yaml:"key" json:"key"`
	Text      string     `yaml:"text" json:"text"`
	Included  bool       `yaml:"included" json:"included"`
	Highlight bool       `yaml:"highlight" json:"highlight"`
}

type CallToAction struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

// Plan prices are whole currency units.
type Plan struct {
	ID           uint64         `yaml:"-"`
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	MonthlyPrice int64          `yaml:"monthly_price"`
	AnnualPrice  int64          `yaml:"annual_price"`
	Popular      bool           `yaml:"popular"`
	CTA          CallToAction   `yaml:"cta"`
	Features     []FeatureEntry `yaml:"features"`
	SortOrder    int32          `yaml:"-"`
	CreatedAt    time.Time      `yaml:"-"`
	UpdatedAt    time.Time      `yaml:"-"`
}

// OffersAnnualDiscount reports whether annual billing is cheaper than twelve
// monthly payments.
func (p Plan) OffersAnnualDiscount() bool {
	return p.AnnualPrice < p.MonthlyPrice*12
}

func (p Plan) FeatureByKey(key FeatureKey) (FeatureEntry, bool) {
	for _, f := range p.Features {
		if f.Key == key {
			return f, true
		}
	}
	return FeatureEntry{}, false
}

func (p Plan) IncludedFeatures() []FeatureEntry {
	result := make([]FeatureEntry, 0, len(p.Features))
	for _, f := range p.Features {
		if f.Included {
			result = append(result, f)
		}
	}
	return result
}
