// Package content loads the site copy and the plan catalog from a YAML document.
package content

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/factory"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultDocument []byte

var ErrInvalidCatalog = errors.New("invalid site catalog")

type Company struct {
	Name      string `yaml:"name"`
	LegalName string `yaml:"legal_name"`
	Tagline   string `yaml:"tagline"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone"`
	PhoneHref string `yaml:"phone_href"`
	City      string `yaml:"city"`
}

type Currency struct {
	Symbol string `yaml:"symbol"`
	Locale string `yaml:"locale"`
}

type Footer struct {
	Sections []entity.FooterSection `yaml:"sections"`
	Socials  []entity.FooterLink    `yaml:"socials"`
}

type Home struct {
	Chart        []entity.ChartBar    `yaml:"chart"`
	Metrics      []entity.Stat        `yaml:"metrics"`
	Features     []entity.Highlight   `yaml:"features"`
	Benefits     []string             `yaml:"benefits"`
	Testimonials []entity.Testimonial `yaml:"testimonials"`
	Stats        []entity.Stat        `yaml:"stats"`
}

type About struct {
	Values   []entity.Highlight `yaml:"values"`
	Stats    []entity.Stat      `yaml:"stats"`
	Timeline []entity.Milestone `yaml:"timeline"`
}

type Pricing struct {
	Plans      []entity.Plan          `yaml:"plans"`
	Comparison []entity.ComparisonRow `yaml:"comparison"`
	FAQs       []entity.FAQ           `yaml:"faqs"`
}

type Contact struct {
	Subjects []entity.SubjectOption `yaml:"subjects"`
	FAQs     []entity.FAQ           `yaml:"faqs"`
}

type Catalog struct {
	Company    Company                  `yaml:"company"`
	Currency   Currency                 `yaml:"currency"`
	Navigation []entity.NavItem         `yaml:"navigation"`
	Footer     Footer                   `yaml:"footer"`
	Home       Home                     `yaml:"home"`
	About      About                    `yaml:"about"`
	Services   []entity.ServiceOffering `yaml:"services"`
	Pricing    Pricing                  `yaml:"pricing"`
	Contact    Contact                  `yaml:"contact"`
}

func LoadDefault() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads the catalog from path, or the embedded document when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	catalog.warnUndiscountedPlans()
	return &catalog, nil
}

func (c *Catalog) Validate() error {
	if len(c.Pricing.Plans) == 0 {
		return fmt.Errorf("%w: at least one plan is required", ErrInvalidCatalog)
	}
	if err := ValidatePlans(c.Pricing.Plans); err != nil {
		return err
	}
	for _, row := range c.Pricing.Comparison {
		if !row.Key.Valid() {
			return fmt.Errorf("%w: comparison row %q has unknown feature key %q", ErrInvalidCatalog, row.Label, row.Key)
		}
	}

	subjects := make(map[string]struct{}, len(c.Contact.Subjects))
	for _, subject := range c.Contact.Subjects {
		if subject.Value == "" {
			return fmt.Errorf("%w: contact subject value is required", ErrInvalidCatalog)
		}
		if _, dup := subjects[subject.Value]; dup {
			return fmt.Errorf("%w: duplicate contact subject %q", ErrInvalidCatalog, subject.Value)
		}
		subjects[subject.Value] = struct{}{}
	}
	return nil
}

// ValidatePlans checks the configuration preconditions of a plan list. It is
// shared with plans loaded from the database.
func ValidatePlans(plans []entity.Plan) error {
	names := make(map[string]struct{}, len(plans))
	for _, plan := range plans {
		name := strings.ToLower(strings.TrimSpace(plan.Name))
		if name == "" {
			return fmt.Errorf("%w: plan name is required", ErrInvalidCatalog)
		}
		if _, dup := names[name]; dup {
			return fmt.Errorf("%w: duplicate plan %q", ErrInvalidCatalog, plan.Name)
		}
		names[name] = struct{}{}

		if plan.MonthlyPrice <= 0 || plan.AnnualPrice <= 0 {
			return fmt.Errorf("%w: plan %q prices must be positive", ErrInvalidCatalog, plan.Name)
		}
		for _, feature := range plan.Features {
			if !feature.Key.Valid() {
				return fmt.Errorf("%w: plan %q has unknown feature key %q", ErrInvalidCatalog, plan.Name, feature.Key)
			}
		}
	}
	return nil
}

func (c *Catalog) warnUndiscountedPlans() {
	logger := factory.NewModuleLogger("content-catalog")
	for _, plan := range c.Pricing.Plans {
		if !plan.OffersAnnualDiscount() {
			logger.WithField("plan", plan.Name).
				WithField("monthly_price", plan.MonthlyPrice).
				WithField("annual_price", plan.AnnualPrice).
				Warn("Annual price is not discounted")
		}
	}
}

// ListPlans returns the plans in catalog order.
func (c *Catalog) ListPlans(_ context.Context) ([]entity.Plan, error) {
	plans := make([]entity.Plan, len(c.Pricing.Plans))
	copy(plans, c.Pricing.Plans)
	return plans, nil
}

func (c *Catalog) HasSubject(value string) bool {
	for _, subject := range c.Contact.Subjects {
		if subject.Value == value {
			return true
		}
	}
	return false
}
