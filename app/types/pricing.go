package types

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-website/app/entity"
)

// PageQuery carries the request-local UI state of the HTML pages. Index values are
// kept raw; the page builder resolves them against the number of entries.
type PageQuery struct {
	Cycle       entity.BillingCycle
	FAQ         string
	Service     string
	Testimonial string
}

// NewPageQueryFromContext never fails: an unknown cycle falls back to monthly.
func NewPageQueryFromContext(ctx echo.Context) *PageQuery {
	cycle, err := entity.ParseBillingCycle(ctx.QueryParam("cycle"))
	if err != nil {
		cycle = entity.BillingCycleMonthly
	}
	return &PageQuery{
		Cycle:       cycle,
		FAQ:         strings.TrimSpace(ctx.QueryParam("faq")),
		Service:     strings.TrimSpace(ctx.QueryParam("service")),
		Testimonial: strings.TrimSpace(ctx.QueryParam("testimonial")),
	}
}

type QuoteRequest struct {
	Plan  string `json:"plan"`
	Cycle string `json:"cycle"`
}

func NewListQuotesRequestFromContext(ctx echo.Context) (*QuoteRequest, error) {
	return &QuoteRequest{Cycle: strings.TrimSpace(ctx.QueryParam("cycle"))}, nil
}

func NewQuoteRequestFromContext(ctx echo.Context) (*QuoteRequest, error) {
	return &QuoteRequest{
		Plan:  strings.TrimSpace(ctx.Param("name")),
		Cycle: strings.TrimSpace(ctx.QueryParam("cycle")),
	}, nil
}

func (r *QuoteRequest) GetPlan() string {
	if r == nil {
		return ""
	}
	return r.Plan
}

func (r *QuoteRequest) GetCycle() string {
	if r == nil {
		return ""
	}
	return r.Cycle
}

func (r *QuoteRequest) BillingCycle() (entity.BillingCycle, error) {
	return entity.ParseBillingCycle(r.GetCycle())
}

// Validate checks the cycle only; an empty plan means all plans.
func (r *QuoteRequest) Validate() error {
	_, err := r.BillingCycle()
	return err
}
