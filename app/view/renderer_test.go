package view

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vibast-solutions/ms-go-website/app/content"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/pricing"
	"github.com/vibast-solutions/ms-go-website/app/service"
	"github.com/vibast-solutions/ms-go-website/app/types"
)

func newPageService(t *testing.T) *service.PageService {
	t.Helper()
	catalog, err := content.LoadDefault()
	require.NoError(t, err)
	formatter, err := pricing.NewFormatter(catalog.Currency.Symbol, catalog.Currency.Locale)
	require.NoError(t, err)
	pricingService := service.NewPricingService(catalog, catalog.Pricing.Comparison, formatter, nil)
	return service.NewPageService(catalog, pricingService, 6*time.Second, nil)
}

func render(t *testing.T, name string, data interface{}) string {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, name, data, nil))
	return buf.String()
}

func TestRenderPricingAnnual(t *testing.T) {
	pages := newPageService(t)
	page, err := pages.Pricing(context.Background(), &types.PageQuery{Cycle: entity.BillingCycleAnnual})
	require.NoError(t, err)

	html := render(t, "pricing", page)
	require.Contains(t, html, "₹2,500")
	require.Contains(t, html, "Save 17% (Billed Annually)")
	require.Contains(t, html, "+ 3 more features included")
	require.Contains(t, html, `class="active" aria-current="page">Pricing`)
	require.Contains(t, html, "Dedicated Account Manager")
}

func TestRenderPricingMonthlyHasNoSavings(t *testing.T) {
	pages := newPageService(t)
	page, err := pages.Pricing(context.Background(), &types.PageQuery{Cycle: entity.BillingCycleMonthly})
	require.NoError(t, err)

	html := render(t, "pricing", page)
	require.Contains(t, html, "₹999")
	require.NotContains(t, html, "(Billed Annually)")
}

func TestRenderContactEscapesValues(t *testing.T) {
	pages := newPageService(t)
	page := pages.Contact(&types.PageQuery{}, service.ContactForm{
		Values: types.ContactRequest{Name: `<script>alert(1)</script>`, Subject: "sales"},
		Errors: map[string]string{"email": "is required"},
	})

	html := render(t, "contact", page)
	require.NotContains(t, html, "<script>alert(1)</script>")
	require.Contains(t, html, "Email is required")
	require.Contains(t, html, `<option value="sales" selected>`)
}

func TestRenderAllPages(t *testing.T) {
	pages := newPageService(t)
	query := &types.PageQuery{Cycle: entity.BillingCycleMonthly}

	for name, data := range map[string]interface{}{
		"home":     pages.Home(query),
		"about":    pages.About(query),
		"services": pages.Services(&types.PageQuery{Service: "0"}),
	} {
		html := render(t, name, data)
		require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"), name)
		require.Contains(t, html, "Stanfler Tech LLP", name)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)
	require.Error(t, renderer.Render(&bytes.Buffer{}, "blog", nil, nil))
}
