package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vibast-solutions/ms-go-website/app/content"
	"github.com/vibast-solutions/ms-go-website/app/dto"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/pricing"
	"github.com/vibast-solutions/ms-go-website/app/service"
	"github.com/vibast-solutions/ms-go-website/app/view"
	"github.com/vibast-solutions/ms-go-website/config"
)

type controllerContactStore struct {
	createFn     func(ctx context.Context, message *entity.ContactMessage) error
	listRecentFn func(ctx context.Context, limit int) ([]*entity.ContactMessage, error)
}

func (s *controllerContactStore) Create(ctx context.Context, message *entity.ContactMessage) error {
	if s.createFn != nil {
		return s.createFn(ctx, message)
	}
	return nil
}

func (s *controllerContactStore) ListRecent(ctx context.Context, limit int) ([]*entity.ContactMessage, error) {
	if s.listRecentFn != nil {
		return s.listRecentFn(ctx, limit)
	}
	return nil, nil
}

func (s *controllerContactStore) DeleteOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type controllerLimiter struct {
	allowed bool
}

func (l *controllerLimiter) Allow(context.Context, string) (bool, int64, error) {
	return l.allowed, 1, nil
}

type fixture struct {
	echo     *echo.Echo
	pricing  *PricingController
	contact  *ContactController
	pages    *PageController
	limiter  *controllerLimiter
}

func newFixture(t *testing.T, store service.ContactMessageStore) *fixture {
	t.Helper()
	catalog, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	formatter, err := pricing.NewFormatter(catalog.Currency.Symbol, catalog.Currency.Locale)
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	limiter := &controllerLimiter{allowed: true}
	pricingService := service.NewPricingService(catalog, catalog.Pricing.Comparison, formatter, nil)
	contactService := service.NewContactService(store, catalog, limiter, config.ContactConfig{}, nil)
	pageService := service.NewPageService(catalog, pricingService, time.Second, nil)

	e := echo.New()
	e.Renderer = renderer
	return &fixture{
		echo:    e,
		pricing: NewPricingController(pricingService),
		contact: NewContactController(contactService),
		pages:   NewPageController(pageService, contactService),
		limiter: limiter,
	}
}

func (f *fixture) context(method, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return f.echo.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)
	ctx, rec := f.context(http.MethodGet, "/health", nil, "")

	if err := f.pricing.Health(ctx); err != nil {
		t.Fatalf("health returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestListPlansAnnual(t *testing.T) {
	f := newFixture(t, nil)
	ctx, rec := f.context(http.MethodGet, "/api/pricing/plans?cycle=annual", nil, "")

	if err := f.pricing.ListPlans(ctx); err != nil {
		t.Fatalf("ListPlans returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListPlanQuotesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Cycle != "annual" || len(resp.Plans) != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Plans[0].DisplayedPrice != 833 || resp.Plans[0].SavingsPercent == nil || *resp.Plans[0].SavingsPercent != 17 {
		t.Fatalf("unexpected starter quote: %+v", resp.Plans[0])
	}
}

func TestListPlansRejectsInvalidCycle(t *testing.T) {
	f := newFixture(t, nil)
	ctx, rec := f.context(http.MethodGet, "/api/pricing/plans?cycle=weekly", nil, "")

	if err := f.pricing.ListPlans(ctx); err != nil {
		t.Fatalf("ListPlans returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetPlan(t *testing.T) {
	f := newFixture(t, nil)

	ctx, rec := f.context(http.MethodGet, "/api/pricing/plans/pro", nil, "")
	ctx.SetParamNames("name")
	ctx.SetParamValues("pro")
	if err := f.pricing.GetPlan(ctx); err != nil {
		t.Fatalf("GetPlan returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"displayed_price":2999`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}

	ctx, rec = f.context(http.MethodGet, "/api/pricing/plans/gold", nil, "")
	ctx.SetParamNames("name")
	ctx.SetParamValues("gold")
	if err := f.pricing.GetPlan(ctx); err != nil {
		t.Fatalf("GetPlan returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestComparison(t *testing.T) {
	f := newFixture(t, nil)
	ctx, rec := f.context(http.MethodGet, "/api/pricing/comparison", nil, "")

	if err := f.pricing.Comparison(ctx); err != nil {
		t.Fatalf("Comparison returned error: %v", err)
	}
	var resp dto.ComparisonResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Plans) != 3 || len(resp.Rows) != 10 {
		t.Fatalf("unexpected comparison: %+v", resp)
	}
}

func TestContactSubmitJSON(t *testing.T) {
	var stored *entity.ContactMessage
	f := newFixture(t, &controllerContactStore{createFn: func(_ context.Context, m *entity.ContactMessage) error {
		stored = m
		return nil
	}})
	body := bytes.NewBufferString(`{"name":"Jane","email":"jane@example.com","subject":"support","message":"The export button does nothing."}`)
	ctx, rec := f.context(http.MethodPost, "/api/contact", body, echo.MIMEApplicationJSON)

	if err := f.contact.Submit(ctx); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.ContactReceiptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stored == nil || resp.ReferenceID != stored.ReferenceID {
		t.Fatalf("reference mismatch: resp=%+v stored=%+v", resp, stored)
	}
}

func TestContactSubmitJSONValidation(t *testing.T) {
	f := newFixture(t, nil)
	body := bytes.NewBufferString(`{"name":"Jane","email":"bad","subject":"support","message":"short"}`)
	ctx, rec := f.context(http.MethodPost, "/api/contact", body, echo.MIMEApplicationJSON)

	if err := f.contact.Submit(ctx); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Fields["email"] == "" || resp.Fields["message"] == "" {
		t.Fatalf("expected email and message errors, got %+v", resp.Fields)
	}
}

func TestContactSubmitJSONRateLimited(t *testing.T) {
	f := newFixture(t, nil)
	f.limiter.allowed = false
	body := bytes.NewBufferString(`{"name":"Jane","email":"jane@example.com","subject":"support","message":"The export button does nothing."}`)
	ctx, rec := f.context(http.MethodPost, "/api/contact", body, echo.MIMEApplicationJSON)

	if err := f.contact.Submit(ctx); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestListMessages(t *testing.T) {
	f := newFixture(t, nil)
	ctx, rec := f.context(http.MethodGet, "/internal/contact-messages", nil, "")
	if err := f.contact.ListMessages(ctx); err != nil {
		t.Fatalf("ListMessages returned error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without storage, got %d", rec.Code)
	}

	f = newFixture(t, &controllerContactStore{listRecentFn: func(_ context.Context, limit int) ([]*entity.ContactMessage, error) {
		return []*entity.ContactMessage{{ID: 1, ReferenceID: "ref", CreatedAt: time.Now()}}, nil
	}})
	ctx, rec = f.context(http.MethodGet, "/internal/contact-messages?limit=5", nil, "")
	if err := f.contact.ListMessages(ctx); err != nil {
		t.Fatalf("ListMessages returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"reference_id":"ref"`) {
		t.Fatalf("unexpected response: %d %s", rec.Code, rec.Body.String())
	}

	ctx, rec = f.context(http.MethodGet, "/internal/contact-messages?limit=0", nil, "")
	if err := f.contact.ListMessages(ctx); err != nil {
		t.Fatalf("ListMessages returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPricingPageFallsBackToMonthly(t *testing.T) {
	f := newFixture(t, nil)
	ctx, rec := f.context(http.MethodGet, "/pricing?cycle=weekly", nil, "")

	if err := f.pages.Pricing(ctx); err != nil {
		t.Fatalf("Pricing returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "₹999") || strings.Contains(rec.Body.String(), "(Billed Annually)") {
		t.Fatal("expected monthly prices")
	}
}

func TestHTMLPages(t *testing.T) {
	f := newFixture(t, nil)
	handlers := map[string]echo.HandlerFunc{
		"/":         f.pages.Home,
		"/about":    f.pages.About,
		"/services": f.pages.Services,
		"/contact":  f.pages.Contact,
	}
	for path, handler := range handlers {
		ctx, rec := f.context(http.MethodGet, path, nil, "")
		if err := handler(ctx); err != nil {
			t.Fatalf("%s returned error: %v", path, err)
		}
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
			t.Fatalf("%s: unexpected response %d", path, rec.Code)
		}
	}
}

func TestSubmitContactForm(t *testing.T) {
	f := newFixture(t, nil)

	form := url.Values{}
	form.Set("name", "Jane")
	form.Set("email", "jane@example.com")
	form.Set("subject", "sales")
	form.Set("message", "Please share enterprise pricing.")
	ctx, rec := f.context(http.MethodPost, "/contact", bytes.NewBufferString(form.Encode()), echo.MIMEApplicationForm)

	if err := f.pages.SubmitContact(ctx); err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Thank you for your message!") {
		t.Fatalf("unexpected response: %d", rec.Code)
	}
}

func TestSubmitContactFormInvalid(t *testing.T) {
	f := newFixture(t, nil)

	form := url.Values{}
	form.Set("name", "Jane")
	form.Set("subject", "sales")
	form.Set("message", "Please share enterprise pricing.")
	ctx, rec := f.context(http.MethodPost, "/contact", bytes.NewBufferString(form.Encode()), echo.MIMEApplicationForm)

	if err := f.pages.SubmitContact(ctx); err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Email is required") || !strings.Contains(body, `value="Jane"`) {
		t.Fatal("expected field error and preserved values")
	}
}

func TestSubmitContactFormRateLimited(t *testing.T) {
	f := newFixture(t, nil)
	f.limiter.allowed = false

	form := url.Values{}
	form.Set("name", "Jane")
	form.Set("email", "jane@example.com")
	form.Set("subject", "sales")
	form.Set("message", "Please share enterprise pricing.")
	ctx, rec := f.context(http.MethodPost, "/contact", bytes.NewBufferString(form.Encode()), echo.MIMEApplicationForm)

	if err := f.pages.SubmitContact(ctx); err != nil {
		t.Fatalf("SubmitContact returned error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
