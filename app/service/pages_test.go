package service

import (
	"context"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-website/app/content"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/types"
)

func newTestPageService(t *testing.T) *PageService {
	t.Helper()
	catalog, err := content.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	pricingService := NewPricingService(catalog, catalog.Pricing.Comparison, newTestFormatter(t), nil)
	return NewPageService(catalog, pricingService, 6*time.Second, nil)
}

func TestPricingPageDefaults(t *testing.T) {
	svc := newTestPageService(t)

	page, err := svc.Pricing(context.Background(), &types.PageQuery{Cycle: entity.BillingCycleMonthly})
	if err != nil {
		t.Fatalf("Pricing failed: %v", err)
	}
	if page.Annual || len(page.Quotes) != 3 {
		t.Fatalf("unexpected pricing page: annual=%v quotes=%d", page.Annual, len(page.Quotes))
	}
	if !page.FAQs[0].Open || page.FAQs[0].Toggle != "none" {
		t.Fatalf("expected first faq open by default: %+v", page.FAQs[0])
	}
	if page.FAQs[1].Open || page.FAQs[1].Toggle != "1" {
		t.Fatalf("unexpected second faq: %+v", page.FAQs[1])
	}
	if len(page.Comparison.Rows) != 10 {
		t.Fatalf("expected 10 comparison rows, got %d", len(page.Comparison.Rows))
	}

	var active []string
	for _, link := range page.Navigation {
		if link.Active {
			active = append(active, link.Href)
		}
	}
	if len(active) != 1 || active[0] != "/pricing" {
		t.Fatalf("unexpected active navigation: %v", active)
	}
}

func TestPricingPageClosedFAQ(t *testing.T) {
	svc := newTestPageService(t)

	page, err := svc.Pricing(context.Background(), &types.PageQuery{Cycle: entity.BillingCycleAnnual, FAQ: "none"})
	if err != nil {
		t.Fatalf("Pricing failed: %v", err)
	}
	if !page.Annual {
		t.Fatal("expected annual cycle")
	}
	for _, item := range page.FAQs {
		if item.Open {
			t.Fatalf("expected all faqs closed, %d is open", item.Index)
		}
	}
}

func TestServicesPageExpandedCard(t *testing.T) {
	svc := newTestPageService(t)

	page := svc.Services(&types.PageQuery{Service: "2"})
	if !page.Services[2].Expanded || page.Services[2].Toggle != "none" {
		t.Fatalf("expected third card expanded: %+v", page.Services[2])
	}
	if page.Services[0].Expanded || page.Services[0].Toggle != "0" {
		t.Fatalf("unexpected first card: %+v", page.Services[0])
	}

	page = svc.Services(&types.PageQuery{Service: "99"})
	for _, card := range page.Services {
		if card.Expanded {
			t.Fatal("out of range index must collapse all cards")
		}
	}
}

func TestHomePageTestimonialRotation(t *testing.T) {
	svc := newTestPageService(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.started = start
	svc.now = func() time.Time { return start.Add(13 * time.Second) }

	page := svc.Home(&types.PageQuery{})
	if page.Testimonial.Index != 2 {
		t.Fatalf("expected rotation to reach index 2, got %d", page.Testimonial.Index)
	}

	page = svc.Home(&types.PageQuery{Testimonial: "0"})
	if page.Testimonial.Index != 0 || page.Testimonial.Prev != page.Testimonial.Count-1 || page.Testimonial.Next != 1 {
		t.Fatalf("unexpected carousel: %+v", page.Testimonial)
	}
	if page.Year != 2026 {
		t.Fatalf("unexpected footer year: %d", page.Year)
	}
	if page.Chart[len(page.Chart)-1].Percent != 100 {
		t.Fatalf("expected tallest bar at 100%%: %+v", page.Chart)
	}
}

func TestContactPageNotice(t *testing.T) {
	svc := newTestPageService(t)

	page := svc.Contact(&types.PageQuery{}, ContactForm{Receipt: &ContactReceipt{ReferenceID: "abc"}})
	if page.Form.Notice == "" {
		t.Fatal("expected thank-you notice")
	}
	if len(page.Subjects) != 4 || page.Form.Errors == nil {
		t.Fatalf("unexpected contact page: %+v", page.Form)
	}
	for _, item := range page.FAQs {
		if item.Open {
			t.Fatal("contact faqs start closed")
		}
	}
}
