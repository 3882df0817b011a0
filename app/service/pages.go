package service

import (
	"context"
	"time"

	"github.com/vibast-solutions/ms-go-website/app/content"
	"github.com/vibast-solutions/ms-go-website/app/entity"
	"github.com/vibast-solutions/ms-go-website/app/metrics"
	"github.com/vibast-solutions/ms-go-website/app/types"
	"github.com/vibast-solutions/ms-go-website/app/ui"
)

const (
	PageHome     = "home"
	PageAbout    = "about"
	PageServices = "services"
	PagePricing  = "pricing"
	PageContact  = "contact"
)

const contactThankYou = "Thank you for your message! We'll be in touch soon."

type NavLink struct {
	Label  string
	Href   string
	Active bool
}

type Layout struct {
	Page       string
	Title      string
	Company    content.Company
	Navigation []NavLink
	Footer     content.Footer
	Year       int
}

// FAQItem is one accordion entry. Toggle is the faq parameter that flips it.
type FAQItem struct {
	entity.FAQ
	Index  int
	Open   bool
	Toggle string
}

type ServiceCard struct {
	entity.ServiceOffering
	Index    int
	Expanded bool
	Toggle   string
}

type TestimonialCarousel struct {
	Current entity.Testimonial
	Index   int
	Count   int
	Prev    int
	Next    int
}

type ChartBar struct {
	entity.ChartBar
	Percent int
}

type HomePage struct {
	Layout
	Home        content.Home
	Chart       []ChartBar
	Testimonial TestimonialCarousel
}

type AboutPage struct {
	Layout
	About content.About
}

type ServicesPage struct {
	Layout
	Services []ServiceCard
}

type PricingPage struct {
	Layout
	Cycle      entity.BillingCycle
	Annual     bool
	Quotes     []PlanQuote
	Comparison ComparisonTable
	FAQs       []FAQItem
}

type ContactForm struct {
	Values  types.ContactRequest
	Errors  map[string]string
	Notice  string
	Receipt *ContactReceipt
}

type ContactPage struct {
	Layout
	Subjects []entity.SubjectOption
	FAQs     []FAQItem
	Form     ContactForm
}

type PageService struct {
	catalog  *content.Catalog
	pricing  *PricingService
	rotation time.Duration
	started  time.Time
	metrics  *metrics.SiteMetrics
	now      func() time.Time
}

func NewPageService(catalog *content.Catalog, pricing *PricingService, rotation time.Duration, siteMetrics *metrics.SiteMetrics) *PageService {
	if rotation <= 0 {
		rotation = ui.DefaultRotationInterval
	}
	return &PageService{
		catalog:  catalog,
		pricing:  pricing,
		rotation: rotation,
		started:  time.Now(),
		metrics:  siteMetrics,
		now:      time.Now,
	}
}

func (s *PageService) Home(query *types.PageQuery) HomePage {
	home := s.catalog.Home
	count := len(home.Testimonials)

	// Without an explicit choice the carousel follows wall-clock rotation.
	auto := ui.ActiveAt(s.started, s.now(), s.rotation, count)
	active := ui.ParseIndex(query.Testimonial, count, auto)
	if active == ui.None {
		active = auto
	}

	carousel := TestimonialCarousel{Index: active, Count: count}
	if count > 0 {
		carousel.Current = home.Testimonials[active]
		carousel.Prev = ui.PrevIndex(active, count)
		carousel.Next = ui.NextIndex(active, count)
	}

	s.metrics.IncPageView(PageHome)
	return HomePage{
		Layout:      s.layout(PageHome, "Home", "/"),
		Home:        home,
		Chart:       chartBars(home.Chart),
		Testimonial: carousel,
	}
}

func (s *PageService) About(_ *types.PageQuery) AboutPage {
	s.metrics.IncPageView(PageAbout)
	return AboutPage{
		Layout: s.layout(PageAbout, "About", "/about"),
		About:  s.catalog.About,
	}
}

func (s *PageService) Services(query *types.PageQuery) ServicesPage {
	expanded := ui.ParseIndex(query.Service, len(s.catalog.Services), ui.None)

	cards := make([]ServiceCard, 0, len(s.catalog.Services))
	for i, offering := range s.catalog.Services {
		cards = append(cards, ServiceCard{
			ServiceOffering: offering,
			Index:           i,
			Expanded:        i == expanded,
			Toggle:          ui.FormatIndex(ui.ToggleIndex(expanded, i)),
		})
	}

	s.metrics.IncPageView(PageServices)
	return ServicesPage{
		Layout:   s.layout(PageServices, "Services", "/services"),
		Services: cards,
	}
}

// Pricing opens the first FAQ entry unless the request says otherwise.
func (s *PageService) Pricing(ctx context.Context, query *types.PageQuery) (PricingPage, error) {
	quotes, err := s.pricing.ListQuotes(ctx, query.Cycle)
	if err != nil {
		return PricingPage{}, err
	}
	comparison, err := s.pricing.Comparison(ctx)
	if err != nil {
		return PricingPage{}, err
	}

	s.metrics.IncPageView(PagePricing)
	return PricingPage{
		Layout:     s.layout(PagePricing, "Pricing", "/pricing"),
		Cycle:      query.Cycle,
		Annual:     query.Cycle == entity.BillingCycleAnnual,
		Quotes:     quotes,
		Comparison: comparison,
		FAQs:       faqItems(s.catalog.Pricing.FAQs, query.FAQ, 0),
	}, nil
}

func (s *PageService) Contact(query *types.PageQuery, form ContactForm) ContactPage {
	if form.Errors == nil {
		form.Errors = map[string]string{}
	}
	if form.Receipt != nil && form.Notice == "" {
		form.Notice = contactThankYou
	}

	s.metrics.IncPageView(PageContact)
	return ContactPage{
		Layout:   s.layout(PageContact, "Contact", "/contact"),
		Subjects: s.catalog.Contact.Subjects,
		FAQs:     faqItems(s.catalog.Contact.FAQs, query.FAQ, ui.None),
		Form:     form,
	}
}

func (s *PageService) layout(page, title, path string) Layout {
	nav := make([]NavLink, 0, len(s.catalog.Navigation))
	for _, item := range s.catalog.Navigation {
		nav = append(nav, NavLink{Label: item.Label, Href: item.Href, Active: item.Href == path})
	}
	return Layout{
		Page:       page,
		Title:      title,
		Company:    s.catalog.Company,
		Navigation: nav,
		Footer:     s.catalog.Footer,
		Year:       s.now().Year(),
	}
}

func faqItems(faqs []entity.FAQ, raw string, fallback int) []FAQItem {
	open := ui.ParseIndex(raw, len(faqs), fallback)
	items := make([]FAQItem, 0, len(faqs))
	for i, faq := range faqs {
		items = append(items, FAQItem{
			FAQ:    faq,
			Index:  i,
			Open:   i == open,
			Toggle: ui.FormatIndex(ui.ToggleIndex(open, i)),
		})
	}
	return items
}

// chartBars scales bar values against the tallest bar.
func chartBars(bars []entity.ChartBar) []ChartBar {
	highest := 0
	for _, bar := range bars {
		if bar.Value > highest {
			highest = bar.Value
		}
	}

	result := make([]ChartBar, 0, len(bars))
	for _, bar := range bars {
		percent := 0
		if highest > 0 {
			percent = bar.Value * 100 / highest
		}
		result = append(result, ChartBar{ChartBar: bar, Percent: percent})
	}
	return result
}
