package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-website/app/factory"
	"github.com/vibast-solutions/ms-go-website/app/service"
	"github.com/vibast-solutions/ms-go-website/app/types"
)

type PageController struct {
	pageService    *service.PageService
	contactService *service.ContactService
	logger         logrus.FieldLogger
}

func NewPageController(pageService *service.PageService, contactService *service.ContactService) *PageController {
	return &PageController{
		pageService:    pageService,
		contactService: contactService,
		logger:         factory.NewModuleLogger("page-controller"),
	}
}

func (c *PageController) Home(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, service.PageHome, c.pageService.Home(types.NewPageQueryFromContext(ctx)))
}

func (c *PageController) About(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, service.PageAbout, c.pageService.About(types.NewPageQueryFromContext(ctx)))
}

func (c *PageController) Services(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, service.PageServices, c.pageService.Services(types.NewPageQueryFromContext(ctx)))
}

func (c *PageController) Pricing(ctx echo.Context) error {
	page, err := c.pageService.Pricing(ctx.Request().Context(), types.NewPageQueryFromContext(ctx))
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Build pricing page failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return ctx.Render(http.StatusOK, service.PagePricing, page)
}

func (c *PageController) Contact(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, service.PageContact, c.pageService.Contact(types.NewPageQueryFromContext(ctx), service.ContactForm{}))
}

// SubmitContact handles the HTML form. Field errors re-render the form with the
// submitted values; success renders an empty form with a thank-you notice.
func (c *PageController) SubmitContact(ctx echo.Context) error {
	query := types.NewPageQueryFromContext(ctx)

	req, err := types.NewContactRequestFromContext(ctx)
	if err != nil {
		form := service.ContactForm{Errors: map[string]string{"form": "Your message could not be read. Please try again."}}
		return ctx.Render(http.StatusBadRequest, service.PageContact, c.pageService.Contact(query, form))
	}

	receipt, err := c.contactService.Submit(ctx.Request().Context(), req, ctx.RealIP())
	if err != nil {
		form := service.ContactForm{Values: *req}
		var verr *types.ValidationError
		status := http.StatusInternalServerError
		switch {
		case errors.As(err, &verr):
			status = http.StatusUnprocessableEntity
			form.Errors = verr.Fields
		case errors.Is(err, service.ErrRateLimited):
			status = http.StatusTooManyRequests
			form.Errors = map[string]string{"form": "You have sent several messages recently. Please try again later."}
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Submit contact form failed")
			form.Errors = map[string]string{"form": "Something went wrong. Please try again or email us directly."}
		}
		return ctx.Render(status, service.PageContact, c.pageService.Contact(query, form))
	}

	return ctx.Render(http.StatusOK, service.PageContact, c.pageService.Contact(query, service.ContactForm{Receipt: receipt}))
}
