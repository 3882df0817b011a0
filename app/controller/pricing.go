package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-website/app/dto"
	"github.com/vibast-solutions/ms-go-website/app/factory"
	"github.com/vibast-solutions/ms-go-website/app/mapper"
	"github.com/vibast-solutions/ms-go-website/app/service"
	"github.com/vibast-solutions/ms-go-website/app/types"
)

type PricingController struct {
	pricingService *service.PricingService
	logger         logrus.FieldLogger
}

func NewPricingController(pricingService *service.PricingService) *PricingController {
	return &PricingController{
		pricingService: pricingService,
		logger:         factory.NewModuleLogger("pricing-controller"),
	}
}

func (c *PricingController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

func (c *PricingController) ListPlans(ctx echo.Context) error {
	req, err := types.NewListQuotesRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	cycle, _ := req.BillingCycle()

	quotes, err := c.pricingService.ListQuotes(ctx.Request().Context(), cycle)
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List plans failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	resp := mapper.PlanQuotesToResponse(cycle, quotes)
	return ctx.JSON(http.StatusOK, &resp)
}

func (c *PricingController) GetPlan(ctx echo.Context) error {
	req, err := types.NewQuoteRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	cycle, _ := req.BillingCycle()

	quote, err := c.pricingService.Quote(ctx.Request().Context(), req.GetPlan(), cycle)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return writeError(ctx, http.StatusNotFound, "plan not found")
		}
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Get plan failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.JSON(http.StatusOK, &dto.PlanQuoteEnvelopeResponse{Plan: mapper.PlanQuoteToResponse(quote)})
}

func (c *PricingController) Comparison(ctx echo.Context) error {
	table, err := c.pricingService.Comparison(ctx.Request().Context())
	if err != nil {
		factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Build comparison failed")
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	resp := mapper.ComparisonToResponse(table)
	return ctx.JSON(http.StatusOK, &resp)
}

func writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
