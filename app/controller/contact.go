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

type ContactController struct {
	contactService *service.ContactService
	logger         logrus.FieldLogger
}

func NewContactController(contactService *service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         factory.NewModuleLogger("contact-controller"),
	}
}

func (c *ContactController) Submit(ctx echo.Context) error {
	req, err := types.NewContactRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	receipt, err := c.contactService.Submit(ctx.Request().Context(), req, ctx.RealIP())
	if err != nil {
		var verr *types.ValidationError
		switch {
		case errors.As(err, &verr):
			return ctx.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
		case errors.Is(err, service.ErrRateLimited):
			return writeError(ctx, http.StatusTooManyRequests, "too many requests, please try again later")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("Submit contact message failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	resp := mapper.ContactReceiptToResponse(receipt)
	return ctx.JSON(http.StatusAccepted, &resp)
}

func (c *ContactController) ListMessages(ctx echo.Context) error {
	req, err := types.NewListContactMessagesRequestFromContext(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid query params")
	}
	if err := req.Validate(); err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.contactService.ListMessages(ctx.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			return writeError(ctx, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrContactStorageUnavailable):
			return writeError(ctx, http.StatusServiceUnavailable, "contact message storage is not configured")
		default:
			factory.LoggerWithContext(c.logger, ctx).WithError(err).Error("List contact messages failed")
			return writeError(ctx, http.StatusInternalServerError, "internal server error")
		}
	}

	resp := mapper.ContactMessagesToResponse(items)
	return ctx.JSON(http.StatusOK, &resp)
}
