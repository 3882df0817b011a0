package types

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	DefaultContactMessagesLimit = 50
	MaxContactMessagesLimit     = 200
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// ValidationError maps request fields to a human readable problem.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+" "+e.Fields[key])
	}
	return strings.Join(parts, "; ")
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,max=120"`
	Email   string `json:"email" form:"email" validate:"required,email,max=254"`
	Company string `json:"company" form:"company" validate:"max=160"`
	Subject string `json:"subject" form:"subject" validate:"required"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}

// NewContactRequestFromContext binds a JSON body or a url-encoded form.
func NewContactRequestFromContext(ctx echo.Context) (*ContactRequest, error) {
	var body ContactRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Normalize()
	return &body, nil
}

func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *ContactRequest) GetName() string    { return r.Name }
func (r *ContactRequest) GetEmail() string   { return r.Email }
func (r *ContactRequest) GetCompany() string { return r.Company }
func (r *ContactRequest) GetSubject() string { return r.Subject }
func (r *ContactRequest) GetMessage() string { return r.Message }

// Validate returns a *ValidationError listing every failing field.
func (r *ContactRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := NewValidationError()
	for _, fieldErr := range fieldErrs {
		result.Add(fieldErr.Field(), validationMessage(fieldErr))
	}
	return result
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email"
	}
	return "is invalid"
}

type ListContactMessagesRequest struct {
	Limit int `json:"limit"`
}

func NewListContactMessagesRequestFromContext(ctx echo.Context) (*ListContactMessagesRequest, error) {
	req := &ListContactMessagesRequest{Limit: DefaultContactMessagesLimit}
	if raw := strings.TrimSpace(ctx.QueryParam("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}
	return req, nil
}

func (r *ListContactMessagesRequest) Validate() error {
	if r.Limit <= 0 || r.Limit > MaxContactMessagesLimit {
		return fmt.Errorf("limit must be between 1 and %d", MaxContactMessagesLimit)
	}
	return nil
}
