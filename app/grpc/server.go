package grpc

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-website/app/mapper"
	"github.com/vibast-solutions/ms-go-website/app/service"
	"github.com/vibast-solutions/ms-go-website/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type Server struct {
	pricingService *service.PricingService
}

func NewServer(pricingService *service.PricingService) *Server {
	return &Server{pricingService: pricingService}
}

func (s *Server) ListPlans(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	quoteReq := quoteRequestFromStruct(req)
	if err := quoteReq.Validate(); err != nil {
		l.WithError(err).Debug("List plans validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	cycle, _ := quoteReq.BillingCycle()

	quotes, err := s.pricingService.ListQuotes(ctx, cycle)
	if err != nil {
		l.WithError(err).Error("List plans failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}

	resp, err := mapper.PlanQuotesToStruct(mapper.PlanQuotesToResponse(cycle, quotes))
	if err != nil {
		l.WithError(err).Error("Encode plans failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return resp, nil
}

func (s *Server) Quote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	l := loggerWithContext(ctx)
	quoteReq := quoteRequestFromStruct(req)
	if quoteReq.GetPlan() == "" {
		return nil, status.Error(codes.InvalidArgument, "plan is required")
	}
	if err := quoteReq.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	cycle, _ := quoteReq.BillingCycle()

	quote, err := s.pricingService.Quote(ctx, quoteReq.GetPlan(), cycle)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			return nil, status.Error(codes.NotFound, "plan not found")
		}
		l.WithError(err).Error("Quote failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}

	resp, err := mapper.PlanQuoteToStruct(mapper.PlanQuoteToResponse(quote))
	if err != nil {
		l.WithError(err).Error("Encode quote failed")
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return resp, nil
}

func quoteRequestFromStruct(req *structpb.Struct) *types.QuoteRequest {
	fields := req.GetFields()
	return &types.QuoteRequest{
		Plan:  fields["plan"].GetStringValue(),
		Cycle: fields["cycle"].GetStringValue(),
	}
}
