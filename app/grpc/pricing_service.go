package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The pricing API has no generated stubs; requests and responses are
// google.protobuf.Struct values with the same field names as the JSON API.
const (
	PricingServiceName      = "website.v1.PricingService"
	ListPlansFullMethodName = "/" + PricingServiceName + "/ListPlans"
	QuoteFullMethodName     = "/" + PricingServiceName + "/Quote"
)

type PricingServiceServer interface {
	ListPlans(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Quote(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: PricingServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPlans", Handler: listPlansHandler},
		{MethodName: "Quote", Handler: quoteHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "website/v1/pricing.proto",
}

func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingServiceDesc, srv)
}

func listPlansHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).ListPlans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListPlansFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).ListPlans(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func quoteHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).Quote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: QuoteFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).Quote(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type PricingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPricingServiceClient(cc grpc.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

func (c *PricingServiceClient) ListPlans(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListPlansFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PricingServiceClient) Quote(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, QuoteFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
