package grpc

// proto.go defines the gRPC server interface derived from
// decisionengine/v1/decision.proto. It serves as a stand-in for generated
// code; once `buf generate` is run, replace this file with the generated
// import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DecisionServiceServer is the server API for DecisionService.
type DecisionServiceServer interface {
	EvaluateLoan(context.Context, *EvaluateLoanRequest) (*EvaluateLoanResponse, error)
	GetLimits(context.Context, *GetLimitsRequest) (*GetLimitsResponse, error)
	mustEmbedUnimplementedDecisionServiceServer()
}

// UnimplementedDecisionServiceServer provides forward-compatible default
// implementations.
type UnimplementedDecisionServiceServer struct{}

func (UnimplementedDecisionServiceServer) EvaluateLoan(context.Context, *EvaluateLoanRequest) (*EvaluateLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateLoan not implemented")
}
func (UnimplementedDecisionServiceServer) GetLimits(context.Context, *GetLimitsRequest) (*GetLimitsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLimits not implemented")
}
func (UnimplementedDecisionServiceServer) mustEmbedUnimplementedDecisionServiceServer() {}

// RegisterDecisionServiceServer registers the DecisionServiceServer with the
// gRPC server.
func RegisterDecisionServiceServer(s *grpclib.Server, srv DecisionServiceServer) {
	s.RegisterService(&_DecisionService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _DecisionService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "decisionengine.v1.DecisionService",
	HandlerType: (*DecisionServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "EvaluateLoan", Handler: _DecisionService_EvaluateLoan_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetLimits", Handler: _DecisionService_GetLimits_Handler},       //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _DecisionService_EvaluateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).EvaluateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/decisionengine.v1.DecisionService/EvaluateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DecisionServiceServer).EvaluateLoan(ctx, req.(*EvaluateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _DecisionService_GetLimits_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLimitsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionServiceServer).GetLimits(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/decisionengine.v1.DecisionService/GetLimits",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DecisionServiceServer).GetLimits(ctx, req.(*GetLimitsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
