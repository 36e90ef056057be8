package grpc

// Hand-written service descriptor. Messages share the HTTP wire shapes and
// travel with the json codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"magicbank-loan-engine/internal/usecase/scoring"
)

const (
	ServiceName         = "magicbank.underwriting.v1.UnderwritingService"
	ScoreLoanFullMethod = "/" + ServiceName + "/ScoreLoan"
)

// UnderwritingServiceServer is the server API for UnderwritingService.
type UnderwritingServiceServer interface {
	ScoreLoan(context.Context, *scoring.ScoreLoanInput) (*scoring.DecisionDTO, error)
}

// UnimplementedUnderwritingServiceServer can be embedded for forward compatibility.
type UnimplementedUnderwritingServiceServer struct{}

func (UnimplementedUnderwritingServiceServer) ScoreLoan(context.Context, *scoring.ScoreLoanInput) (*scoring.DecisionDTO, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreLoan not implemented")
}

func RegisterUnderwritingServiceServer(s grpclib.ServiceRegistrar, srv UnderwritingServiceServer) {
	s.RegisterService(&underwritingServiceDesc, srv)
}

var underwritingServiceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UnderwritingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ScoreLoan", Handler: scoreLoanHandler},
	},
	Streams: []grpclib.StreamDesc{},
}

func scoreLoanHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(scoring.ScoreLoanInput)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UnderwritingServiceServer).ScoreLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoreLoanFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UnderwritingServiceServer).ScoreLoan(ctx, req.(*scoring.ScoreLoanInput))
	}
	return interceptor(ctx, in, info, handler)
}
