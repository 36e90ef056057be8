package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"magicbank-loan-engine/internal/adapter/validation"
	"magicbank-loan-engine/internal/domain/underwriting"
	"magicbank-loan-engine/internal/usecase/scoring"
	"magicbank-loan-engine/pkg/id"
)

// RequestIDKey is the incoming metadata key carrying the caller's request id.
const RequestIDKey = "x-request-id"

// Scorer is satisfied by *scoring.Usecase.
type Scorer interface {
	Score(ctx context.Context, in scoring.ScoreLoanInput) (*scoring.DecisionDTO, error)
}

// UnderwritingHandler exposes loan scoring over gRPC.
type UnderwritingHandler struct {
	UnimplementedUnderwritingServiceServer

	uc Scorer
	v  *validation.CustomValidator
}

func NewUnderwritingHandler(uc Scorer) *UnderwritingHandler {
	return &UnderwritingHandler{uc: uc, v: validation.NewValidator()}
}

func (h *UnderwritingHandler) ScoreLoan(ctx context.Context, in *scoring.ScoreLoanInput) (*scoring.DecisionDTO, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := h.v.Validate(in); err != nil {
		return nil, status.Error(codes.InvalidArgument, "validation failed: "+joinFieldErrors(validation.ToFieldErrors(err)))
	}

	dto, err := h.uc.Score(scoring.WithRequestID(ctx, requestID(ctx)), *in)
	if err != nil {
		if errors.Is(err, underwriting.ErrPrecondition) {
			return nil, status.Error(codes.Internal, "internal scoring error")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}
	return dto, nil
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDKey); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return id.NewID32()
}

func joinFieldErrors(fes []validation.FieldError) string {
	parts := make([]string, 0, len(fes))
	for _, fe := range fes {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return strings.Join(parts, "; ")
}
