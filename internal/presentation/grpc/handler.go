package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/application/dto"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/application/usecase"
)

// DecisionHandler exposes loan decision operations over gRPC. The transport
// stays thin: every business outcome, including rejections, travels as
// response data, and gRPC status codes are reserved for malformed transport
// input.
type DecisionHandler struct {
	UnimplementedDecisionServiceServer

	evaluate *usecase.EvaluateLoanUseCase
	limits   *usecase.GetLimitsUseCase
}

// NewDecisionHandler creates a handler with its use-case dependencies.
func NewDecisionHandler(
	evaluate *usecase.EvaluateLoanUseCase,
	limits *usecase.GetLimitsUseCase,
) *DecisionHandler {
	return &DecisionHandler{
		evaluate: evaluate,
		limits:   limits,
	}
}

// EvaluateLoan handles one loan evaluation request.
func (h *DecisionHandler) EvaluateLoan(ctx context.Context, in *EvaluateLoanRequest) (*EvaluateLoanResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "request body is required")
	}

	resp := h.evaluate.Execute(ctx, dto.EvaluateLoanRequest{
		PersonalCode:     in.PersonalCode,
		LoanAmount:       in.LoanAmount,
		LoanPeriodMonths: in.LoanPeriodMonths,
		Country:          in.Country,
	})

	return &EvaluateLoanResponse{
		DecisionID:           resp.DecisionID,
		Approved:             resp.Approved,
		ApprovedAmount:       resp.ApprovedAmount,
		ApprovedPeriodMonths: resp.ApprovedPeriodMonths,
		Reason:               resp.Reason,
		Message:              resp.Message,
		Country:              resp.Country,
		EvaluatedAt:          resp.EvaluatedAt.Format(time.RFC3339),
	}, nil
}

// GetLimits reports the configured request bounds.
func (h *DecisionHandler) GetLimits(ctx context.Context, _ *GetLimitsRequest) (*GetLimitsResponse, error) {
	limits := h.limits.Execute(ctx)
	return &GetLimitsResponse{
		MinLoanAmount:       limits.MinLoanAmount,
		MaxLoanAmount:       limits.MaxLoanAmount,
		MinLoanPeriodMonths: limits.MinLoanPeriodMonths,
		MaxLoanPeriodMonths: limits.MaxLoanPeriodMonths,
	}, nil
}
