package usecase

import (
	"context"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/application/dto"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
)

// GetLimitsUseCase reports the configured loan bounds.
type GetLimitsUseCase struct {
	cfg service.EngineConfig
}

// NewGetLimitsUseCase wires dependencies.
func NewGetLimitsUseCase(cfg service.EngineConfig) *GetLimitsUseCase {
	return &GetLimitsUseCase{cfg: cfg}
}

// Execute returns the amount and period bounds currently in force.
func (uc *GetLimitsUseCase) Execute(_ context.Context) dto.LoanLimitsResponse {
	return dto.LoanLimitsResponse{
		MinLoanAmount:       uc.cfg.MinLoanAmount,
		MaxLoanAmount:       uc.cfg.MaxLoanAmount,
		MinLoanPeriodMonths: uc.cfg.MinLoanPeriodMonths,
		MaxLoanPeriodMonths: uc.cfg.MaxLoanPeriodMonths,
	}
}
