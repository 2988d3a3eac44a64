package usecase

import (
	"context"
	"log/slog"

	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/application/dto"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/model"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/port"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/service"
	"github.com/Romar-II/marek-armulik-decision-engine-backend/internal/domain/valueobject"
)

// EvaluateLoanUseCase runs the decision engine for one request, records the
// outcome, and publishes the resulting domain event.
type EvaluateLoanUseCase struct {
	engine    *service.DecisionEngine
	publisher port.EventPublisher
	clock     port.Clock
	logger    *slog.Logger
}

// NewEvaluateLoanUseCase wires dependencies.
func NewEvaluateLoanUseCase(
	engine *service.DecisionEngine,
	publisher port.EventPublisher,
	clock port.Clock,
	logger *slog.Logger,
) *EvaluateLoanUseCase {
	return &EvaluateLoanUseCase{
		engine:    engine,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Execute evaluates a loan request. Business failures are data on the
// response, never errors; the decision stands even if event publishing fails.
func (uc *EvaluateLoanUseCase) Execute(ctx context.Context, req dto.EvaluateLoanRequest) dto.DecisionResponse {
	now := uc.clock.Now().UTC()

	// 1. Normalise the country. Unknown values deliberately fall back to Estonia.
	country := valueobject.ParseCountry(req.Country)

	// 2. Run the decision engine.
	outcome := uc.engine.Evaluate(service.LoanRequest{
		PersonalCode: req.PersonalCode,
		Amount:       req.LoanAmount,
		PeriodMonths: req.LoanPeriodMonths,
		Country:      country,
	}, now)

	// 3. Record the decision.
	decision := model.NewLoanDecision(
		req.PersonalCode, country, req.LoanAmount, req.LoanPeriodMonths, outcome, now,
	)

	// 4. Publish the decision event. The evaluation is already final at this
	// point, so a broker outage is logged rather than voiding the decision.
	if err := uc.publisher.Publish(ctx, decision.DomainEvents()...); err != nil {
		uc.logger.Warn("publishing decision event failed",
			"error", err,
			"decision_id", decision.ID(),
		)
	}

	return toDecisionResponse(decision)
}

func toDecisionResponse(d model.LoanDecision) dto.DecisionResponse {
	resp := dto.DecisionResponse{
		DecisionID:  d.ID(),
		Country:     d.Country().String(),
		EvaluatedAt: d.EvaluatedAt(),
	}

	outcome := d.Outcome()
	if outcome.Approved() {
		resp.Approved = true
		resp.ApprovedAmount = outcome.Amount
		resp.ApprovedPeriodMonths = outcome.PeriodMonths
		return resp
	}

	resp.Reason = outcome.Rejection.Reason.String()
	resp.Message = outcome.Rejection.Message
	return resp
}
