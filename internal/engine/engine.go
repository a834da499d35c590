package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slipfall-engine/internal/calculations"
	"slipfall-engine/internal/metrics"
	"slipfall-engine/internal/model"
)

// Process runs every calculation in the request. Calculations are independent:
// a CRITICAL message fails that calculation only, and processing carries on
// with the next one. The overall outcome is FAILURE if any calculation failed.
//
// defaults.Strict applies unless the request sets its own strict flag.
func Process(req *model.CalculationRequest, defaults calculations.Options) *model.CalculationResponse {
	start := time.Now()

	opts := defaults
	if req.CalculationInstructions.Strict != nil {
		opts.Strict = *req.CalculationInstructions.Strict
	}

	allMessages := []model.CalculationMessage{}
	processed := make([]model.ProcessedCalculation, 0, len(req.CalculationInstructions.Calculations))
	outcome := model.OutcomeSuccess

	for i := range req.CalculationInstructions.Calculations {
		calc := &req.CalculationInstructions.Calculations[i]
		calcStart := time.Now()

		pc := model.ProcessedCalculation{Calculation: *calc, Outcome: model.OutcomeSuccess}
		hasCritical := false

		record := func(msgs []model.CalculationMessage) {
			for _, m := range msgs {
				m.ID = len(allMessages)
				allMessages = append(allMessages, m)
				pc.CalculationMessageIndexes = append(pc.CalculationMessageIndexes, m.ID)
				if m.Level == model.LevelCritical {
					hasCritical = true
				}
			}
		}

		handler, ok := calculations.Get(calc.CalculationDefinitionName)
		if !ok {
			record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_CALCULATION",
				Message: fmt.Sprintf("Unknown calculation: %s", calc.CalculationDefinitionName),
			}})
		}

		// Validate
		if !hasCritical {
			record(handler.Validate(opts, calc))
		}

		// Apply
		if !hasCritical {
			result, msgs := handler.Apply(opts, calc)
			record(msgs)
			if !hasCritical && result != nil {
				pc.Result = result
				pc.Formatted = result.Formatted()
			}
		}

		if hasCritical {
			pc.Outcome = model.OutcomeFailure
			outcome = model.OutcomeFailure
		}
		processed = append(processed, pc)

		definition := calc.CalculationDefinitionName
		if !ok {
			definition = "unknown"
		}
		metrics.CalculationsTotal.WithLabelValues(definition, pc.Outcome).Inc()
		metrics.CalculationDuration.WithLabelValues(definition).Observe(time.Since(calcStart).Seconds())

		zap.L().Debug("calculation processed",
			zap.String("tenant_id", req.TenantID),
			zap.String("calculation_id", calc.CalculationID),
			zap.String("definition", calc.CalculationDefinitionName),
			zap.String("outcome", pc.Outcome),
			zap.Int("messages", len(pc.CalculationMessageIndexes)),
		)
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			Strict:                 opts.Strict,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:     allMessages,
			Calculations: processed,
		},
	}
}
