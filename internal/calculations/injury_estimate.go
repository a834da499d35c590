package calculations

import (
	"fmt"

	"slipfall-engine/internal/estimator"
	"slipfall-engine/internal/model"
)

type injuryEstimateProps struct {
	Injury string `json:"injury"`
}

// InjuryEstimateHandler looks up the injury guide's quick estimate. An unknown
// injury is CRITICAL in both modes since there is no neutral entry to fall back to.
type InjuryEstimateHandler struct{}

func (h *InjuryEstimateHandler) Validate(opts Options, calc *model.Calculation) []model.CalculationMessage {
	var props injuryEstimateProps
	if err := decodeProps(calc, &props); err != nil {
		return invalidProps(err)
	}

	if _, ok := estimator.LookupInjury(estimator.InjuryKey(props.Injury)); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    estimator.CodeUnknownInjury,
			Field:   "injury",
			Message: fmt.Sprintf("Unknown injury type: %q", props.Injury),
		}}
	}
	return nil
}

func (h *InjuryEstimateHandler) Apply(opts Options, calc *model.Calculation) (Result, []model.CalculationMessage) {
	var props injuryEstimateProps
	if err := decodeProps(calc, &props); err != nil {
		return nil, invalidProps(err)
	}

	est, err := estimator.EstimateInjury(estimator.InjuryKey(props.Injury))
	if err != nil {
		return nil, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    estimator.CodeUnknownInjury,
			Field:   "injury",
			Message: err.Error(),
		}}
	}
	return est, nil
}
