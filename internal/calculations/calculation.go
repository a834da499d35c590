package calculations

import (
	json "github.com/goccy/go-json"

	"slipfall-engine/internal/model"
)

// Options controls how inputs are checked before a calculation runs.
// In strict mode every violation is CRITICAL; otherwise violations are
// WARNINGs and the input is sanitized the way the web forms do it.
type Options struct {
	Strict bool
}

// Result is the outcome of a successful calculation.
type Result interface {
	Formatted() map[string]string
}

// CalculationHandler defines the contract for all calculation implementations.
// Validate reports problems with the properties; Apply computes the result.
// Apply is only called when Validate produced no CRITICAL message.
type CalculationHandler interface {
	Validate(opts Options, calc *model.Calculation) []model.CalculationMessage
	Apply(opts Options, calc *model.Calculation) (Result, []model.CalculationMessage)
}

func decodeProps(calc *model.Calculation, v interface{}) error {
	if len(calc.CalculationProperties) == 0 {
		return nil
	}
	return json.Unmarshal(calc.CalculationProperties, v)
}

func invalidProps(err error) []model.CalculationMessage {
	return []model.CalculationMessage{{
		Level:   model.LevelCritical,
		Code:    "INVALID_PROPERTIES",
		Message: "Calculation properties could not be decoded: " + err.Error(),
	}}
}
