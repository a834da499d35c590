package calculations

import (
	"slipfall-engine/internal/estimator"
	"slipfall-engine/internal/model"
)

// fallbacks describe what lenient mode does with each kind of violation.
var fallbacks = map[string]string{
	estimator.CodeNegativeAmount:        "treated as 0",
	estimator.CodeFaultOutOfRange:       "clamped to the 0-100 range",
	estimator.CodeUnknownSeverity:       "using " + string(estimator.DefaultSeverity),
	estimator.CodeUnknownLocation:       "using a neutral location factor of 1.0",
	estimator.CodeInvalidLiabilityLimit: "using " + estimator.FormatUSD(estimator.DefaultLiabilityLimit),
}

func violationMessages(vs []estimator.Violation, opts Options) []model.CalculationMessage {
	if len(vs) == 0 {
		return nil
	}
	msgs := make([]model.CalculationMessage, 0, len(vs))
	for _, v := range vs {
		msg := model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    v.Code,
			Field:   v.Field,
			Message: v.Error(),
		}
		if !opts.Strict {
			msg.Level = model.LevelWarning
			if fb, ok := fallbacks[v.Code]; ok {
				msg.Message += "; " + fb
			}
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
