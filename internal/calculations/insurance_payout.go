package calculations

import (
	"slipfall-engine/internal/estimator"
	"slipfall-engine/internal/model"
)

type insuranceProps struct {
	MedicalExpenses model.Amount `json:"medical_expenses"`
	PropertyDamage  model.Amount `json:"property_damage"`
	LiabilityLimit  model.Amount `json:"liability_limit"`
	FaultPercent    float64      `json:"fault_percent"`
}

func (p insuranceProps) input() estimator.InsuranceInput {
	return estimator.InsuranceInput{
		MedicalExpenses: p.MedicalExpenses.Or(0),
		PropertyDamage:  p.PropertyDamage.Or(0),
		LiabilityLimit:  p.LiabilityLimit.Or(estimator.DefaultLiabilityLimit),
		FaultPercent:    p.FaultPercent,
	}
}

type InsurancePayoutHandler struct{}

func (h *InsurancePayoutHandler) Validate(opts Options, calc *model.Calculation) []model.CalculationMessage {
	var props insuranceProps
	if err := decodeProps(calc, &props); err != nil {
		return invalidProps(err)
	}
	return violationMessages(props.input().Violations(), opts)
}

func (h *InsurancePayoutHandler) Apply(opts Options, calc *model.Calculation) (Result, []model.CalculationMessage) {
	var props insuranceProps
	if err := decodeProps(calc, &props); err != nil {
		return nil, invalidProps(err)
	}

	in := props.input()
	if !opts.Strict {
		in = in.Sanitize()
	}
	return estimator.ComputeInsurancePayout(in), nil
}
