package calculations

import (
	"slipfall-engine/internal/estimator"
	"slipfall-engine/internal/model"
)

type settlementProps struct {
	MedicalExpenses model.Amount `json:"medical_expenses"`
	LostWages       model.Amount `json:"lost_wages"`
	FaultPercent    float64      `json:"fault_percent"`
	Severity        string       `json:"severity"`
	HasAttorney     *bool        `json:"has_attorney"`
	Location        string       `json:"location"`
}

// input applies the settlement form's defaults: medical expenses of 15,000,
// moderate severity, a retail location and an attorney on the case.
func (p settlementProps) input() estimator.SettlementInput {
	in := estimator.SettlementInput{
		MedicalExpenses: p.MedicalExpenses.Or(estimator.DefaultMedicalExpenses),
		LostWages:       p.LostWages.Or(0),
		FaultPercent:    p.FaultPercent,
		Severity:        estimator.Severity(p.Severity),
		HasAttorney:     true,
		Location:        estimator.LocationKey(p.Location),
	}
	if in.Severity == "" {
		in.Severity = estimator.DefaultSeverity
	}
	if in.Location == "" {
		in.Location = estimator.DefaultLocation
	}
	if p.HasAttorney != nil {
		in.HasAttorney = *p.HasAttorney
	}
	return in
}

type SlipFallSettlementHandler struct{}

func (h *SlipFallSettlementHandler) Validate(opts Options, calc *model.Calculation) []model.CalculationMessage {
	var props settlementProps
	if err := decodeProps(calc, &props); err != nil {
		return invalidProps(err)
	}
	return violationMessages(props.input().Violations(), opts)
}

func (h *SlipFallSettlementHandler) Apply(opts Options, calc *model.Calculation) (Result, []model.CalculationMessage) {
	var props settlementProps
	if err := decodeProps(calc, &props); err != nil {
		return nil, invalidProps(err)
	}

	in := props.input()
	if !opts.Strict {
		in = in.Sanitize()
	}
	return estimator.ComputeSettlement(in), nil
}
