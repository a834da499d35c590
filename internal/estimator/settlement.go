// Package estimator holds the settlement and insurance formulas and the
// read-only reference tables they use. Everything here is a pure function of
// its arguments and the package tables; nothing is written after init.
package estimator

import "math"

// SettlementInput carries the figures collected by the settlement form.
type SettlementInput struct {
	MedicalExpenses float64     `json:"medicalExpenses"`
	LostWages       float64     `json:"lostWages"`
	FaultPercent    float64     `json:"faultPercent"`
	Severity        Severity    `json:"severity"`
	HasAttorney     bool        `json:"hasAttorney"`
	Location        LocationKey `json:"location"`
}

// SettlementResult is the breakdown of a settlement estimate. Monetary
// fields are whole dollars.
type SettlementResult struct {
	MedicalExpenses         float64 `json:"medicalExpenses"`
	LostWages               float64 `json:"lostWages"`
	PainSufferingMultiplier float64 `json:"painSufferingMultiplier"`
	LocationFactor          float64 `json:"locationFactor"`
	PainSufferingAmount     float64 `json:"painSufferingAmount"`
	Subtotal                float64 `json:"subtotal"`
	// TotalBeforeFees is the total after the comparative fault reduction
	// and before attorney fees.
	TotalBeforeFees float64 `json:"totalBeforeFees"`
	FaultReduction  float64 `json:"faultReduction"`
	AttorneyFees    float64 `json:"attorneyFees"`
	NetSettlement   float64 `json:"netSettlement"`
	SettlementRange Range   `json:"settlementRange"`
}

// Formatted returns the monetary fields as display strings.
func (r SettlementResult) Formatted() map[string]string {
	return map[string]string{
		"medicalExpenses":     FormatUSD(r.MedicalExpenses),
		"lostWages":           FormatUSD(r.LostWages),
		"painSufferingAmount": FormatUSD(r.PainSufferingAmount),
		"subtotal":            FormatUSD(r.Subtotal),
		"totalBeforeFees":     FormatUSD(r.TotalBeforeFees),
		"faultReduction":      FormatUSD(r.FaultReduction),
		"attorneyFees":        FormatUSD(r.AttorneyFees),
		"netSettlement":       FormatUSD(r.NetSettlement),
		"rangeMin":            FormatUSD(r.SettlementRange.Min),
		"rangeMax":            FormatUSD(r.SettlementRange.Max),
	}
}

// ComputeSettlement estimates a premises liability settlement.
//
// Pain and suffering scales off medical expenses only. The fault percent is
// assumed to already be in [0,100]. An unknown location uses a factor of 1.0
// and an unknown severity uses DefaultSeverity; neither is an error here.
//
// The range bounds use the tier's min and max multipliers and, with an
// attorney, keep PostFeeShare of each bound instead of recomputing fees.
func ComputeSettlement(in SettlementInput) SettlementResult {
	m, ok := MultiplierFor(in.Severity)
	if !ok {
		m = multipliers[DefaultSeverity]
	}
	factor, _ := LocationFactor(in.Location)

	economic := in.MedicalExpenses + in.LostWages
	painSuffering := Round(in.MedicalExpenses * m.Avg * factor)
	subtotal := economic + painSuffering

	faultReduction := Round(subtotal * (in.FaultPercent / 100))
	afterFault := subtotal - faultReduction

	var fees float64
	if in.HasAttorney {
		fees = Round(afterFault * PreSettlementFeeRate)
	}

	keep := 1 - in.FaultPercent/100
	minTotal := (economic + in.MedicalExpenses*m.Min*factor) * keep
	maxTotal := (economic + in.MedicalExpenses*m.Max*factor) * keep
	if in.HasAttorney {
		minTotal *= PostFeeShare
		maxTotal *= PostFeeShare
	}

	return SettlementResult{
		MedicalExpenses:         in.MedicalExpenses,
		LostWages:               in.LostWages,
		PainSufferingMultiplier: m.Avg,
		LocationFactor:          factor,
		PainSufferingAmount:     painSuffering,
		Subtotal:                subtotal,
		TotalBeforeFees:         afterFault,
		FaultReduction:          faultReduction,
		AttorneyFees:            fees,
		NetSettlement:           afterFault - fees,
		SettlementRange: Range{
			Min: Round(minTotal),
			Max: Round(maxTotal),
		},
	}
}

// ComputeSettlementStrict validates the input before estimating. The error
// is a Violation for the first rejected field.
func ComputeSettlementStrict(in SettlementInput) (SettlementResult, error) {
	if err := in.Validate(); err != nil {
		return SettlementResult{}, err
	}
	return ComputeSettlement(in), nil
}

// Round rounds half up to the nearest whole unit.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
