package calculations

const (
	SlipFallSettlement = "slip_fall_settlement"
	InsurancePayout    = "insurance_payout"
	InjuryEstimate     = "injury_estimate"
)

var registry = map[string]CalculationHandler{
	SlipFallSettlement: &SlipFallSettlementHandler{},
	InsurancePayout:    &InsurancePayoutHandler{},
	InjuryEstimate:     &InjuryEstimateHandler{},
}

func Get(name string) (CalculationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}

// Names returns the registered calculation definition names.
func Names() []string {
	return []string{SlipFallSettlement, InsurancePayout, InjuryEstimate}
}
