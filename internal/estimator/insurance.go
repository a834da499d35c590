package estimator

import "math"

// RecommendationKind identifies which canned recommendation applies to a claim.
type RecommendationKind string

const (
	RecommendExceedsLimit     RecommendationKind = "exceeds_limit"
	RecommendComparativeFault RecommendationKind = "comparative_fault"
	RecommendFileDirectly     RecommendationKind = "file_directly"
)

var recommendations = map[RecommendationKind]string{
	RecommendExceedsLimit:     "Your damages exceed the property owner's liability limit. Consider consulting an attorney to explore additional recovery options.",
	RecommendComparativeFault: "Your comparative fault may reduce your recovery. Document evidence showing the property owner's negligence.",
	RecommendFileDirectly:     "Your claim appears to be within the insurance limits. File a claim with the property owner's liability insurer.",
}

// Text returns the recommendation shown to the claimant.
func (k RecommendationKind) Text() string {
	return recommendations[k]
}

// InsuranceInput carries the figures collected by the insurance claim form.
type InsuranceInput struct {
	MedicalExpenses float64 `json:"medicalExpenses"`
	PropertyDamage  float64 `json:"propertyDamage"`
	LiabilityLimit  float64 `json:"liabilityLimit"`
	FaultPercent    float64 `json:"faultPercent"`
}

// InsuranceResult estimates what the property owner's liability policy pays.
// MedCoverage overlaps LiabilityPayout and is not part of TotalClaim.
type InsuranceResult struct {
	AdjustedDamages    float64            `json:"adjustedDamages"`
	LiabilityPayout    float64            `json:"liabilityPayout"`
	MedCoverage        float64            `json:"medCoverage"`
	TotalClaim         float64            `json:"totalClaim"`
	RecommendationKind RecommendationKind `json:"recommendationKind"`
	Recommendation     string             `json:"recommendation"`
}

// Formatted returns the monetary fields as display strings.
func (r InsuranceResult) Formatted() map[string]string {
	return map[string]string{
		"adjustedDamages": FormatUSD(r.AdjustedDamages),
		"liabilityPayout": FormatUSD(r.LiabilityPayout),
		"medCoverage":     FormatUSD(r.MedCoverage),
		"totalClaim":      FormatUSD(r.TotalClaim),
	}
}

// ComputeInsurancePayout estimates a liability insurance payout bounded by the
// policy limit. Medical coverage is capped separately at MedCoverageShare of
// the limit.
func ComputeInsurancePayout(in InsuranceInput) InsuranceResult {
	keep := 1 - in.FaultPercent/100
	adjusted := (in.MedicalExpenses + in.PropertyDamage) * keep
	payout := math.Min(adjusted, in.LiabilityLimit)
	medCoverage := math.Min(in.MedicalExpenses*keep, in.LiabilityLimit*MedCoverageShare)

	kind := RecommendFileDirectly
	switch {
	case adjusted > in.LiabilityLimit:
		kind = RecommendExceedsLimit
	case in.FaultPercent > ComparativeFaultThreshold:
		kind = RecommendComparativeFault
	}

	return InsuranceResult{
		AdjustedDamages:    adjusted,
		LiabilityPayout:    payout,
		MedCoverage:        medCoverage,
		TotalClaim:         payout,
		RecommendationKind: kind,
		Recommendation:     kind.Text(),
	}
}

// ComputeInsurancePayoutStrict validates the input before estimating.
func ComputeInsurancePayoutStrict(in InsuranceInput) (InsuranceResult, error) {
	if err := in.Validate(); err != nil {
		return InsuranceResult{}, err
	}
	return ComputeInsurancePayout(in), nil
}
