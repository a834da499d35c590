package estimator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInsurancePayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          InsuranceInput
		payout      float64
		medCoverage float64
		kind        RecommendationKind
	}{
		{
			name:   "within limits files directly",
			in:     InsuranceInput{MedicalExpenses: 25000, PropertyDamage: 500, LiabilityLimit: 100000},
			payout: 25500, medCoverage: 25000,
			kind: RecommendFileDirectly,
		},
		{
			name:   "damages over limit",
			in:     InsuranceInput{MedicalExpenses: 200000, LiabilityLimit: 100000},
			payout: 100000, medCoverage: 80000,
			kind: RecommendExceedsLimit,
		},
		{
			name:   "over limit wins over high fault",
			in:     InsuranceInput{MedicalExpenses: 500000, FaultPercent: 40, LiabilityLimit: 50000},
			payout: 50000, medCoverage: 40000,
			kind: RecommendExceedsLimit,
		},
		{
			name:   "high fault within limits",
			in:     InsuranceInput{MedicalExpenses: 10000, PropertyDamage: 2000, FaultPercent: 25, LiabilityLimit: 100000},
			payout: 9000, medCoverage: 7500,
			kind: RecommendComparativeFault,
		},
		{
			name:   "fault at threshold is not comparative",
			in:     InsuranceInput{MedicalExpenses: 10000, FaultPercent: 20, LiabilityLimit: 100000},
			payout: 8000, medCoverage: 8000,
			kind: RecommendFileDirectly,
		},
		{
			name:   "damages equal to limit stay within",
			in:     InsuranceInput{MedicalExpenses: 100000, LiabilityLimit: 100000},
			payout: 100000, medCoverage: 80000,
			kind: RecommendFileDirectly,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeInsurancePayout(tt.in)
			assert.InDelta(t, tt.payout, got.LiabilityPayout, 0.001)
			assert.InDelta(t, tt.medCoverage, got.MedCoverage, 0.001)
			assert.Equal(t, got.LiabilityPayout, got.TotalClaim)
			assert.Equal(t, tt.kind, got.RecommendationKind)
			assert.Equal(t, tt.kind.Text(), got.Recommendation)
		})
	}
}

func TestInsurancePayoutNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	for _, limit := range LiabilityLimitOptions() {
		for _, medical := range []float64{0, 1000, 49999, 250000, 5e6, 1e9} {
			for _, fault := range []float64{0, 10, 20, 21, 75, 100} {
				got := ComputeInsurancePayout(InsuranceInput{
					MedicalExpenses: medical, PropertyDamage: 1500,
					FaultPercent: fault, LiabilityLimit: limit,
				})
				require.LessOrEqual(t, got.LiabilityPayout, limit)
				require.LessOrEqual(t, got.MedCoverage, limit*MedCoverageShare)
				if got.AdjustedDamages > limit {
					require.Equal(t, RecommendExceedsLimit, got.RecommendationKind)
				}
			}
		}
	}
}

func TestComputeInsurancePayoutStrict(t *testing.T) {
	t.Parallel()

	_, err := ComputeInsurancePayoutStrict(InsuranceInput{MedicalExpenses: 1000, LiabilityLimit: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLiabilityLimit))

	_, err = ComputeInsurancePayoutStrict(InsuranceInput{PropertyDamage: -1, LiabilityLimit: 50000})
	assert.True(t, errors.Is(err, ErrNegativeAmount))

	_, err = ComputeInsurancePayoutStrict(InsuranceInput{FaultPercent: 100.5, LiabilityLimit: 50000})
	assert.True(t, errors.Is(err, ErrFaultOutOfRange))

	got, err := ComputeInsurancePayoutStrict(InsuranceInput{MedicalExpenses: 25000, PropertyDamage: 500, LiabilityLimit: 100000})
	require.NoError(t, err)
	assert.Equal(t, 25500.0, got.TotalClaim)
}

func TestInsuranceSanitize(t *testing.T) {
	t.Parallel()

	got := InsuranceInput{MedicalExpenses: -1, PropertyDamage: 300, FaultPercent: 120}.Sanitize()
	assert.Equal(t, InsuranceInput{MedicalExpenses: 0, PropertyDamage: 300, FaultPercent: 100, LiabilityLimit: DefaultLiabilityLimit}, got)
}

func TestInsuranceFormatted(t *testing.T) {
	t.Parallel()

	f := ComputeInsurancePayout(InsuranceInput{MedicalExpenses: 200000, LiabilityLimit: 100000}).Formatted()
	assert.Equal(t, "$100,000", f["liabilityPayout"])
	assert.Equal(t, "$80,000", f["medCoverage"])
	assert.Equal(t, "$200,000", f["adjustedDamages"])
}
