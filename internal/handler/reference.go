package handler

import (
	"slipfall-engine/internal/calculations"
	"slipfall-engine/internal/estimator"
)

type severityInfo struct {
	Key        estimator.Severity   `json:"key"`
	Label      string               `json:"label"`
	RangeLabel string               `json:"rangeLabel"`
	Multiplier estimator.Multiplier `json:"multiplier"`
}

type attorneyFees struct {
	PreSettlement float64 `json:"preSettlement"`
	PostTrial     float64 `json:"postTrial"`
}

type reference struct {
	Severities            []severityInfo                          `json:"severities"`
	LocationFactors       map[estimator.LocationKey]float64       `json:"locationFactors"`
	LocationOptions       []estimator.LocationOption              `json:"locationOptions"`
	AttorneyFees          attorneyFees                            `json:"attorneyFees"`
	InjuryCosts           map[estimator.InjuryKey]estimator.Range `json:"injuryCosts"`
	Statistics            estimator.Statistics                    `json:"statistics"`
	LiabilityLimitOptions []float64                               `json:"liabilityLimitOptions"`
	Calculations          []string                                `json:"calculations"`
}

func newReference() reference {
	sevs := make([]severityInfo, 0, len(estimator.Severities))
	for _, s := range estimator.Severities {
		m, _ := estimator.MultiplierFor(s)
		sevs = append(sevs, severityInfo{Key: s, Label: s.Label(), RangeLabel: s.RangeLabel(), Multiplier: m})
	}

	return reference{
		Severities:      sevs,
		LocationFactors: estimator.LocationFactors(),
		LocationOptions: estimator.LocationOptions(),
		AttorneyFees: attorneyFees{
			PreSettlement: estimator.PreSettlementFeeRate,
			PostTrial:     estimator.PostTrialFeeRate,
		},
		InjuryCosts:           estimator.InjuryCosts(),
		Statistics:            estimator.Stats(),
		LiabilityLimitOptions: estimator.LiabilityLimitOptions(),
		Calculations:          calculations.Names(),
	}
}
