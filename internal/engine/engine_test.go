package engine

import (
	"testing"

	json "github.com/goccy/go-json"

	"slipfall-engine/internal/calculations"
	"slipfall-engine/internal/estimator"
	"slipfall-engine/internal/model"
)

func settlementRequest(props string) *model.CalculationRequest {
	return &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			Calculations: []model.Calculation{
				{
					CalculationID:             "c1111111-1111-1111-1111-111111111111",
					CalculationDefinitionName: calculations.SlipFallSettlement,
					CalculationProperties:     json.RawMessage(props),
				},
			},
		},
	}
}

func TestSlipFallSettlement(t *testing.T) {
	req := settlementRequest(`{
		"medical_expenses": "15,000",
		"lost_wages": 0,
		"fault_percent": 20,
		"severity": "moderate",
		"has_attorney": true,
		"location": "retail"
	}`)

	resp := Process(req, calculations.Options{})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}

	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation id")
	}

	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	if len(resp.CalculationResult.Calculations) != 1 {
		t.Fatalf("expected 1 calculation, got %d", len(resp.CalculationResult.Calculations))
	}

	pc := resp.CalculationResult.Calculations[0]
	res, ok := pc.Result.(estimator.SettlementResult)
	if !ok {
		t.Fatalf("expected settlement result, got %T", pc.Result)
	}

	if res.Subtotal != 75000 || res.FaultReduction != 15000 || res.TotalBeforeFees != 60000 {
		t.Fatalf("unexpected breakdown: %+v", res)
	}
	if res.AttorneyFees != 19800 || res.NetSettlement != 40200 {
		t.Fatalf("expected fees 19800 and net 40200, got %v and %v", res.AttorneyFees, res.NetSettlement)
	}

	if pc.Formatted["netSettlement"] != "$40,200" {
		t.Fatalf("expected formatted net $40,200, got %s", pc.Formatted["netSettlement"])
	}
}

func TestSlipFallSettlementDefaults(t *testing.T) {
	resp := Process(settlementRequest(`{}`), calculations.Options{})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	// 15,000 medical, moderate, retail, attorney on
	res := resp.CalculationResult.Calculations[0].Result.(estimator.SettlementResult)
	if res.MedicalExpenses != 15000 || res.NetSettlement != 50250 {
		t.Fatalf("expected form defaults to give net 50250 on 15000 medical, got %+v", res)
	}
}

func TestLenientModeWarnsAndSanitizes(t *testing.T) {
	req := settlementRequest(`{
		"medical_expenses": 15000,
		"fault_percent": 150,
		"severity": "extreme",
		"location": "moon"
	}`)

	resp := Process(req, calculations.Options{Strict: false})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.Strict {
		t.Fatal("expected lenient mode in metadata")
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %+v", len(msgs), msgs)
	}
	wantCodes := []string{estimator.CodeFaultOutOfRange, estimator.CodeUnknownSeverity, estimator.CodeUnknownLocation}
	for i, m := range msgs {
		if m.Level != model.LevelWarning {
			t.Fatalf("message %d: expected WARNING, got %s", i, m.Level)
		}
		if m.Code != wantCodes[i] {
			t.Fatalf("message %d: expected %s, got %s", i, wantCodes[i], m.Code)
		}
		if m.ID != i {
			t.Fatalf("message %d: expected id %d, got %d", i, i, m.ID)
		}
	}

	// fault clamped to 100 wipes out the award
	res := resp.CalculationResult.Calculations[0].Result.(estimator.SettlementResult)
	if res.NetSettlement != 0 {
		t.Fatalf("expected net 0 at 100%% fault, got %v", res.NetSettlement)
	}
	if res.PainSufferingMultiplier != 4 || res.LocationFactor != 1 {
		t.Fatalf("expected moderate multiplier and neutral factor, got %v and %v", res.PainSufferingMultiplier, res.LocationFactor)
	}
}

func TestStrictModeRejects(t *testing.T) {
	req := settlementRequest(`{"medical_expenses": -5, "severity": "moderate", "location": "retail"}`)
	strict := true
	req.CalculationInstructions.Strict = &strict

	resp := Process(req, calculations.Options{Strict: false})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if !resp.CalculationMetadata.Strict {
		t.Fatal("request strict flag should override the default")
	}

	pc := resp.CalculationResult.Calculations[0]
	if pc.Outcome != model.OutcomeFailure {
		t.Fatalf("expected calculation FAILURE, got %s", pc.Outcome)
	}
	if pc.Result != nil {
		t.Fatalf("expected no result, got %+v", pc.Result)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != estimator.CodeNegativeAmount || msgs[0].Level != model.LevelCritical {
		t.Fatalf("expected one CRITICAL NEGATIVE_AMOUNT, got %+v", msgs)
	}
	if msgs[0].Field != "medicalExpenses" {
		t.Fatalf("expected field medicalExpenses, got %s", msgs[0].Field)
	}
}

func TestBatchContinuesAfterFailure(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			Calculations: []model.Calculation{
				{
					CalculationID:             "a",
					CalculationDefinitionName: "wrongful_termination",
				},
				{
					CalculationID:             "b",
					CalculationDefinitionName: calculations.InsurancePayout,
					CalculationProperties: json.RawMessage(`{
						"medical_expenses": 200000,
						"property_damage": 0,
						"fault_percent": 0,
						"liability_limit": "100,000"
					}`),
				},
				{
					CalculationID:             "c",
					CalculationDefinitionName: calculations.InjuryEstimate,
					CalculationProperties:     json.RawMessage(`{"injury": "brokenWrist"}`),
				},
				{
					CalculationID:             "d",
					CalculationDefinitionName: calculations.InjuryEstimate,
					CalculationProperties:     json.RawMessage(`{"injury": "brokenToe"}`),
				},
			},
		},
	}

	resp := Process(req, calculations.Options{})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	calcs := resp.CalculationResult.Calculations
	if len(calcs) != 4 {
		t.Fatalf("expected 4 processed calculations, got %d", len(calcs))
	}

	wantOutcomes := []string{model.OutcomeFailure, model.OutcomeSuccess, model.OutcomeSuccess, model.OutcomeFailure}
	for i, pc := range calcs {
		if pc.Outcome != wantOutcomes[i] {
			t.Fatalf("calculation %s: expected %s, got %s", pc.Calculation.CalculationID, wantOutcomes[i], pc.Outcome)
		}
	}

	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_CALCULATION" {
		t.Fatalf("expected UNKNOWN_CALCULATION, got %s", resp.CalculationResult.Messages[0].Code)
	}

	ins := calcs[1].Result.(estimator.InsuranceResult)
	if ins.LiabilityPayout != 100000 || ins.RecommendationKind != estimator.RecommendExceedsLimit {
		t.Fatalf("expected capped payout with exceeds-limit recommendation, got %+v", ins)
	}

	inj := calcs[2].Result.(estimator.InjuryEstimate)
	if inj.Average != 45000 || inj.WithAttorney != 30150 {
		t.Fatalf("unexpected injury estimate: %+v", inj)
	}

	last := resp.CalculationResult.Messages[len(resp.CalculationResult.Messages)-1]
	if last.Code != estimator.CodeUnknownInjury || calcs[3].CalculationMessageIndexes[0] != last.ID {
		t.Fatalf("expected UNKNOWN_INJURY linked to the last calculation, got %+v", last)
	}
}

func TestInvalidProperties(t *testing.T) {
	resp := Process(settlementRequest(`{"fault_percent": "lots"}`), calculations.Options{})

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != "INVALID_PROPERTIES" {
		t.Fatalf("expected INVALID_PROPERTIES, got %s", resp.CalculationResult.Messages[0].Code)
	}
}

func TestResponseEncodes(t *testing.T) {
	resp := Process(settlementRequest(`{"medical_expenses": 15000}`), calculations.Options{})

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		CalculationResult struct {
			Messages     []model.CalculationMessage `json:"messages"`
			Calculations []struct {
				Result struct {
					NetSettlement float64 `json:"netSettlement"`
				} `json:"result"`
			} `json:"calculations"`
		} `json:"calculation_result"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.CalculationResult.Messages == nil {
		t.Fatal("messages should encode as an empty array, not null")
	}
	if decoded.CalculationResult.Calculations[0].Result.NetSettlement != 50250 {
		t.Fatalf("expected net 50250, got %v", decoded.CalculationResult.Calculations[0].Result.NetSettlement)
	}
}
