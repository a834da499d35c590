package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	Strict                 bool   `json:"strict"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage   `json:"messages"`
	Calculations []ProcessedCalculation `json:"calculations"`
}

type ProcessedCalculation struct {
	Calculation               Calculation       `json:"calculation"`
	Outcome                   string            `json:"outcome"`
	Result                    interface{}       `json:"result"`
	Formatted                 map[string]string `json:"formatted,omitempty"`
	CalculationMessageIndexes []int             `json:"calculation_message_indexes,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
