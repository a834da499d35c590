package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID                string                  `json:"tenant_id"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

type CalculationInstructions struct {
	// Strict overrides the server's default validation mode when set.
	Strict       *bool         `json:"strict,omitempty"`
	Calculations []Calculation `json:"calculations"`
}

type Calculation struct {
	CalculationID             string          `json:"calculation_id"`
	CalculationDefinitionName string          `json:"calculation_definition_name"`
	CalculationProperties     json.RawMessage `json:"calculation_properties"`
}
