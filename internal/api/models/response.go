package models

import "solar-viability/internal/model"

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status string                  `json:"status"`
	Result *model.SimulationResult `json:"result"`
	Trace  []TraceRow              `json:"trace,omitempty"`
}

// TraceRow represents one hour of the battery simulation trace
type TraceRow struct {
	Hour          int     `json:"hour"`
	PVKWh         float64 `json:"pv_kwh"`
	LoadKWh       float64 `json:"load_kwh"`
	NetKWh        float64 `json:"net_kwh"`
	Mode          string  `json:"mode"` // "CHARGING", "DISCHARGING", "IDLE"
	ChargedKWh    float64 `json:"charged_kwh"`
	DischargedKWh float64 `json:"discharged_kwh"`
	SOCStart      float64 `json:"soc_start"`
	SOCEnd        float64 `json:"soc_end"`
}

// CompareResponse represents the response from a scenario comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name        string                        `json:"name"`
	Financial   model.FinancialAnalysisResult `json:"financial"`
	Interaction model.SystemInteractionResult `json:"system_interaction"`
}

// RankResponse represents the response from a capacity ranking
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked capacity option
type Ranking struct {
	Rank                   int     `json:"rank"`
	CapacityKWh            float64 `json:"capacity_kwh"`
	NPV                    float64 `json:"npv"`
	PaybackYears           float64 `json:"payback_years"`
	PaybackRecoverable     bool    `json:"payback_recoverable"`
	IRR                    float64 `json:"irr"`
	IRRConverged           bool    `json:"irr_converged"`
	SelfConsumptionRatePct float64 `json:"self_consumption_rate_pct"`
	GridIndependencePct    float64 `json:"grid_independence_pct"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	File  string        `json:"file"`
	Specs ScenarioSpecs `json:"specs"`
}

// ScenarioSpecs contains headline scenario sizing
type ScenarioSpecs struct {
	PeakPowerKW float64 `json:"peak_power_kw"`
	CapacityKWh float64 `json:"capacity_kwh"`
}

// SiteInfo represents information about a site preset
type SiteInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
