package models

import "solar-viability/internal/model"

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	// ScenarioFile optionally names a preset under the scenario directory
	// (bare name, no extension). Scenario fields override the preset.
	ScenarioFile string                  `json:"scenario_file,omitempty"`
	Scenario     model.SimulationRequest `json:"scenario"`
	Costs        CostOverrides           `json:"costs,omitempty"`
	Options      SimulateOptions         `json:"options,omitempty"`
}

// CostOverrides optionally replaces the fixed unit costs; zero fields keep
// the defaults
type CostOverrides struct {
	PVPerKW           float64 `json:"pv_per_kw,omitempty"`
	BESSPerKWh        float64 `json:"bess_per_kwh,omitempty"`
	InstallationFixed float64 `json:"installation_fixed,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	IncludeTrace bool `json:"include_trace,omitempty"` // default: false
}

// CompareRequest represents a request to compare scenario variations
type CompareRequest struct {
	Base       model.SimulationRequest `json:"base" binding:"required"`
	Variations []ScenarioVariation     `json:"variations" binding:"required"`
}

// ScenarioVariation defines a variation to test; zero-valued fields fall
// back to the base scenario
type ScenarioVariation struct {
	Name     string                  `json:"name" binding:"required"`
	Scenario model.SimulationRequest `json:"scenario"`
}

// RankRequest represents a request to rank battery capacity options
type RankRequest struct {
	ScenarioFile   string  `form:"scenario_file" binding:"required"`
	CapacityMinKWh float64 `form:"capacity_min_kwh,omitempty"` // default: 5
	CapacityMaxKWh float64 `form:"capacity_max_kwh,omitempty"` // default: 50
	CapacityStep   float64 `form:"capacity_step_kwh,omitempty"` // default: 5
	Limit          int     `form:"limit,omitempty"`             // default: 10
}
