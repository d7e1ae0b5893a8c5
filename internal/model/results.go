package model

import "time"

// SimulationResult is the aggregate output of one engine invocation.
// Everything in here is computed fresh per run; apart from the metadata
// timestamp, identical requests produce identical results.
type SimulationResult struct {
	PVGeneration      PVGenerationResult      `json:"pv_generation"`
	BESSPerformance   BESSPerformanceResult   `json:"bess_performance"`
	SystemInteraction SystemInteractionResult `json:"system_interaction"`
	Financial         FinancialAnalysisResult `json:"financial"`
	Metadata          Metadata                `json:"metadata"`
}

// PVGenerationResult describes estimated array output.
type PVGenerationResult struct {
	AnnualEnergyKWh   float64   `json:"annual_energy_kwh"`
	SpecificYield     float64   `json:"specific_yield_kwh_per_kwp"`
	CapacityFactorPct float64   `json:"capacity_factor_pct"`
	MonthlyGeneration []float64 `json:"monthly_generation_kwh"` // 12 values
}

// BESSPerformanceResult describes simulated battery behavior over the
// representative day, plus annualized throughput aggregates.
type BESSPerformanceResult struct {
	AnnualThroughputKWh float64   `json:"annual_throughput_kwh"`
	CyclesPerYear       float64   `json:"cycles_per_year"`
	EfficiencyPct       float64   `json:"efficiency_pct"`
	StateOfCharge       []float64 `json:"state_of_charge_profile"` // 24 end-of-hour SOC values, percent
}

// SystemInteractionResult describes the annual energy partition between
// direct use, storage, and the grid.
type SystemInteractionResult struct {
	SelfConsumptionRatePct float64    `json:"self_consumption_rate_pct"`
	GridIndependencePct    float64    `json:"grid_independence_pct"`
	EnergyFlow             EnergyFlow `json:"energy_flow"`
}

// EnergyFlow is the annual energy partition in kWh.
type EnergyFlow struct {
	FromPV   float64 `json:"from_pv_kwh"`   // PV consumed directly on site
	FromBESS float64 `json:"from_bess_kwh"` // delivered from storage after losses
	FromGrid float64 `json:"from_grid_kwh"` // imported
	ToGrid   float64 `json:"to_grid_kwh"`   // exported
	ToBESS   float64 `json:"to_bess_kwh"`   // surplus routed to storage
}

// FinancialAnalysisResult holds the viability indicators.
//
// PaybackRecoverable is false when the annual benefit is non-positive; the
// investment is then never recovered and PaybackYears is meaningless (kept
// at zero rather than a non-finite float). IRRConverged is false when the
// bisection search did not reach tolerance inside its [0,1] domain; IRR
// then holds the saturated boundary estimate and should not be presented
// as an exact rate.
type FinancialAnalysisResult struct {
	InitialInvestment  float64 `json:"initial_investment"`
	AnnualSavings      float64 `json:"annual_savings"`
	PaybackYears       float64 `json:"payback_years"`
	PaybackRecoverable bool    `json:"payback_recoverable"`
	NPV                float64 `json:"npv"`
	IRR                float64 `json:"irr"`
	IRRConverged       bool    `json:"irr_converged"`
	LCOE               float64 `json:"lcoe"`
}

// Metadata identifies how and when a result was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Method      string    `json:"calculation_method"`
	Assumptions []string  `json:"assumptions"`
}
