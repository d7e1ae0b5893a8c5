package model

// SimulationRequest is the canonical "inputs to the engine" object.
// The HTTP layer and the CLI both build one of these, run it through
// Validate, and hand it to the simulation engine unchanged.
type SimulationRequest struct {
	Site      Location           `json:"site"`
	PV        PVSystemSpec       `json:"pv"`
	BESS      BESSSpec           `json:"bess"`
	Load      LoadProfile        `json:"load"`
	Economics EconomicParameters `json:"economics"`
}

// Location is a site position in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PVSystemSpec defines the photovoltaic array.
// Units:
// - PeakPowerKW: kWp
// - TiltDeg: degrees from horizontal, 0..90
// - AzimuthDeg: degrees
// - SystemLossPct: %
// - PerformanceRatio: fraction (0,1]
type PVSystemSpec struct {
	PeakPowerKW      float64 `json:"peak_power_kw"`
	TiltDeg          float64 `json:"tilt_deg"`
	AzimuthDeg       float64 `json:"azimuth_deg"`
	SystemLossPct    float64 `json:"system_loss_pct"`
	PerformanceRatio float64 `json:"performance_ratio"`
}

// BESSSpec defines the battery energy storage system.
// Units:
// - CapacityKWh: kWh
// - MaxChargeKW / MaxDischargeKW: kW
// - EfficiencyPct: % (0,100], applied once on charge and once on discharge
// - DepthOfDischargePct: % (0,100], the floor below which SOC may not fall
// - InitialSOCPct: % 0..100
type BESSSpec struct {
	CapacityKWh         float64 `json:"capacity_kwh"`
	MaxChargeKW         float64 `json:"max_charge_kw"`
	MaxDischargeKW      float64 `json:"max_discharge_kw"`
	EfficiencyPct       float64 `json:"efficiency_pct"`
	DepthOfDischargePct float64 `json:"depth_of_discharge_pct"`
	InitialSOCPct       float64 `json:"initial_soc_pct"`
}

// LoadProfile describes site consumption.
// Hourly must hold exactly 24 non-negative kWh values, one per hour of the
// representative day.
type LoadProfile struct {
	DailyConsumptionKWh float64   `json:"daily_consumption_kwh"`
	PeakDemandKW        float64   `json:"peak_demand_kw"`
	Hourly              []float64 `json:"hourly"`
}

// EconomicParameters drives the financial analysis.
// Units:
// - ElectricityPrice / FeedInTariff: currency per kWh
// - DiscountRatePct: % per year, >= 0
// - LifespanYears: project lifespan in years, > 0
type EconomicParameters struct {
	ElectricityPrice float64 `json:"electricity_price"`
	FeedInTariff     float64 `json:"feed_in_tariff"`
	DiscountRatePct  float64 `json:"discount_rate_pct"`
	LifespanYears    int     `json:"lifespan_years"`
}

// HoursPerDay is the fixed resolution of the representative-day simulation.
const HoursPerDay = 24

// MonthsPerYear is the resolution of the monthly generation breakdown.
const MonthsPerYear = 12

// UniformHourly spreads a daily consumption evenly across 24 hours.
// Used by config loading when a scenario omits an explicit hourly profile.
func UniformHourly(dailyConsumptionKWh float64) []float64 {
	out := make([]float64, HoursPerDay)
	perHour := dailyConsumptionKWh / HoursPerDay
	for i := range out {
		out[i] = perHour
	}
	return out
}
