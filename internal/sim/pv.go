package sim

import "solar-viability/internal/model"

// PVModel holds the fixed curves and constants of the simplified
// specific-yield generation estimate. The defaults reproduce the
// production tables; tests and scenario configs may substitute their own
// curves without touching the estimator logic.
type PVModel struct {
	// BaseYield is the reference specific yield in kWh/kWp/year before
	// the location factor and performance ratio are applied.
	BaseYield float64

	// LocationFactor scales the base yield for the site. Held at 1.0
	// until real irradiance modeling replaces this estimator.
	LocationFactor float64

	// MonthlyShape is the 12-element seasonal factor table. The curve is
	// Southern-hemisphere biased (summer peak in December/January terms
	// of the original deployment's calendar).
	MonthlyShape [model.MonthsPerYear]float64

	// HourlyShape is the 24-element generation shape for the
	// representative day: zero overnight, ramp from 05:00, mid-day peak,
	// decay to zero by 17:00.
	HourlyShape [model.HoursPerDay]float64
}

// DefaultPVModel returns the production curves.
func DefaultPVModel() PVModel {
	return PVModel{
		BaseYield:      1200,
		LocationFactor: 1.0,
		MonthlyShape: [model.MonthsPerYear]float64{
			0.8, 0.85, 0.95, 1.0, 1.1, 1.2, 1.25, 1.2, 1.1, 0.95, 0.85, 0.8,
		},
		HourlyShape: [model.HoursPerDay]float64{
			0, 0, 0, 0, 0, 0.1, 0.3, 0.6, 0.9, 1.0, 1.0, 0.9,
			0.8, 0.7, 0.5, 0.3, 0.1, 0, 0, 0, 0, 0, 0, 0,
		},
	}
}

const hoursPerYear = 8760

// EstimateGeneration converts peak power and performance ratio into annual
// and monthly energy using the fixed specific-yield model.
func (m PVModel) EstimateGeneration(pv model.PVSystemSpec) model.PVGenerationResult {
	specificYield := m.BaseYield * m.LocationFactor * pv.PerformanceRatio
	annual := pv.PeakPowerKW * specificYield

	monthly := make([]float64, model.MonthsPerYear)
	for i, factor := range m.MonthlyShape {
		monthly[i] = annual / model.MonthsPerYear * factor
	}

	return model.PVGenerationResult{
		AnnualEnergyKWh:   annual,
		SpecificYield:     specificYield,
		CapacityFactorPct: annual / (pv.PeakPowerKW * hoursPerYear) * 100,
		MonthlyGeneration: monthly,
	}
}

// HourlyProfile spreads one representative day's energy
// (annualEnergy/365) across 24 hours using the generation shape. The same
// day stands in for the whole year; no day-to-day variability is modeled.
func (m PVModel) HourlyProfile(annualEnergyKWh float64) []float64 {
	daily := annualEnergyKWh / 365
	out := make([]float64, model.HoursPerDay)
	for h, factor := range m.HourlyShape {
		out[h] = daily * factor
	}
	return out
}
