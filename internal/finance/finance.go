package finance

import (
	"solar-viability/internal/model"
)

// CostModel holds the fixed unit costs of the investment estimate.
// Scenario configs may override individual fields; zero-valued fields in
// an override keep the defaults.
type CostModel struct {
	PVCostPerKW       float64 `yaml:"pv_per_kw" json:"pv_per_kw"`
	BESSCostPerKWh    float64 `yaml:"bess_per_kwh" json:"bess_per_kwh"`
	InstallationFixed float64 `yaml:"installation_fixed" json:"installation_fixed"`
}

// DefaultCostModel returns the production unit costs (currency units).
func DefaultCostModel() CostModel {
	return CostModel{
		PVCostPerKW:       1000,
		BESSCostPerKWh:    300,
		InstallationFixed: 5000,
	}
}

// InitialInvestment prices the system: array, pack, and a fixed
// installation charge.
func (c CostModel) InitialInvestment(pv model.PVSystemSpec, bess model.BESSSpec) float64 {
	return pv.PeakPowerKW*c.PVCostPerKW + bess.CapacityKWh*c.BESSCostPerKWh + c.InstallationFixed
}

// AnnualBenefit values one year of avoided imports plus exports.
// Constant every year: no inflation, no degradation.
func AnnualBenefit(flow model.EnergyFlow, econ model.EconomicParameters) float64 {
	avoided := flow.FromPV + flow.FromBESS
	return avoided*econ.ElectricityPrice + flow.ToGrid*econ.FeedInTariff
}

// NPV discounts the constant annual benefit over the project lifespan and
// subtracts the initial investment. rate is a fraction (0.08 for 8%).
func NPV(investment, annualBenefit, rate float64, years int) float64 {
	npv := -investment
	discount := 1.0
	for year := 1; year <= years; year++ {
		discount *= 1 + rate
		npv += annualBenefit / discount
	}
	return npv
}

// Analyze builds the full financial result for a simulated system.
//
// Degenerate cases are carried as explicit markers instead of non-finite
// floats: a non-positive annual benefit makes the payback unrecoverable
// (PaybackYears stays zero) and the IRR search non-convergent, while NPV
// and LCOE still compute.
func (c CostModel) Analyze(pv model.PVSystemSpec, bess model.BESSSpec, flow model.EnergyFlow, econ model.EconomicParameters) model.FinancialAnalysisResult {
	investment := c.InitialInvestment(pv, bess)
	benefit := AnnualBenefit(flow, econ)
	years := econ.LifespanYears

	res := model.FinancialAnalysisResult{
		InitialInvestment: investment,
		AnnualSavings:     benefit,
		NPV:               NPV(investment, benefit, econ.DiscountRatePct/100, years),
	}

	if benefit > 0 {
		res.PaybackYears = investment / benefit
		res.PaybackRecoverable = true
	}

	res.IRR, res.IRRConverged = IRR(investment, benefit, years, DefaultIRRTolerance, DefaultIRRMaxIterations)

	if delivered := (flow.FromPV + flow.FromBESS) * float64(years); delivered > 0 {
		res.LCOE = investment / delivered
	}

	return res
}
