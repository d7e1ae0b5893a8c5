package analysis

import (
	"fmt"

	"solar-viability/internal/model"
	"solar-viability/internal/sim"
)

// SizingPotential is a per-candidate summary of how one battery capacity
// performs for a fixed site, array, load, and tariff. It carries the
// indicators a buyer compares when sizing storage.
type SizingPotential struct {
	CapacityKWh float64

	NPV                float64
	PaybackYears       float64
	PaybackRecoverable bool
	IRR                float64
	IRRConverged       bool

	SelfConsumptionRatePct float64
	GridIndependencePct    float64
	AnnualSavings          float64
	InitialInvestment      float64
}

// ComputePotential runs the engine for one capacity candidate. The
// candidate keeps the request's charge/discharge limits, efficiency, and
// DoD; only the pack size varies.
func ComputePotential(e *sim.Engine, req model.SimulationRequest, capacityKWh float64) (SizingPotential, error) {
	req.BESS.CapacityKWh = capacityKWh

	run, err := e.Run(req)
	if err != nil {
		return SizingPotential{}, fmt.Errorf("capacity %.1f kWh: %w", capacityKWh, err)
	}

	r := run.Result
	return SizingPotential{
		CapacityKWh:            capacityKWh,
		NPV:                    r.Financial.NPV,
		PaybackYears:           r.Financial.PaybackYears,
		PaybackRecoverable:     r.Financial.PaybackRecoverable,
		IRR:                    r.Financial.IRR,
		IRRConverged:           r.Financial.IRRConverged,
		SelfConsumptionRatePct: r.SystemInteraction.SelfConsumptionRatePct,
		GridIndependencePct:    r.SystemInteraction.GridIndependencePct,
		AnnualSavings:          r.Financial.AnnualSavings,
		InitialInvestment:      r.Financial.InitialInvestment,
	}, nil
}
