package sim

import (
	"math"

	"solar-viability/internal/model"
)

// AllocationModel holds the fixed ratios of the annual energy partition.
// This allocator is deliberately independent of the hourly SOC trace; the
// two models are separate estimates and are not reconciled against each
// other.
type AllocationModel struct {
	// DirectUseShare is the fraction of annual PV assumed consumable
	// directly, capped by annual load.
	DirectUseShare float64

	// SurplusToStorageShare is the fraction of the remaining surplus
	// routed into the battery; the rest exports.
	SurplusToStorageShare float64
}

// DefaultAllocationModel returns the production ratios.
func DefaultAllocationModel() AllocationModel {
	return AllocationModel{
		DirectUseShare:        0.4,
		SurplusToStorageShare: 0.7,
	}
}

// Allocate partitions annual PV energy between direct consumption,
// storage, and the grid, and derives the self-consumption and
// grid-independence rates.
func (m AllocationModel) Allocate(annualPVKWh float64, load model.LoadProfile, bess model.BESSSpec) model.SystemInteractionResult {
	annualLoad := load.DailyConsumptionKWh * 365

	direct := math.Min(annualPVKWh*m.DirectUseShare, annualLoad)
	toBESS := math.Max(0, annualPVKWh-direct) * m.SurplusToStorageShare
	toGrid := math.Max(0, annualPVKWh-direct-toBESS)
	fromBESS := math.Min(toBESS*bess.EfficiencyPct/100, annualLoad-direct)
	fromGrid := math.Max(0, annualLoad-direct-fromBESS)

	var selfConsumption, gridIndependence float64
	if annualPVKWh > 0 {
		selfConsumption = (direct + fromBESS) / annualPVKWh * 100
	}
	if served := direct + fromBESS + fromGrid; served > 0 {
		gridIndependence = (direct + fromBESS) / served * 100
	}

	return model.SystemInteractionResult{
		SelfConsumptionRatePct: selfConsumption,
		GridIndependencePct:    gridIndependence,
		EnergyFlow: model.EnergyFlow{
			FromPV:   direct,
			FromBESS: fromBESS,
			FromGrid: fromGrid,
			ToGrid:   toGrid,
			ToBESS:   toBESS,
		},
	}
}
