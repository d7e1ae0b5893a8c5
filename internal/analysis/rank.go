package analysis

import (
	"sort"

	"solar-viability/internal/model"
	"solar-viability/internal/sim"
)

type RankedSizing struct {
	SizingPotential
}

// RankByNPV sweeps the candidate capacities and sorts descending by NPV.
// Candidates that fail validation are skipped rather than failing the
// whole sweep; an empty result means no candidate was viable to evaluate.
func RankByNPV(e *sim.Engine, req model.SimulationRequest, capacitiesKWh []float64) []RankedSizing {
	out := make([]RankedSizing, 0, len(capacitiesKWh))
	for _, capKWh := range capacitiesKWh {
		p, err := ComputePotential(e, req, capKWh)
		if err != nil {
			continue
		}
		out = append(out, RankedSizing{SizingPotential: p})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NPV > out[j].NPV
	})
	return out
}
