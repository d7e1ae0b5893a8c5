package model

import (
	"fmt"
	"strings"
)

// ValidationError carries every violation found in a request, in check
// order, never just the first one. The orchestrator refuses to simulate
// when Validate returns one of these.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid simulation request: " + strings.Join(e.Violations, "; ")
}

// Validate checks structural and range constraints on the full request.
// It returns nil on acceptance, or a *ValidationError listing all failing
// checks.
func (r SimulationRequest) Validate() error {
	var v []string

	if r.PV.PeakPowerKW <= 0 {
		v = append(v, "pv peak power must be > 0 kWp")
	}
	if r.PV.TiltDeg < 0 || r.PV.TiltDeg > 90 {
		v = append(v, "pv tilt must be between 0 and 90 degrees")
	}
	if r.PV.PerformanceRatio <= 0 || r.PV.PerformanceRatio > 1 {
		v = append(v, "pv performance ratio must be in (0, 1]")
	}

	if r.Site.Latitude < -90 || r.Site.Latitude > 90 {
		v = append(v, "site latitude must be between -90 and 90 degrees")
	}
	if r.Site.Longitude < -180 || r.Site.Longitude > 180 {
		v = append(v, "site longitude must be between -180 and 180 degrees")
	}

	if r.BESS.CapacityKWh <= 0 {
		v = append(v, "bess capacity must be > 0 kWh")
	}
	if r.BESS.EfficiencyPct <= 0 || r.BESS.EfficiencyPct > 100 {
		v = append(v, "bess efficiency must be in (0, 100] percent")
	}
	if r.BESS.DepthOfDischargePct <= 0 || r.BESS.DepthOfDischargePct > 100 {
		v = append(v, "bess depth of discharge must be in (0, 100] percent")
	}
	if r.BESS.InitialSOCPct < 0 || r.BESS.InitialSOCPct > 100 {
		v = append(v, "bess initial SOC must be between 0 and 100 percent")
	}

	if r.Load.DailyConsumptionKWh <= 0 {
		v = append(v, "load daily consumption must be > 0 kWh")
	}
	if len(r.Load.Hourly) != HoursPerDay {
		v = append(v, fmt.Sprintf("load hourly profile must contain exactly %d values, got %d", HoursPerDay, len(r.Load.Hourly)))
	} else {
		for i, kwh := range r.Load.Hourly {
			if kwh < 0 {
				v = append(v, fmt.Sprintf("load hourly value at hour %d must be >= 0 kWh", i))
			}
		}
	}

	if r.Economics.DiscountRatePct < 0 {
		v = append(v, "discount rate must be >= 0 percent")
	}
	if r.Economics.LifespanYears <= 0 {
		v = append(v, "project lifespan must be > 0 years")
	}

	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}
