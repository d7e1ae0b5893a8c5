package sim

import (
	"fmt"
	"math"

	"solar-viability/internal/model"
)

// HourResult captures what happened in one simulated hour.
type HourResult struct {
	Hour    int
	PVKWh   float64
	LoadKWh float64
	NetKWh  float64

	Mode model.BatteryMode

	ChargedKWh    float64 // energy accepted from the surplus, before efficiency
	DischargedKWh float64 // energy delivered to the load, after efficiency

	SOCStart float64
	SOCEnd   float64
}

// DayTrace is the hour-by-hour battery record for the representative day.
type DayTrace struct {
	Hours []HourResult

	// SOCProfile is the 24 end-of-hour SOC values in percent.
	SOCProfile []float64
}

// StepHour advances the battery by one hour. It is a pure transition:
// (priorSOC, pv, load, spec) -> result, with no hidden state, so single
// hours are testable in isolation and a day is a fold over 24 of these.
//
// Charge and discharge are capped by the respective power limits (one
// hour, so kW caps act as kWh caps). Efficiency is applied
// multiplicatively on charge and divisively on discharge; the full
// round-trip loss is realized across a charge/discharge pair rather than
// split evenly. SOC is clamped to [DepthOfDischargePct, 100].
func StepHour(socPct float64, hour int, pvKWh, loadKWh float64, spec model.BESSSpec) HourResult {
	net := pvKWh - loadKWh
	res := HourResult{
		Hour:     hour,
		PVKWh:    pvKWh,
		LoadKWh:  loadKWh,
		NetKWh:   net,
		Mode:     model.ModeFromNetEnergy(net),
		SOCStart: socPct,
	}

	switch {
	case net > 0:
		charged := math.Min(net, spec.MaxChargeKW)
		socIncrease := charged * spec.EfficiencyPct / 100 / spec.CapacityKWh * 100
		res.ChargedKWh = charged
		res.SOCEnd = math.Min(100, socPct+socIncrease)
	case net < 0:
		discharged := math.Min(-net, spec.MaxDischargeKW)
		socDecrease := discharged / (spec.EfficiencyPct / 100) / spec.CapacityKWh * 100
		res.DischargedKWh = discharged
		res.SOCEnd = math.Max(spec.DepthOfDischargePct, socPct-socDecrease)
	default:
		res.SOCEnd = socPct
	}

	return res
}

// SimulateDay walks the 24-hour PV profile against the load profile,
// starting from the spec's initial SOC. Deterministic and restartable;
// nothing carries over between invocations.
func SimulateDay(hourlyPV []float64, load model.LoadProfile, spec model.BESSSpec) (*DayTrace, error) {
	if len(hourlyPV) != model.HoursPerDay {
		return nil, fmt.Errorf("pv profile has %d hours, want %d", len(hourlyPV), model.HoursPerDay)
	}
	if len(load.Hourly) != model.HoursPerDay {
		return nil, fmt.Errorf("load profile has %d hours, want %d", len(load.Hourly), model.HoursPerDay)
	}

	trace := &DayTrace{
		Hours:      make([]HourResult, 0, model.HoursPerDay),
		SOCProfile: make([]float64, 0, model.HoursPerDay),
	}

	soc := spec.InitialSOCPct
	for h := 0; h < model.HoursPerDay; h++ {
		res := StepHour(soc, h, hourlyPV[h], load.Hourly[h], spec)
		soc = res.SOCEnd
		trace.Hours = append(trace.Hours, res)
		trace.SOCProfile = append(trace.SOCProfile, soc)
	}

	return trace, nil
}

// Throughput annualizes the battery's usable cycling.
// One nominal daily cycle uses the usable depth of the pack.
func Throughput(spec model.BESSSpec) (annualKWh, cyclesPerYear float64) {
	daily := spec.CapacityKWh * spec.DepthOfDischargePct / 100
	annualKWh = daily * 365
	cyclesPerYear = annualKWh / spec.CapacityKWh
	return annualKWh, cyclesPerYear
}
