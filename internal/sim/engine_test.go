package sim

import (
	"errors"
	"testing"

	"solar-viability/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalRequest() model.SimulationRequest {
	return model.SimulationRequest{
		Site: model.Location{Latitude: -23.55, Longitude: -46.63},
		PV: model.PVSystemSpec{
			PeakPowerKW:      10,
			TiltDeg:          20,
			PerformanceRatio: 0.75,
		},
		BESS: model.BESSSpec{
			CapacityKWh:         20,
			MaxChargeKW:         5,
			MaxDischargeKW:      5,
			EfficiencyPct:       90,
			DepthOfDischargePct: 20,
			InitialSOCPct:       50,
		},
		Load: model.LoadProfile{
			DailyConsumptionKWh: 40,
			PeakDemandKW:        4,
			Hourly:              model.UniformHourly(40),
		},
		Economics: model.EconomicParameters{
			ElectricityPrice: 0.6,
			FeedInTariff:     0.3,
			DiscountRatePct:  8,
			LifespanYears:    25,
		},
	}
}

func TestEngineRunCanonicalScenario(t *testing.T) {
	run, err := New().Run(canonicalRequest())
	require.NoError(t, err)
	require.NotNil(t, run.Result)
	require.NotNil(t, run.Trace)

	res := run.Result

	assert.Equal(t, 9000.0, res.PVGeneration.AnnualEnergyKWh)
	assert.Equal(t, 900.0, res.PVGeneration.SpecificYield)

	require.Len(t, res.BESSPerformance.StateOfCharge, 24)
	for h, soc := range res.BESSPerformance.StateOfCharge {
		assert.GreaterOrEqual(t, soc, 20.0, "hour %d", h)
		assert.LessOrEqual(t, soc, 100.0, "hour %d", h)
	}
	assert.InDelta(t, 1460.0, res.BESSPerformance.AnnualThroughputKWh, 1e-9)
	assert.InDelta(t, 73.0, res.BESSPerformance.CyclesPerYear, 1e-9)

	flow := res.SystemInteraction.EnergyFlow
	assert.InDelta(t, 3600, flow.FromPV, 1e-9)
	assert.InDelta(t, 3780, flow.ToBESS, 1e-9)
	assert.InDelta(t, 1620, flow.ToGrid, 1e-9)
	assert.InDelta(t, 3402, flow.FromBESS, 1e-9)
	assert.InDelta(t, 7598, flow.FromGrid, 1e-9)
	assert.InDelta(t, 77.8, res.SystemInteraction.SelfConsumptionRatePct, 0.01)
	assert.InDelta(t, 47.96, res.SystemInteraction.GridIndependencePct, 0.01)

	fin := res.Financial
	assert.Equal(t, 21000.0, fin.InitialInvestment)
	assert.InDelta(t, 4687.2, fin.AnnualSavings, 1e-9)
	assert.True(t, fin.PaybackRecoverable)
	assert.InDelta(t, 21000.0/4687.2, fin.PaybackYears, 1e-9)
	assert.InDelta(t, 29034.9, fin.NPV, 2.0)
	assert.True(t, fin.IRRConverged)
	assert.InDelta(t, 0.2217, fin.IRR, 0.005)
	assert.InDelta(t, 0.11997, fin.LCOE, 1e-4)

	assert.Equal(t, Method, res.Metadata.Method)
	assert.NotEmpty(t, res.Metadata.Assumptions)
	assert.False(t, res.Metadata.Timestamp.IsZero())
}

func TestEngineRunDeterministic(t *testing.T) {
	e := New()
	req := canonicalRequest()

	a, err := e.Run(req)
	require.NoError(t, err)
	b, err := e.Run(req)
	require.NoError(t, err)

	// Everything but the timestamped metadata is a pure function of the
	// request.
	assert.Equal(t, a.Result.PVGeneration, b.Result.PVGeneration)
	assert.Equal(t, a.Result.BESSPerformance, b.Result.BESSPerformance)
	assert.Equal(t, a.Result.SystemInteraction, b.Result.SystemInteraction)
	assert.Equal(t, a.Result.Financial, b.Result.Financial)
	assert.Equal(t, a.Trace, b.Trace)
}

func TestEngineRunRejectsInvalidRequest(t *testing.T) {
	req := canonicalRequest()
	req.PV.PeakPowerKW = -5
	req.BESS.EfficiencyPct = 0

	run, err := New().Run(req)
	require.Error(t, err)
	assert.Nil(t, run)

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 2)
}
