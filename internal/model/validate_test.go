package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SimulationRequest {
	return SimulationRequest{
		Site: Location{Latitude: -23.55, Longitude: -46.63},
		PV: PVSystemSpec{
			PeakPowerKW:      10,
			TiltDeg:          20,
			PerformanceRatio: 0.75,
		},
		BESS: BESSSpec{
			CapacityKWh:         20,
			MaxChargeKW:         5,
			MaxDischargeKW:      5,
			EfficiencyPct:       90,
			DepthOfDischargePct: 20,
			InitialSOCPct:       50,
		},
		Load: LoadProfile{
			DailyConsumptionKWh: 40,
			PeakDemandKW:        4,
			Hourly:              UniformHourly(40),
		},
		Economics: EconomicParameters{
			ElectricityPrice: 0.6,
			FeedInTariff:     0.3,
			DiscountRatePct:  8,
			LifespanYears:    25,
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestValidateCollectsAllViolations(t *testing.T) {
	req := validRequest()
	req.PV.PeakPowerKW = 0
	req.PV.PerformanceRatio = 1.5
	req.Site.Latitude = 95
	req.BESS.CapacityKWh = -1
	req.BESS.EfficiencyPct = 101
	req.Economics.LifespanYears = 0

	err := req.Validate()
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	assert.Len(t, verr.Violations, 6)
	assert.Contains(t, verr.Violations, "pv peak power must be > 0 kWp")
	assert.Contains(t, verr.Violations, "pv performance ratio must be in (0, 1]")
	assert.Contains(t, verr.Violations, "site latitude must be between -90 and 90 degrees")
	assert.Contains(t, verr.Violations, "bess capacity must be > 0 kWh")
	assert.Contains(t, verr.Violations, "bess efficiency must be in (0, 100] percent")
	assert.Contains(t, verr.Violations, "project lifespan must be > 0 years")

	// The joined message mentions every violation, not just the first.
	assert.Contains(t, err.Error(), "pv peak power")
	assert.Contains(t, err.Error(), "project lifespan")
}

func TestValidateHourlyLength(t *testing.T) {
	req := validRequest()
	req.Load.Hourly = []float64{1, 2, 3}

	err := req.Validate()
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Len(t, verr.Violations, 1)
	assert.Contains(t, verr.Violations[0], "exactly 24 values")
}

func TestValidateNegativeHourlyValue(t *testing.T) {
	req := validRequest()
	req.Load.Hourly[7] = -0.5

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour 7")
}

func TestValidateBoundaryValues(t *testing.T) {
	req := validRequest()
	req.Site.Latitude = -90
	req.Site.Longitude = 180
	req.PV.TiltDeg = 90
	req.PV.PerformanceRatio = 1
	req.BESS.EfficiencyPct = 100
	req.BESS.DepthOfDischargePct = 100
	req.BESS.InitialSOCPct = 0
	req.Economics.DiscountRatePct = 0

	assert.NoError(t, req.Validate())
}
