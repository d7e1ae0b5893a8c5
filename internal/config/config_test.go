package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetYAML = `scenario:
  name: residential
  site:
    latitude: -23.55
    longitude: -46.63
  pv:
    peak_power_kw: 10
    tilt_deg: 20
    performance_ratio: 0.75
  bess:
    capacity_kwh: 20
    max_charge_kw: 5
    max_discharge_kw: 5
    efficiency_pct: 90
    depth_of_discharge_pct: 20
    initial_soc_pct: 50
  load:
    daily_consumption_kwh: 40
    peak_demand_kw: 4
  economics:
    electricity_price: 0.6
    feed_in_tariff: 0.3
    discount_rate_pct: 8
    lifespan_years: 25
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStandaloneScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", presetYAML)

	c, err := Load(path)
	require.NoError(t, err)

	req := c.ToRequest()
	assert.Equal(t, 10.0, req.PV.PeakPowerKW)
	assert.Equal(t, 0.75, req.PV.PerformanceRatio)
	assert.Equal(t, 25, req.Economics.LifespanYears)

	// Omitted hourly profile defaults to a uniform spread.
	require.Len(t, req.Load.Hourly, 24)
	for h, kwh := range req.Load.Hourly {
		assert.InDelta(t, 40.0/24, kwh, 1e-9, "hour %d", h)
	}
}

func TestLoadMergesPresetWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", presetYAML)
	path := writeFile(t, dir, "config.yaml", `scenario_file: preset.yaml
scenario:
  pv:
    peak_power_kw: 15
  economics:
    electricity_price: 0.65
costs:
  installation_fixed: 6500
`)

	c, err := Load(path)
	require.NoError(t, err)

	req := c.ToRequest()
	// Overridden fields win, the rest come from the preset.
	assert.Equal(t, 15.0, req.PV.PeakPowerKW)
	assert.Equal(t, 0.65, req.Economics.ElectricityPrice)
	assert.Equal(t, 0.75, req.PV.PerformanceRatio)
	assert.Equal(t, 20.0, req.BESS.CapacityKWh)

	costs := c.CostModel()
	assert.Equal(t, 6500.0, costs.InstallationFixed)
	assert.Equal(t, 1000.0, costs.PVCostPerKW)
	assert.Equal(t, 300.0, costs.BESSCostPerKWh)
}

func TestLoadResolvesPresetRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scenarios"), 0o755))
	writeFile(t, filepath.Join(dir, "scenarios"), "base.yaml", presetYAML)
	path := writeFile(t, dir, "config.yaml", "scenario_file: scenarios/base.yaml\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "residential", c.Scenario.Name)
}

func TestLoadRejectsInvalidScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `scenario:
  pv:
    peak_power_kw: -5
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario config invalid")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyDefaultsInitialSOCFloorsAtDoD(t *testing.T) {
	var c Config
	c.Scenario.BESS.DepthOfDischargePct = 20

	c.ApplyDefaults()
	assert.Equal(t, 20.0, c.Scenario.BESS.InitialSOCPct)
}

func TestMergeScenarioKeepsBaseForZeroFields(t *testing.T) {
	var base, override ScenarioConfig
	base.PV.PeakPowerKW = 10
	base.Load.Hourly = []float64{1, 2, 3}
	override.BESS.CapacityKWh = 30

	out := MergeScenario(base, override)
	assert.Equal(t, 10.0, out.PV.PeakPowerKW)
	assert.Equal(t, 30.0, out.BESS.CapacityKWh)
	assert.Equal(t, base.Load.Hourly, out.Load.Hourly)
}
