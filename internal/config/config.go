package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-viability/internal/finance"
	"solar-viability/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load a scenario preset from a separate YAML
	// (e.g. examples/scenarios/*.yaml). Explicit sections below override
	// the preset's values field by field.
	ScenarioFile string `yaml:"scenario_file"`

	Scenario ScenarioConfig `yaml:"scenario"`

	// Costs optionally overrides the fixed unit costs of the investment
	// estimate. Zero-valued fields keep the defaults.
	Costs finance.CostModel `yaml:"costs"`
}

// ScenarioConfig mirrors the engine request in YAML form.
type ScenarioConfig struct {
	Name string `yaml:"name"`

	Site struct {
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
	} `yaml:"site"`

	PV struct {
		PeakPowerKW      float64 `yaml:"peak_power_kw"`
		TiltDeg          float64 `yaml:"tilt_deg"`
		AzimuthDeg       float64 `yaml:"azimuth_deg"`
		SystemLossPct    float64 `yaml:"system_loss_pct"`
		PerformanceRatio float64 `yaml:"performance_ratio"`
	} `yaml:"pv"`

	BESS struct {
		CapacityKWh         float64 `yaml:"capacity_kwh"`
		MaxChargeKW         float64 `yaml:"max_charge_kw"`
		MaxDischargeKW      float64 `yaml:"max_discharge_kw"`
		EfficiencyPct       float64 `yaml:"efficiency_pct"`
		DepthOfDischargePct float64 `yaml:"depth_of_discharge_pct"`
		InitialSOCPct       float64 `yaml:"initial_soc_pct"`
	} `yaml:"bess"`

	Load struct {
		DailyConsumptionKWh float64   `yaml:"daily_consumption_kwh"`
		PeakDemandKW        float64   `yaml:"peak_demand_kw"`
		Hourly              []float64 `yaml:"hourly"`
	} `yaml:"load"`

	Economics struct {
		ElectricityPrice float64 `yaml:"electricity_price"`
		FeedInTariff     float64 `yaml:"feed_in_tariff"`
		DiscountRatePct  float64 `yaml:"discount_rate_pct"`
		LifespanYears    int     `yaml:"lifespan_years"`
	} `yaml:"economics"`
}

// Load reads, merges, defaults, and validates a scenario config.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not default or validate
// it. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := loadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

// ApplyDefaults fills derivable fields so concise configs stay valid:
// an omitted hourly load profile becomes a uniform spread of the daily
// consumption, and an omitted initial SOC starts at the DoD floor.
func (c *Config) ApplyDefaults() {
	if len(c.Scenario.Load.Hourly) == 0 && c.Scenario.Load.DailyConsumptionKWh > 0 {
		c.Scenario.Load.Hourly = model.UniformHourly(c.Scenario.Load.DailyConsumptionKWh)
	}
	if c.Scenario.BESS.InitialSOCPct == 0 {
		c.Scenario.BESS.InitialSOCPct = c.Scenario.BESS.DepthOfDischargePct
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToRequest().Validate(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

// ToRequest converts the YAML shape into the engine's request object.
func (c *Config) ToRequest() model.SimulationRequest {
	s := c.Scenario
	return model.SimulationRequest{
		Site: model.Location{
			Latitude:  s.Site.Latitude,
			Longitude: s.Site.Longitude,
		},
		PV: model.PVSystemSpec{
			PeakPowerKW:      s.PV.PeakPowerKW,
			TiltDeg:          s.PV.TiltDeg,
			AzimuthDeg:       s.PV.AzimuthDeg,
			SystemLossPct:    s.PV.SystemLossPct,
			PerformanceRatio: s.PV.PerformanceRatio,
		},
		BESS: model.BESSSpec{
			CapacityKWh:         s.BESS.CapacityKWh,
			MaxChargeKW:         s.BESS.MaxChargeKW,
			MaxDischargeKW:      s.BESS.MaxDischargeKW,
			EfficiencyPct:       s.BESS.EfficiencyPct,
			DepthOfDischargePct: s.BESS.DepthOfDischargePct,
			InitialSOCPct:       s.BESS.InitialSOCPct,
		},
		Load: model.LoadProfile{
			DailyConsumptionKWh: s.Load.DailyConsumptionKWh,
			PeakDemandKW:        s.Load.PeakDemandKW,
			Hourly:              s.Load.Hourly,
		},
		Economics: model.EconomicParameters{
			ElectricityPrice: s.Economics.ElectricityPrice,
			FeedInTariff:     s.Economics.FeedInTariff,
			DiscountRatePct:  s.Economics.DiscountRatePct,
			LifespanYears:    s.Economics.LifespanYears,
		},
	}
}

// CostModel returns the configured unit costs with defaults filled in for
// any zero-valued field.
func (c *Config) CostModel() finance.CostModel {
	out := finance.DefaultCostModel()
	if c.Costs.PVCostPerKW != 0 {
		out.PVCostPerKW = c.Costs.PVCostPerKW
	}
	if c.Costs.BESSCostPerKWh != 0 {
		out.BESSCostPerKWh = c.Costs.BESSCostPerKWh
	}
	if c.Costs.InstallationFixed != 0 {
		out.InstallationFixed = c.Costs.InstallationFixed
	}
	return out
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

func loadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, err
	}
	return w.Scenario, nil
}

// MergeScenario overlays non-zero fields from override onto base.
// This is used when loading a scenario preset and then applying overrides
// from the config or the request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Site.Latitude != 0 {
		out.Site.Latitude = override.Site.Latitude
	}
	if override.Site.Longitude != 0 {
		out.Site.Longitude = override.Site.Longitude
	}
	if override.PV.PeakPowerKW != 0 {
		out.PV.PeakPowerKW = override.PV.PeakPowerKW
	}
	if override.PV.TiltDeg != 0 {
		out.PV.TiltDeg = override.PV.TiltDeg
	}
	if override.PV.AzimuthDeg != 0 {
		out.PV.AzimuthDeg = override.PV.AzimuthDeg
	}
	if override.PV.SystemLossPct != 0 {
		out.PV.SystemLossPct = override.PV.SystemLossPct
	}
	if override.PV.PerformanceRatio != 0 {
		out.PV.PerformanceRatio = override.PV.PerformanceRatio
	}
	if override.BESS.CapacityKWh != 0 {
		out.BESS.CapacityKWh = override.BESS.CapacityKWh
	}
	if override.BESS.MaxChargeKW != 0 {
		out.BESS.MaxChargeKW = override.BESS.MaxChargeKW
	}
	if override.BESS.MaxDischargeKW != 0 {
		out.BESS.MaxDischargeKW = override.BESS.MaxDischargeKW
	}
	if override.BESS.EfficiencyPct != 0 {
		out.BESS.EfficiencyPct = override.BESS.EfficiencyPct
	}
	if override.BESS.DepthOfDischargePct != 0 {
		out.BESS.DepthOfDischargePct = override.BESS.DepthOfDischargePct
	}
	if override.BESS.InitialSOCPct != 0 {
		out.BESS.InitialSOCPct = override.BESS.InitialSOCPct
	}
	if override.Load.DailyConsumptionKWh != 0 {
		out.Load.DailyConsumptionKWh = override.Load.DailyConsumptionKWh
	}
	if override.Load.PeakDemandKW != 0 {
		out.Load.PeakDemandKW = override.Load.PeakDemandKW
	}
	if len(override.Load.Hourly) != 0 {
		out.Load.Hourly = override.Load.Hourly
	}
	if override.Economics.ElectricityPrice != 0 {
		out.Economics.ElectricityPrice = override.Economics.ElectricityPrice
	}
	if override.Economics.FeedInTariff != 0 {
		out.Economics.FeedInTariff = override.Economics.FeedInTariff
	}
	if override.Economics.DiscountRatePct != 0 {
		out.Economics.DiscountRatePct = override.Economics.DiscountRatePct
	}
	if override.Economics.LifespanYears != 0 {
		out.Economics.LifespanYears = override.Economics.LifespanYears
	}
	return out
}
