package main

import (
	"flag"
	"fmt"

	"solar-viability/internal/config"
	"solar-viability/internal/model"
	"solar-viability/internal/sim"
)

// Demo:
// - Build a canonical residential scenario (10 kWp array, 20 kWh pack)
// - Run the full simulation pipeline
// - Print the hour-by-hour battery trace and the financial summary
func main() {
	cfgPath := flag.String("config", "", "Path to YAML scenario config (optional)")
	outCSV := flag.String("out", "", "Optional path to write the trace CSV (e.g. results/trace.csv)")
	flag.Parse()

	engine := sim.New()

	// Defaults (can be overridden via --config).
	req := model.SimulationRequest{
		Site: model.Location{Latitude: -23.55, Longitude: -46.63},
		PV: model.PVSystemSpec{
			PeakPowerKW:      10,
			TiltDeg:          20,
			AzimuthDeg:       0,
			SystemLossPct:    14,
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

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		req = cfg.ToRequest()
		engine.Costs = cfg.CostModel()
	}

	run, err := engine.Run(req)
	if err != nil {
		panic(err)
	}
	res := run.Result

	fmt.Printf("PV: %.0f kWh/year (specific yield %.0f kWh/kWp, capacity factor %.1f%%)\n",
		res.PVGeneration.AnnualEnergyKWh,
		res.PVGeneration.SpecificYield,
		res.PVGeneration.CapacityFactorPct,
	)
	fmt.Printf("BESS: %.0f kWh/year throughput, %.0f cycles/year\n\n",
		res.BESSPerformance.AnnualThroughputKWh,
		res.BESSPerformance.CyclesPerYear,
	)

	for _, h := range run.Trace.Hours {
		fmt.Printf(
			"%02d:00 pv=%6.2f load=%6.2f net=%6.2f  %-11s  soc=%.1f->%.1f\n",
			h.Hour,
			h.PVKWh,
			h.LoadKWh,
			h.NetKWh,
			string(h.Mode),
			h.SOCStart,
			h.SOCEnd,
		)
	}

	fmt.Printf("\nSelf-consumption %.1f%%  Grid independence %.1f%%\n",
		res.SystemInteraction.SelfConsumptionRatePct,
		res.SystemInteraction.GridIndependencePct,
	)
	fmt.Printf("Investment %.0f  Annual savings %.0f  NPV %.0f\n",
		res.Financial.InitialInvestment,
		res.Financial.AnnualSavings,
		res.Financial.NPV,
	)
	if res.Financial.PaybackRecoverable {
		fmt.Printf("Payback %.1f years\n", res.Financial.PaybackYears)
	} else {
		fmt.Println("Payback: investment not recoverable at current tariffs")
	}
	if res.Financial.IRRConverged {
		fmt.Printf("IRR %.1f%%  LCOE %.3f\n", res.Financial.IRR*100, res.Financial.LCOE)
	} else {
		fmt.Printf("IRR: did not converge in [0%%,100%%]  LCOE %.3f\n", res.Financial.LCOE)
	}

	if *outCSV != "" {
		if err := sim.WriteTraceCSV(*outCSV, run.Trace); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
