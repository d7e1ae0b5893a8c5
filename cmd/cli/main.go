package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"solar-viability/internal/analysis"
	"solar-viability/internal/config"
	"solar-viability/internal/data"
	"solar-viability/internal/model"
	"solar-viability/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/trace.csv")
	fmt.Println("  cli simulate --request request.json")
	fmt.Println("  cli rank --config examples/config.yaml --min 5 --max 50 --step 5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints the result JSON and optionally writes the hourly battery trace CSV")
	fmt.Println("  - rank sweeps battery capacities for the scenario and sorts by NPV")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	reqPath := fs.String("request", "", "Path to JSON simulation request (alternative to --config)")
	outPath := fs.String("out", "", "Optional output CSV path for the hourly trace")
	_ = fs.Parse(args)

	engine := sim.New()
	req, err := loadRequest(*cfgPath, *reqPath, engine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	run, err := engine.Run(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(run.Result, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteTraceCSV(*outPath, run.Trace); err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(run.Trace.Hours), *outPath)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	minKWh := fs.Float64("min", 5, "Smallest capacity candidate (kWh)")
	maxKWh := fs.Float64("max", 50, "Largest capacity candidate (kWh)")
	step := fs.Float64("step", 5, "Capacity step (kWh)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	if *step <= 0 || *maxKWh < *minKWh {
		fmt.Println("invalid capacity range")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var capacities []float64
	for kwh := *minKWh; kwh <= *maxKWh; kwh += *step {
		capacities = append(capacities, kwh)
	}

	engine := sim.New()
	engine.Costs = cfg.CostModel()
	ranked := analysis.RankByNPV(engine, cfg.ToRequest(), capacities)

	fmt.Printf("%-4s %-12s %-12s %-10s %-8s %-10s %-10s\n",
		"rank", "capacity", "npv", "payback", "irr", "selfcons%", "gridind%")
	for i, r := range ranked {
		payback := "n/a"
		if r.PaybackRecoverable {
			payback = fmt.Sprintf("%.1fy", r.PaybackYears)
		}
		irr := "n/a"
		if r.IRRConverged {
			irr = fmt.Sprintf("%.1f%%", r.IRR*100)
		}
		fmt.Printf("%-4d %-12.1f %-12.2f %-10s %-8s %-10.1f %-10.1f\n",
			i+1,
			r.CapacityKWh,
			r.NPV,
			payback,
			irr,
			r.SelfConsumptionRatePct,
			r.GridIndependencePct,
		)
	}
}

// loadRequest builds the engine request from either a YAML config or a
// JSON request file. The YAML path also applies the config's cost
// overrides onto the engine.
func loadRequest(cfgPath, reqPath string, engine *sim.Engine) (model.SimulationRequest, error) {
	switch {
	case cfgPath != "" && reqPath != "":
		return model.SimulationRequest{}, fmt.Errorf("--config and --request are mutually exclusive")
	case cfgPath != "":
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return model.SimulationRequest{}, err
		}
		engine.Costs = cfg.CostModel()
		return cfg.ToRequest(), nil
	case reqPath != "":
		req, err := data.LoadRequestJSON(reqPath)
		if err != nil {
			return model.SimulationRequest{}, err
		}
		return *req, nil
	default:
		return model.SimulationRequest{}, fmt.Errorf("--config or --request is required")
	}
}
