package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"solar-viability/internal/api/models"
	"solar-viability/internal/config"
	"solar-viability/internal/model"
	"solar-viability/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulationHandler handles simulation-related requests
type SimulationHandler struct {
	engine *sim.Engine
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler() *SimulationHandler {
	return &SimulationHandler{engine: sim.New()}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	simReq, err := h.buildRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	run, err := h.engineFor(req.Costs).Run(simReq)
	if err != nil {
		respondRunError(c, err)
		return
	}

	response := models.SimulateResponse{
		Status: "completed",
		Result: run.Result,
	}
	if req.Options.IncludeTrace {
		response.Trace = convertTrace(run.Trace)
	}
	c.JSON(http.StatusOK, response)
}

// CompareScenarios handles POST /api/v1/simulate/compare
func (h *SimulationHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeRequest(req.Base, variation.Scenario)

		run, err := h.engine.Run(merged)
		if err != nil {
			log.Printf("SimulationHandler: variation %q failed: %v", variation.Name, err)
			continue // Skip invalid variations
		}

		comparison = append(comparison, models.ComparisonResult{
			Name:        variation.Name,
			Financial:   run.Result.Financial,
			Interaction: run.Result.SystemInteraction,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

// buildRequest resolves the optional scenario preset and overlays the
// request's explicit fields on top of it.
func (h *SimulationHandler) buildRequest(req models.SimulateRequest) (model.SimulationRequest, error) {
	if req.ScenarioFile == "" {
		return req.Scenario, nil
	}

	// scenario_file is a bare preset name (e.g. "residential_10kw");
	// files are always looked up in the scenario directory.
	path := filepath.Join(ScenarioDir(), req.ScenarioFile+".yaml")
	cfg, err := config.LoadUnchecked(path)
	if err != nil {
		return model.SimulationRequest{}, err
	}
	cfg.ApplyDefaults()

	return mergeRequest(cfg.ToRequest(), req.Scenario), nil
}

// engineFor applies per-request cost overrides onto a copy of the shared
// engine.
func (h *SimulationHandler) engineFor(costs models.CostOverrides) *sim.Engine {
	e := *h.engine
	if costs.PVPerKW != 0 {
		e.Costs.PVCostPerKW = costs.PVPerKW
	}
	if costs.BESSPerKWh != 0 {
		e.Costs.BESSCostPerKWh = costs.BESSPerKWh
	}
	if costs.InstallationFixed != 0 {
		e.Costs.InstallationFixed = costs.InstallationFixed
	}
	return &e
}

// mergeRequest overlays non-zero fields from override onto base.
func mergeRequest(base, override model.SimulationRequest) model.SimulationRequest {
	merged := base
	if override.Site.Latitude != 0 {
		merged.Site.Latitude = override.Site.Latitude
	}
	if override.Site.Longitude != 0 {
		merged.Site.Longitude = override.Site.Longitude
	}
	if override.PV.PeakPowerKW != 0 {
		merged.PV.PeakPowerKW = override.PV.PeakPowerKW
	}
	if override.PV.TiltDeg != 0 {
		merged.PV.TiltDeg = override.PV.TiltDeg
	}
	if override.PV.AzimuthDeg != 0 {
		merged.PV.AzimuthDeg = override.PV.AzimuthDeg
	}
	if override.PV.SystemLossPct != 0 {
		merged.PV.SystemLossPct = override.PV.SystemLossPct
	}
	if override.PV.PerformanceRatio != 0 {
		merged.PV.PerformanceRatio = override.PV.PerformanceRatio
	}
	if override.BESS.CapacityKWh != 0 {
		merged.BESS.CapacityKWh = override.BESS.CapacityKWh
	}
	if override.BESS.MaxChargeKW != 0 {
		merged.BESS.MaxChargeKW = override.BESS.MaxChargeKW
	}
	if override.BESS.MaxDischargeKW != 0 {
		merged.BESS.MaxDischargeKW = override.BESS.MaxDischargeKW
	}
	if override.BESS.EfficiencyPct != 0 {
		merged.BESS.EfficiencyPct = override.BESS.EfficiencyPct
	}
	if override.BESS.DepthOfDischargePct != 0 {
		merged.BESS.DepthOfDischargePct = override.BESS.DepthOfDischargePct
	}
	if override.BESS.InitialSOCPct != 0 {
		merged.BESS.InitialSOCPct = override.BESS.InitialSOCPct
	}
	if override.Load.DailyConsumptionKWh != 0 {
		merged.Load.DailyConsumptionKWh = override.Load.DailyConsumptionKWh
	}
	if override.Load.PeakDemandKW != 0 {
		merged.Load.PeakDemandKW = override.Load.PeakDemandKW
	}
	if len(override.Load.Hourly) != 0 {
		merged.Load.Hourly = override.Load.Hourly
	}
	if override.Economics.ElectricityPrice != 0 {
		merged.Economics.ElectricityPrice = override.Economics.ElectricityPrice
	}
	if override.Economics.FeedInTariff != 0 {
		merged.Economics.FeedInTariff = override.Economics.FeedInTariff
	}
	if override.Economics.DiscountRatePct != 0 {
		merged.Economics.DiscountRatePct = override.Economics.DiscountRatePct
	}
	if override.Economics.LifespanYears != 0 {
		merged.Economics.LifespanYears = override.Economics.LifespanYears
	}
	return merged
}

// respondRunError maps engine errors to HTTP responses. Validation
// failures return the full violation list.
func respondRunError(c *gin.Context, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALIDATION_FAILED",
				Message: verr.Error(),
				Details: map[string]interface{}{
					"violations": verr.Violations,
				},
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "SIMULATION_ERROR",
			Message: err.Error(),
		},
	})
}

func convertTrace(trace *sim.DayTrace) []models.TraceRow {
	rows := make([]models.TraceRow, len(trace.Hours))
	for i, h := range trace.Hours {
		rows[i] = models.TraceRow{
			Hour:          h.Hour,
			PVKWh:         h.PVKWh,
			LoadKWh:       h.LoadKWh,
			NetKWh:        h.NetKWh,
			Mode:          string(h.Mode),
			ChargedKWh:    h.ChargedKWh,
			DischargedKWh: h.DischargedKWh,
			SOCStart:      h.SOCStart,
			SOCEnd:        h.SOCEnd,
		}
	}
	return rows
}

// ScenarioDir resolves the scenario preset directory.
func ScenarioDir() string {
	if dir := os.Getenv("SCENARIO_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/scenarios"
	}
	return filepath.Join(wd, "examples", "scenarios")
}
