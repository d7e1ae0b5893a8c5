package handlers

import (
	"net/http"
	"path/filepath"

	"solar-viability/internal/analysis"
	"solar-viability/internal/api/models"
	"solar-viability/internal/config"
	"solar-viability/internal/sim"

	"github.com/gin-gonic/gin"
)

// RankHandler handles capacity-ranking requests
type RankHandler struct {
	engine *sim.Engine
}

// NewRankHandler creates a new rank handler
func NewRankHandler() *RankHandler {
	return &RankHandler{engine: sim.New()}
}

// RankCapacities handles GET /api/v1/rank
func (h *RankHandler) RankCapacities(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	path := filepath.Join(ScenarioDir(), req.ScenarioFile+".yaml")
	cfg, err := config.Load(path)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	minKWh := req.CapacityMinKWh
	if minKWh <= 0 {
		minKWh = 5
	}
	maxKWh := req.CapacityMaxKWh
	if maxKWh <= 0 {
		maxKWh = 50
	}
	step := req.CapacityStep
	if step <= 0 {
		step = 5
	}
	if maxKWh < minKWh {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_RANGE",
				Message: "capacity_max_kwh must be >= capacity_min_kwh",
			},
		})
		return
	}

	var capacities []float64
	for kwh := minKWh; kwh <= maxKWh; kwh += step {
		capacities = append(capacities, kwh)
	}

	ranked := analysis.RankByNPV(h.engine, cfg.ToRequest(), capacities)

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	ranked = ranked[:limit]

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:                   i + 1,
			CapacityKWh:            r.CapacityKWh,
			NPV:                    r.NPV,
			PaybackYears:           r.PaybackYears,
			PaybackRecoverable:     r.PaybackRecoverable,
			IRR:                    r.IRR,
			IRRConverged:           r.IRRConverged,
			SelfConsumptionRatePct: r.SelfConsumptionRatePct,
			GridIndependencePct:    r.GridIndependencePct,
		}
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
