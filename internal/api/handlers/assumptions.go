package handlers

import (
	"net/http"

	"solar-viability/internal/finance"
	"solar-viability/internal/sim"

	"github.com/gin-gonic/gin"
)

// ListAssumptions handles GET /api/v1/assumptions.
// It exposes the estimation method, its stated simplifications, and the
// fixed tables so clients can display them alongside results.
func ListAssumptions(c *gin.Context) {
	pv := sim.DefaultPVModel()
	alloc := sim.DefaultAllocationModel()
	costs := finance.DefaultCostModel()

	c.JSON(http.StatusOK, gin.H{
		"calculation_method": sim.Method,
		"assumptions":        sim.Assumptions(),
		"tables": gin.H{
			"base_yield_kwh_per_kwp_year": pv.BaseYield,
			"location_factor":             pv.LocationFactor,
			"monthly_shape":               pv.MonthlyShape,
			"hourly_shape":                pv.HourlyShape,
			"direct_use_share":            alloc.DirectUseShare,
			"surplus_to_storage_share":    alloc.SurplusToStorageShare,
			"costs":                       costs,
		},
	})
}
