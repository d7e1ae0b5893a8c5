package handlers

import (
	"errors"
	"net/http"
	"os"

	"solar-viability/internal/api/models"
	"solar-viability/internal/data"

	"github.com/gin-gonic/gin"
)

// ListSites handles GET /api/v1/sites
func ListSites(c *gin.Context) {
	list, err := data.LoadSites(data.GetDefaultSitesPath())
	if err != nil {
		// Fall back to the built-in presets when no file is present.
		if errors.Is(err, os.ErrNotExist) {
			list = data.DefaultSites()
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "SITES_LOAD_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
	}

	sites := make([]models.SiteInfo, len(list.Sites))
	for i, s := range list.Sites {
		sites[i] = models.SiteInfo{
			ID:        s.ID,
			Name:      s.Name,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"sites":      sites,
		"updated_at": list.UpdatedAt,
		"count":      len(sites),
	})
}
