package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"solar-viability/internal/api/models"
	"solar-viability/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScenarios(t *testing.T) {
	setupScenarioDir(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/scenarios", NewScenarioHandler().ListScenarios)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Scenarios, 1)
	assert.Equal(t, "residential_10kw", resp.Scenarios[0].ID)
	assert.Equal(t, "Residential 10 kWp", resp.Scenarios[0].Name)
	assert.Equal(t, 10.0, resp.Scenarios[0].Specs.PeakPowerKW)
	assert.Equal(t, 20.0, resp.Scenarios[0].Specs.CapacityKWh)
}

func TestListScenariosEmptyDirIsNotAnError(t *testing.T) {
	t.Setenv("SCENARIO_DIR", t.TempDir())
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/scenarios", NewScenarioHandler().ListScenarios)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"scenarios":[]`)
}

func TestListSitesFallsBackToDefaults(t *testing.T) {
	t.Setenv("SITES_FILE", filepath.Join(t.TempDir(), "missing.json"))
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/sites", ListSites)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sites []models.SiteInfo `json:"sites"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(data.DefaultSites().Sites), resp.Count)
	assert.Equal(t, "sao_paulo", resp.Sites[0].ID)
}

func TestListSitesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.json")
	list := &data.SiteList{
		UpdatedAt: "2026-08-25T00:00:00Z",
		Sites:     []data.Site{{ID: "campinas", Name: "Campinas", Latitude: -22.91, Longitude: -47.06}},
	}
	require.NoError(t, data.SaveSites(list, path))
	t.Setenv("SITES_FILE", path)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/sites", ListSites)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "campinas")
	assert.Contains(t, w.Body.String(), "2026-08-25T00:00:00Z")
}

func TestListAssumptions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/assumptions", ListAssumptions)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assumptions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Method      string                 `json:"calculation_method"`
		Assumptions []string               `json:"assumptions"`
		Tables      map[string]interface{} `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "simplified-specific-yield-v1", resp.Method)
	assert.NotEmpty(t, resp.Assumptions)
	assert.Contains(t, resp.Tables, "monthly_shape")
	assert.Contains(t, resp.Tables, "hourly_shape")
}

func TestWriteThenReadSitesFile(t *testing.T) {
	// GetDefaultSitesPath honors SITES_FILE; make sure the handler's path
	// resolution and the data layer agree.
	path := filepath.Join(t.TempDir(), "sites.json")
	t.Setenv("SITES_FILE", path)
	require.Equal(t, path, data.GetDefaultSitesPath())
	require.NoError(t, data.SaveSites(data.DefaultSites(), path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
