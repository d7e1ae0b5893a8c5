package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Site is a curated installation location preset.
type Site struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SiteList is a collection of site presets.
type SiteList struct {
	UpdatedAt string `json:"updated_at"` // ISO 8601 timestamp
	Sites     []Site `json:"sites"`
}

// DefaultSites returns the built-in presets, used when no sites file is
// present on disk.
func DefaultSites() *SiteList {
	return &SiteList{
		Sites: []Site{
			{ID: "sao_paulo", Name: "São Paulo", Latitude: -23.55, Longitude: -46.63},
			{ID: "brasilia", Name: "Brasília", Latitude: -15.79, Longitude: -47.88},
			{ID: "fortaleza", Name: "Fortaleza", Latitude: -3.73, Longitude: -38.52},
			{ID: "porto_alegre", Name: "Porto Alegre", Latitude: -30.03, Longitude: -51.23},
		},
	}
}

// LoadSites loads site presets from a JSON file.
func LoadSites(filePath string) (*SiteList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}

	var list SiteList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}

	return &list, nil
}

// SaveSites saves site presets to a JSON file.
func SaveSites(list *SiteList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sites: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write sites file: %w", err)
	}

	return nil
}

// GetDefaultSitesPath returns the default path for the sites file.
func GetDefaultSitesPath() string {
	if path := os.Getenv("SITES_FILE"); path != "" {
		return path
	}
	return "./data/sites.json"
}
