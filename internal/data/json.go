package data

import (
	"encoding/json"
	"os"

	"solar-viability/internal/model"
)

// LoadRequestJSON reads a full simulation request from a JSON file.
// Used by the CLI as an alternative to YAML scenario configs.
func LoadRequestJSON(path string) (*model.SimulationRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req model.SimulationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
