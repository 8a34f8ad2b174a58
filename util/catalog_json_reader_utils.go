package util

import (
	"encoding/json"
	"fmt"
	"os"

	"discovery-server/models"
)

// ReadBusinessesFromJSON loads a business catalog fixture from JSON on disk.
func ReadBusinessesFromJSON(filePath string) ([]models.Business, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var businesses []models.Business
	if err := json.Unmarshal(data, &businesses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal businesses: %w", err)
	}
	return businesses, nil
}

// ReadBusinessFromJSON loads a single Business from JSON on disk.
func ReadBusinessFromJSON(filePath string) (*models.Business, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var b models.Business
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business: %w", err)
	}
	return &b, nil
}
