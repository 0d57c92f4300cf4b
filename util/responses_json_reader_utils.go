package util

import (
	"encoding/json"
	"fmt"
	"os"

	"foursquared/models"
)

// ReadExploreResponseFromJSON loads an ExploreResponse from JSON on disk.
func ReadExploreResponseFromJSON(filePath string) (*models.ExploreResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ExploreResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ExploreResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueDetailResponseFromJSON loads a VenueDetailResponse from JSON on disk.
func ReadVenueDetailResponseFromJSON(filePath string) (*models.VenueDetailResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.VenueDetailResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenueDetailResponse: %w", err)
	}
	return &resp, nil
}
