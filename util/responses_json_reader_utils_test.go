package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadExploreResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"meta": {"code": 200, "requestId": "abc123"},
		"response": {
			"query": "coffee",
			"geocode": {"where": "berlin", "displayString": "Berlin, Germany"},
			"groups": [
				{
					"type": "Recommended Places",
					"name": "recommended",
					"items": [
						{
							"venue": {"id": "v1", "name": "Five Elephant", "rating": 9.2},
							"tips": [{"id": "t1", "text": "Great cake."}]
						}
					]
				}
			]
		}
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadExploreResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Meta.Code != 200 {
		t.Errorf("Expected meta code 200, got %d", response.Meta.Code)
	}
	if response.Response.Query != "coffee" {
		t.Errorf("Expected query 'coffee', got %s", response.Response.Query)
	}
	if response.Response.Geocode.DisplayString != "Berlin, Germany" {
		t.Errorf("Expected display string 'Berlin, Germany', got %s", response.Response.Geocode.DisplayString)
	}
	if len(response.Response.Groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(response.Response.Groups))
	}
	item := response.Response.Groups[0].Items[0]
	if item.Venue.Name != "Five Elephant" {
		t.Errorf("Expected venue name 'Five Elephant', got %s", item.Venue.Name)
	}
	if len(item.Tips) != 1 || item.Tips[0].Text != "Great cake." {
		t.Errorf("Expected one tip 'Great cake.', got %+v", item.Tips)
	}
}

func TestReadVenueDetailResponseFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"meta": {"code": 200},
		"response": {
			"photos": {
				"count": 1,
				"items": [{"id": "p1", "prefix": "https://fastly.4sqi.net/img/general/", "suffix": "/photo1.jpg"}]
			},
			"tips": {
				"count": 2,
				"items": [
					{"id": "t1", "text": "First tip."},
					{"id": "t2", "text": "Second tip."}
				]
			}
		}
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	response, err := ReadVenueDetailResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Response.Photos == nil || len(response.Response.Photos.Items) != 1 {
		t.Fatalf("Expected 1 photo item, got %+v", response.Response.Photos)
	}
	if response.Response.Photos.Items[0].ID != "p1" {
		t.Errorf("Expected photo id 'p1', got %s", response.Response.Photos.Items[0].ID)
	}
	if response.Response.Tips == nil || response.Response.Tips.Count != 2 {
		t.Fatalf("Expected tip count 2, got %+v", response.Response.Tips)
	}
	if response.Response.Tips.Items[1].Text != "Second tip." {
		t.Errorf("Expected second tip 'Second tip.', got %s", response.Response.Tips.Items[1].Text)
	}
}

func TestReadExploreResponseFromJSON_MissingFile(t *testing.T) {
	_, err := ReadExploreResponseFromJSON("does-not-exist.json")
	if err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
}
