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
	if _, err := tempFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadBusinessesFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"business_id": "1",
			"business_name": "Pizza Rápida",
			"category": "Alimentação",
			"subcategories": ["Pizzarias"],
			"coordinates": {"lat": -23.5505, "lng": -46.6333},
			"weekly_hours": [
				{"day_of_week": 2, "open_time": "09:00", "close_time": "18:00"}
			],
			"favorites_count": 12
		},
		{
			"business_id": "2",
			"business_name": "Consultoria Sem Endereço",
			"category": "Serviços"
		}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	businesses, err := ReadBusinessesFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(businesses) != 2 {
		t.Fatalf("Expected 2 businesses, got %d", len(businesses))
	}
	if businesses[0].Name != "Pizza Rápida" {
		t.Errorf("Expected name 'Pizza Rápida', got %s", businesses[0].Name)
	}
	if businesses[0].Coordinates == nil || businesses[0].Coordinates.Lat != -23.5505 {
		t.Errorf("Expected coordinates to load, got %+v", businesses[0].Coordinates)
	}
	if len(businesses[0].WeeklyHours) != 1 || businesses[0].WeeklyHours[0].OpenTime != "09:00" {
		t.Errorf("Expected weekly hours to load, got %+v", businesses[0].WeeklyHours)
	}
	if businesses[1].Coordinates != nil {
		t.Errorf("Expected nil coordinates for the geo-less business")
	}
}

func TestReadBusinessesFromJSON_MalformedFile(t *testing.T) {
	tempFile := createTempFile(t, `{"invalid_json`)
	defer os.Remove(tempFile)

	if _, err := ReadBusinessesFromJSON(tempFile); err == nil {
		t.Error("Expected an error for malformed JSON, got nil")
	}
}

func TestReadBusinessesFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadBusinessesFromJSON("/nonexistent/businesses.json"); err == nil {
		t.Error("Expected an error for a missing file, got nil")
	}
}

func TestReadBusinessFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"business_id": "1",
		"business_name": "Borracharia Sul",
		"category": "Automotivo",
		"favorites_count": 3,
		"views": 42
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	b, err := ReadBusinessFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if b.ID != "1" {
		t.Errorf("Expected ID '1', got %s", b.ID)
	}
	if b.Name != "Borracharia Sul" {
		t.Errorf("Expected name 'Borracharia Sul', got %s", b.Name)
	}
	if b.FavoritesCount != 3 || b.Views != 42 {
		t.Errorf("Expected favorites=3 views=42, got %d and %d", b.FavoritesCount, b.Views)
	}
}
