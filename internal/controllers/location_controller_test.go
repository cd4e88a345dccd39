package controllers

import (
	"strings"
	"testing"

	"github.com/Aayush-jas123/vcloak-platform/internal/models"
)

func TestApplyLocationUpdates_PartialPatch(t *testing.T) {
	location := models.StorageLocation{
		BusinessName: "Old Name",
		Address:      "1 Old St",
		Latitude:     51.5,
		Longitude:    -0.12,
		Capacity:     10,
		PricePerHour: 5,
		Description:  "old",
		Active:       true,
	}

	newName := "New Name"
	newPrice := 7.5
	applyLocationUpdates(&location, updateLocationInput{
		BusinessName: &newName,
		PricePerHour: &newPrice,
	})

	if location.BusinessName != "New Name" {
		t.Errorf("business_name = %q; want New Name", location.BusinessName)
	}
	if location.PricePerHour != 7.5 {
		t.Errorf("price_per_hour = %v; want 7.5", location.PricePerHour)
	}
	// untouched fields keep their values
	if location.Address != "1 Old St" || location.Capacity != 10 || !location.Active {
		t.Errorf("unrelated fields changed: %+v", location)
	}
}

func TestApplyLocationUpdates_DeactivateAndLists(t *testing.T) {
	location := models.StorageLocation{Active: true}

	inactive := false
	amenities := []string{"secure", "cctv"}
	applyLocationUpdates(&location, updateLocationInput{
		Active:    &inactive,
		Amenities: &amenities,
	})

	if location.Active {
		t.Error("active = true; want false")
	}
	if len(location.Amenities) != 2 || location.Amenities[0] != "secure" || location.Amenities[1] != "cctv" {
		t.Errorf("amenities = %v; want [secure cctv]", location.Amenities)
	}
}

func TestWithinRadius_FiltersAndSorts(t *testing.T) {
	locations := []models.StorageLocation{
		{BusinessName: "far", Latitude: 0, Longitude: 2},    // ~222 km from origin
		{BusinessName: "near", Latitude: 0, Longitude: 0.1}, // ~11 km
		{BusinessName: "mid", Latitude: 0, Longitude: 0.5},  // ~56 km
	}

	results := withinRadius(locations, 0, 0, 100)
	if len(results) != 2 {
		t.Fatalf("got %d results; want 2", len(results))
	}
	if results[0].BusinessName != "near" || results[1].BusinessName != "mid" {
		t.Errorf("order = [%s %s]; want [near mid]", results[0].BusinessName, results[1].BusinessName)
	}
	for _, r := range results {
		if r.Distance == nil {
			t.Fatalf("result %s has no distance attached", r.BusinessName)
		}
	}
	if *results[0].Distance >= *results[1].Distance {
		t.Errorf("distances not ascending: %v >= %v", *results[0].Distance, *results[1].Distance)
	}
}

func TestWithinRadius_EmptyResultIsNotNil(t *testing.T) {
	results := withinRadius(nil, 0, 0, 5)
	if results == nil {
		t.Fatal("withinRadius returned nil; want empty slice")
	}
}

func TestToLocationResponse_RoundsRatingToOneDecimal(t *testing.T) {
	resp := toLocationResponse(models.StorageLocation{Rating: 4.333333})
	if resp.Rating != 4.3 {
		t.Fatalf("rating = %v; want 4.3", resp.Rating)
	}
}

func TestToLocationResponse_EmptyListsNotNull(t *testing.T) {
	resp := toLocationResponse(models.StorageLocation{})
	if resp.Amenities == nil || resp.Photos == nil {
		t.Fatal("amenities/photos are nil; want empty slices")
	}
}

func TestToLocationResponse_PreservesListOrder(t *testing.T) {
	resp := toLocationResponse(models.StorageLocation{
		Amenities: []string{"secure", "cctv"},
	})
	if len(resp.Amenities) != 2 || resp.Amenities[0] != "secure" || resp.Amenities[1] != "cctv" {
		t.Fatalf("amenities = %v; want [secure cctv]", resp.Amenities)
	}
}

func TestPointGeoJSON(t *testing.T) {
	geometry, err := pointGeoJSON(51.5, -0.12)
	if err != nil {
		t.Fatalf("pointGeoJSON: %v", err)
	}
	if !strings.Contains(geometry, `"Point"`) {
		t.Errorf("geometry %q does not encode a Point", geometry)
	}
	// GeoJSON orders coordinates lng,lat
	if !strings.Contains(geometry, "-0.12") || !strings.Contains(geometry, "51.5") {
		t.Errorf("geometry %q missing coordinates", geometry)
	}
}
