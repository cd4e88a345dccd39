package controllers

import (
	"testing"
	"time"

	"github.com/Aayush-jas123/vcloak-platform/internal/models"
	"gorm.io/gorm"
)

func TestParseBookingTime(t *testing.T) {
	cases := []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T00:00:00+03:00",
		"2024-01-01T00:00:00",
	}
	for _, in := range cases {
		if _, err := parseBookingTime(in); err != nil {
			t.Errorf("parseBookingTime(%q) = %v; want nil", in, err)
		}
	}

	if _, err := parseBookingTime("01/01/2024"); err == nil {
		t.Error("parseBookingTime accepted a non-ISO date")
	}
}

func TestParseBookingTime_PreservesOffset(t *testing.T) {
	got, err := parseBookingTime("2024-01-01T12:00:00+02:00")
	if err != nil {
		t.Fatalf("parseBookingTime: %v", err)
	}
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parsed %v; want instant %v", got, want)
	}
}

func TestToBookingResponse_OmitsUnloadedAssociations(t *testing.T) {
	resp := toBookingResponse(models.Booking{
		Model:      gorm.Model{ID: 3},
		TravelerID: 1,
		LocationID: 2,
	})
	if resp.Location != nil {
		t.Error("location embedded without preload")
	}
	if resp.Traveler != nil {
		t.Error("traveler embedded without preload")
	}
}

func TestToBookingResponse_EmbedsPreloadedAssociations(t *testing.T) {
	booking := models.Booking{
		Model:      gorm.Model{ID: 3},
		TravelerID: 1,
		LocationID: 2,
		TotalPrice: 25,
		Status:     models.BookingStatusConfirmed,
		Location: models.StorageLocation{
			Model:        gorm.Model{ID: 2},
			BusinessName: "Left Luggage Ltd",
		},
		Traveler: models.User{
			Model: gorm.Model{ID: 1},
			Name:  "Ada",
		},
	}

	resp := toBookingResponse(booking)
	if resp.Location == nil || resp.Location.BusinessName != "Left Luggage Ltd" {
		t.Fatalf("location not embedded: %+v", resp.Location)
	}
	if resp.Traveler == nil || resp.Traveler.Name != "Ada" {
		t.Fatalf("traveler not embedded: %+v", resp.Traveler)
	}
	if resp.TotalPrice != 25 || resp.Status != models.BookingStatusConfirmed {
		t.Errorf("scalar fields lost: %+v", resp)
	}
}
