package models

import "testing"

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "active", "completed", "cancelled"} {
		if !ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = false; want true", s)
		}
	}
	for _, s := range []string{"", "done", "CONFIRMED", "refunded"} {
		if ValidBookingStatus(s) {
			t.Errorf("ValidBookingStatus(%q) = true; want false", s)
		}
	}
}
