package controllers

import (
	"testing"

	"github.com/Aayush-jas123/vcloak-platform/internal/models"
)

func TestAverageRating(t *testing.T) {
	cases := []struct {
		ratings []int
		want    float64
	}{
		{nil, 0},
		{[]int{4}, 4},
		{[]int{4, 2}, 3.0},
		{[]int{5, 5, 2}, 4.0},
		{[]int{1, 2}, 1.5},
	}
	for _, tc := range cases {
		if got := averageRating(tc.ratings); got != tc.want {
			t.Errorf("averageRating(%v) = %v; want %v", tc.ratings, got, tc.want)
		}
	}
}

func TestToReviewResponse_TravelerName(t *testing.T) {
	review := models.Review{
		BookingID:  8,
		TravelerID: 1,
		LocationID: 2,
		Rating:     4,
		Comment:    "kept my bags safe",
		Reviewer:   models.User{Name: "Ada"},
	}

	resp := toReviewResponse(review)
	if resp.TravelerName != "Ada" {
		t.Errorf("traveler_name = %q; want Ada", resp.TravelerName)
	}
	if resp.BookingID != 8 || resp.Rating != 4 {
		t.Errorf("fields lost: %+v", resp)
	}
}
