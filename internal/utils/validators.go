package utils

import (
	"errors"
	"regexp"
)

// 10-15 digits with optional leading + and separators
var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,15}$`)

// ValidatePhone accepts an empty phone (the field is optional) or a number
// matching the expected pattern.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return errors.New("invalid phone number format")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}

// ValidateRating checks that a rating is an integer in [1,5].
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

// ValidateCoordinates checks latitude/longitude ranges.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return errors.New("invalid coordinates range")
	}
	return nil
}
