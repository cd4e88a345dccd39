package utils

import "time"

// CalculatePrice computes the total charge for storing bags from checkIn to
// checkOut at the given hourly rate. Fractional hours are billed
// proportionally; the result is rounded to 2 decimal places.
func CalculatePrice(checkIn, checkOut time.Time, pricePerHour float64) float64 {
	durationHours := checkOut.Sub(checkIn).Seconds() / 3600
	return Round2(durationHours * pricePerHour)
}
