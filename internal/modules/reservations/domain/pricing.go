package domain

import (
	"math"
	"time"
)

// ComputeTotal derives the stay price: nightly rate times the night count,
// rounded to two decimals. The total is frozen into the reservation at
// creation time; later rate edits never reprice existing reservations.
func ComputeTotal(rate float64, checkIn, checkOut time.Time) (float64, error) {
	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return RoundMoney(rate * float64(nights)), nil
}

// RoundMoney rounds to two decimal places, half away from zero.
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}
