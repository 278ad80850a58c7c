// Package itinerary derives the read-only statistics the final itinerary
// view is built from: cost totals and time-ordered daily schedules.
package itinerary

import (
	"sort"

	"evora/models"
)

// TotalCost sums the cost of every activity on the trip.
func TotalCost(t *models.Trip) float64 {
	var total float64
	for _, a := range t.Activities {
		total += a.Cost
	}
	return total
}

// CostForDay sums activity costs for one day.
func CostForDay(t *models.Trip, day int) float64 {
	var total float64
	for _, a := range t.Activities {
		if a.Day == day {
			total += a.Cost
		}
	}
	return total
}

// CostByType groups activity costs by activity type. Every known type is
// present in the result, at zero if unused.
func CostByType(t *models.Trip) map[string]float64 {
	totals := map[string]float64{
		models.ActivityTypeActivity:       0,
		models.ActivityTypeDining:         0,
		models.ActivityTypeTransportation: 0,
	}
	for _, a := range t.Activities {
		totals[a.Type] += a.Cost
	}
	return totals
}

// ActivitiesForDay returns the day's activities ordered by time ascending.
// Times are zero-padded HH:MM strings, so the lexicographic order is the
// chronological one. The sort is stable: same-time activities keep their
// stored order.
func ActivitiesForDay(t *models.Trip, day int) []models.Activity {
	var out []models.Activity
	for _, a := range t.Activities {
		if a.Day == day {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// DailyCosts returns per-day totals for days 1..duration.
func DailyCosts(t *models.Trip) []float64 {
	costs := make([]float64, t.Duration)
	for _, a := range t.Activities {
		if a.Day >= 1 && a.Day <= t.Duration {
			costs[a.Day-1] += a.Cost
		}
	}
	return costs
}
