package itinerary

import (
	"testing"

	"evora/models"
)

func statsTrip() *models.Trip {
	return &models.Trip{
		Title:    "Stats Trip",
		Duration: 3,
		Activities: []models.Activity{
			{LocalID: "a1", Day: 1, Type: models.ActivityTypeDining, Time: "12:30", Title: "Lunch", Cost: 30},
			{LocalID: "a2", Day: 1, Type: models.ActivityTypeActivity, Time: "09:00", Title: "Walk", Cost: 10},
			{LocalID: "a3", Day: 2, Type: models.ActivityTypeTransportation, Time: "08:00", Title: "Bus", Cost: 5},
			{LocalID: "a4", Day: 2, Type: models.ActivityTypeDining, Time: "19:00", Title: "Dinner", Cost: 45},
		},
	}
}

func TestTotalCost(t *testing.T) {
	if got := TotalCost(statsTrip()); got != 90 {
		t.Fatalf("expected 90, got %v", got)
	}
	if got := TotalCost(&models.Trip{Duration: 2}); got != 0 {
		t.Fatalf("expected 0 for empty trip, got %v", got)
	}
}

func TestCostForDay(t *testing.T) {
	trip := statsTrip()
	cases := []struct {
		day  int
		want float64
	}{
		{1, 40},
		{2, 50},
		{3, 0},
	}
	for _, c := range cases {
		if got := CostForDay(trip, c.day); got != c.want {
			t.Fatalf("day %d: expected %v, got %v", c.day, c.want, got)
		}
	}
}

func TestCostByType(t *testing.T) {
	totals := CostByType(statsTrip())
	if totals[models.ActivityTypeDining] != 75 {
		t.Fatalf("dining: expected 75, got %v", totals[models.ActivityTypeDining])
	}
	if totals[models.ActivityTypeActivity] != 10 {
		t.Fatalf("activity: expected 10, got %v", totals[models.ActivityTypeActivity])
	}
	if totals[models.ActivityTypeTransportation] != 5 {
		t.Fatalf("transportation: expected 5, got %v", totals[models.ActivityTypeTransportation])
	}

	// Every known type is present even when unused.
	empty := CostByType(&models.Trip{Duration: 1})
	for _, typ := range []string{models.ActivityTypeActivity, models.ActivityTypeDining, models.ActivityTypeTransportation} {
		if v, ok := empty[typ]; !ok || v != 0 {
			t.Fatalf("expected %s present at 0, got %v (ok=%v)", typ, v, ok)
		}
	}
}

func TestActivitiesForDayOrdering(t *testing.T) {
	trip := statsTrip()
	day1 := ActivitiesForDay(trip, 1)
	if len(day1) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(day1))
	}
	if day1[0].Time != "09:00" || day1[1].Time != "12:30" {
		t.Fatalf("not time-ordered: %+v", day1)
	}
	if got := ActivitiesForDay(trip, 3); len(got) != 0 {
		t.Fatalf("expected empty day, got %+v", got)
	}
}

func TestActivitiesForDayStableOnTies(t *testing.T) {
	trip := &models.Trip{
		Duration: 1,
		Activities: []models.Activity{
			{LocalID: "first", Day: 1, Time: "10:00"},
			{LocalID: "second", Day: 1, Time: "10:00"},
		},
	}
	got := ActivitiesForDay(trip, 1)
	if got[0].LocalID != "first" || got[1].LocalID != "second" {
		t.Fatalf("tie order not preserved: %+v", got)
	}
}

func TestDailyCosts(t *testing.T) {
	costs := DailyCosts(statsTrip())
	if len(costs) != 3 {
		t.Fatalf("expected 3 days, got %d", len(costs))
	}
	if costs[0] != 40 || costs[1] != 50 || costs[2] != 0 {
		t.Fatalf("unexpected daily costs: %v", costs)
	}
}

func TestSampleTripIsConsistent(t *testing.T) {
	trip := SampleTrip()
	if trip.Title == "" || trip.Duration < models.MinDuration {
		t.Fatalf("sample trip malformed: %+v", trip)
	}
	if got := TotalCost(trip); got != 160 {
		t.Fatalf("expected sample total 160, got %v", got)
	}
	for _, a := range trip.Activities {
		if a.Day < 1 || a.Day > trip.Duration {
			t.Fatalf("sample activity out of range: %+v", a)
		}
	}
}
