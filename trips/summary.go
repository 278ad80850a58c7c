package trips

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"evora/itinerary"
	"evora/models"
	"evora/utils"
)

// GET /api/trips/:identifier/summary
//
// Derived read-only statistics for the final itinerary view. A store
// failure degrades to the bundled sample trip with a warning instead of
// blocking the page; an unknown identifier is still a 404.
func GetTripSummary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	identifier := ps.ByName("identifier")

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	trip, err := activeStore().Get(ctx, identifier)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	warning := ""
	if err != nil {
		log.Println("Error fetching trip for summary:", err)
		trip = itinerary.SampleTrip()
		warning = "Failed to load trip data. Showing sample itinerary."
	}

	resp := utils.M{
		"success": true,
		"data":    buildSummary(trip),
	}
	if warning != "" {
		resp["warning"] = warning
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

type daySchedule struct {
	Day        int               `json:"day"`
	Cost       float64           `json:"cost"`
	Activities []models.Activity `json:"activities"`
}

func buildSummary(trip *models.Trip) utils.M {
	days := make([]daySchedule, 0, trip.Duration)
	for day := 1; day <= trip.Duration; day++ {
		activities := itinerary.ActivitiesForDay(trip, day)
		if activities == nil {
			activities = []models.Activity{}
		}
		days = append(days, daySchedule{
			Day:        day,
			Cost:       itinerary.CostForDay(trip, day),
			Activities: activities,
		})
	}

	return utils.M{
		"title":               trip.Title,
		"slug":                trip.Slug,
		"duration":            trip.Duration,
		"totalPlaces":         len(trip.Places),
		"totalAccommodations": len(trip.Accommodations),
		"totalCost":           itinerary.TotalCost(trip),
		"costByCategory":      itinerary.CostByType(trip),
		"days":                days,
	}
}
