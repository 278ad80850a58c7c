package trips

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"evora/models"
	"evora/rdx"
	"evora/utils"
)

// listCacheKey caches the default first page of the trip index; any write
// drops it.
const listCacheKey = "trips:index"

// POST /api/trips
func CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if trip.CreatedBy == "" {
		trip.CreatedBy = utils.GetUsernameFromRequest(r)
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	created, err := CreateFromDraft(ctx, activeStore(), &trip)
	switch {
	case err == nil:
	case IsValidation(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	default:
		log.Println("Error creating trip:", err)
		utils.RespondWithStoreError(w, "Failed to create trip", err)
		return
	}

	rdx.RdxDel(listCacheKey)
	utils.SendResponse(w, http.StatusCreated, created, "Trip created successfully")
}

// DraftCreator lets the wizard submit drafts through the same creation
// lifecycle the HTTP endpoint uses.
type DraftCreator struct {
	S Store
}

func (c DraftCreator) Create(ctx context.Context, draft *models.Trip) (*models.Trip, error) {
	return CreateFromDraft(ctx, c.S, draft)
}

// CreateFromDraft runs the whole creation lifecycle over a draft: required
// field check, defaults, slug assignment, schema validation, insert. The
// wizard submits through this same path.
func CreateFromDraft(ctx context.Context, s Store, trip *models.Trip) (*models.Trip, error) {
	if missingRequired(trip) {
		return nil, errRequiredFields
	}

	trip.ApplyDefaults()

	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	// Slug is a creation-time default only; an explicit slug is kept as-is.
	if trip.Slug == "" {
		trip.Slug = NewSlug(trip.Title, now)
	}

	if err := validateTrip(trip); err != nil {
		return nil, validationError{err}
	}

	if warnings := dayBoundWarnings(trip); len(warnings) > 0 {
		log.Println("Trip day bounds exceeded:", warnings)
	}

	if err := s.Insert(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}
