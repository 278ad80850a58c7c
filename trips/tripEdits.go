package trips

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"evora/rdx"
	"evora/utils"
)

// PUT /api/trips/:id
//
// The patch replaces the named fields on the existing document; schema
// validation is re-applied to the merged result before anything is
// written. Last write wins, there is no versioning.
func UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("identifier")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	trip, err := activeStore().GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		log.Println("Error fetching trip for update:", err)
		utils.RespondWithStoreError(w, "Failed to update trip", err)
		return
	}

	// Unmarshalling over the stored document merges only the fields the
	// patch names.
	if err := json.Unmarshal(body, trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if missingRequired(trip) {
		utils.RespondWithError(w, http.StatusBadRequest, errRequiredFields.Error())
		return
	}
	if err := validateTrip(trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, validationError{err}.Error())
		return
	}

	trip.UpdatedAt = time.Now().UTC()

	if err := activeStore().Replace(ctx, trip); err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
			return
		}
		log.Println("Error updating trip:", err)
		utils.RespondWithStoreError(w, "Failed to update trip", err)
		return
	}

	rdx.RdxDel(listCacheKey)
	utils.SendResponse(w, http.StatusOK, trip, "Trip updated successfully")
}

// DELETE /api/trips/:id
func DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("identifier")

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	err := activeStore().Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		log.Println("Error deleting trip:", err)
		utils.RespondWithStoreError(w, "Failed to delete trip", err)
		return
	}

	rdx.RdxDel(listCacheKey)
	utils.SendResponse(w, http.StatusOK, nil, "Trip deleted successfully")
}
