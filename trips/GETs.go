package trips

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"evora/rdx"
	"evora/utils"
)

// GET /api/trips
func GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	cacheable := opts.Page == 1 && opts.Limit == 10 && opts.Search == ""

	if cacheable {
		if cached, _ := rdx.RdxGet(listCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	summaries, total, err := activeStore().List(ctx, ListQuery{
		Page:   opts.Page,
		Limit:  opts.Limit,
		Search: opts.Search,
	})
	if err != nil {
		log.Println("Error fetching trips:", err)
		utils.RespondWithStoreError(w, "Failed to fetch trips", err)
		return
	}

	resp := utils.M{
		"success": true,
		"data":    summaries,
		"pagination": utils.M{
			"page":  opts.Page,
			"limit": opts.Limit,
			"total": total,
			"pages": utils.TotalPages(total, opts.Limit),
		},
	}

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			rdx.RdxSet(listCacheKey, string(data))
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/trips/:identifier resolves slug first, then primary key.
func GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	identifier := ps.ByName("identifier")

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	trip, err := activeStore().Get(ctx, identifier)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		log.Println("Error fetching trip:", err)
		utils.RespondWithStoreError(w, "Failed to fetch trip", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    trip,
	})
}
