package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"evora/auth"
	"evora/db"
	"evora/geo"
	"evora/middleware"
	"evora/ratelim"
	"evora/trips"
	"evora/utils"
)

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/trips", rl.Limit(middleware.OptionalAuth(trips.CreateTrip)))
	router.GET("/api/trips", trips.GetTrips)
	router.GET("/api/trips/:identifier", trips.GetTrip)
	router.GET("/api/trips/:identifier/summary", trips.GetTripSummary)
	router.GET("/api/trips/:identifier/qr", trips.TripQR)
	router.GET("/api/trips/:identifier/pdf", trips.TripPDF)
	router.PUT("/api/trips/:identifier", rl.Limit(trips.UpdateTrip))
	router.DELETE("/api/trips/:identifier", rl.Limit(trips.DeleteTrip))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddGeoRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/geo/search", rl.Limit(geo.SearchHandler))
}

func AddUtilityRoutes(router *httprouter.Router) {
	router.GET("/api/health", HealthCheck)

	// Unmatched /api/* paths respond with the API 404 envelope.
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "API endpoint not found")
	})
}

// GET /api/health
func HealthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "disconnected"
	if db.Ping(ctx) {
		mongoStatus = "connected"
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":  "OK",
		"message": "Server is running",
		"mongodb": mongoStatus,
	})
}
