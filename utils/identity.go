package utils

import (
	"net/http"

	"evora/globals"
)

// GetUserIDFromRequest returns the session user id the auth middleware
// stored, or "" for anonymous requests.
func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}

// GetUsernameFromRequest returns the session username, or "" for anonymous
// requests.
func GetUsernameFromRequest(r *http.Request) string {
	username, ok := r.Context().Value(globals.UsernameKey).(string)
	if !ok {
		return ""
	}
	return username
}
