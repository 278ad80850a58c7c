package trips

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"evora/models"
)

var validate = validator.New()

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses non-alphanumeric runs to single
// hyphens and strips leading/trailing hyphens.
func Slugify(title string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// NewSlug derives the creation-time slug for a trip: the slugified title
// suffixed with the creation timestamp so repeated titles stay unique.
func NewSlug(title string, now time.Time) string {
	return fmt.Sprintf("%s-%d", Slugify(title), now.UnixMilli())
}

// missingRequired reports whether the create-level required fields are
// absent. The richer per-field rules are left to the schema validator.
func missingRequired(t *models.Trip) bool {
	return strings.TrimSpace(t.Title) == "" || t.Duration == 0
}

// validateTrip applies the document schema rules: enum membership, numeric
// ranges, nested required fields. A failure rejects the whole write.
func validateTrip(t *models.Trip) error {
	return validate.Struct(t)
}

// dayBoundWarnings lists child entities whose day indexes fall outside the
// trip duration. The bounds are advisory only; the schema still accepts
// such documents.
func dayBoundWarnings(t *models.Trip) []string {
	var warnings []string
	for _, p := range t.Places {
		if p.Day > t.Duration {
			warnings = append(warnings, fmt.Sprintf("place %q is on day %d of a %d-day trip", p.Name, p.Day, t.Duration))
		}
	}
	for _, a := range t.Accommodations {
		if a.EndDay > t.Duration {
			warnings = append(warnings, fmt.Sprintf("accommodation %q ends on day %d of a %d-day trip", a.Name, a.EndDay, t.Duration))
		}
	}
	for _, a := range t.Activities {
		if a.Day > t.Duration {
			warnings = append(warnings, fmt.Sprintf("activity %q is on day %d of a %d-day trip", a.Title, a.Day, t.Duration))
		}
	}
	return warnings
}
