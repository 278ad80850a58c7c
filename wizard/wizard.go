// Package wizard drives the five-phase trip creation flow. It accumulates
// a single draft trip, guards phase transitions, and submits the finished
// draft through the trip creation path exactly once.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"evora/models"
	"evora/utils"
)

type Phase int

const (
	PhaseBasicInfo Phase = iota + 1
	PhasePlaces
	PhaseAccommodations
	PhaseItinerary
	PhaseTipsAndWarnings
	// PhaseSubmitted is the exit state entered after a successful Finish.
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseBasicInfo:
		return "BasicInfo"
	case PhasePlaces:
		return "Places"
	case PhaseAccommodations:
		return "Accommodations"
	case PhaseItinerary:
		return "Itinerary"
	case PhaseTipsAndWarnings:
		return "TipsAndWarnings"
	case PhaseSubmitted:
		return "Submitted"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

var (
	ErrTitleRequired    = errors.New("trip title is required")
	ErrWrongPhase       = errors.New("operation not available in this phase")
	ErrAlreadySubmitted = errors.New("trip already submitted")
)

// MissingFieldError names the draft field that failed validation at
// Finish. The wizard has already jumped back to BasicInfo when it is
// returned.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// Unresolved map-click placeholders are dropped at Finish: names the
// search lookup never resolved start with "Location " or are too short to
// be a real place description.
const (
	placeholderPrefix = "Location "
	minPlaceNameLen   = 3
)

// Creator submits a finished draft. The trips package provides the
// production implementation.
type Creator interface {
	Create(ctx context.Context, draft *models.Trip) (*models.Trip, error)
}

// Wizard is the creation state machine. It is not safe for concurrent
// use; one wizard belongs to one editing session.
type Wizard struct {
	phase   Phase
	draft   models.Trip
	creator Creator
	result  *models.Trip
}

func New(creator Creator) *Wizard {
	return &Wizard{
		phase: PhaseBasicInfo,
		draft: models.Trip{
			Places:         []models.Place{},
			Accommodations: []models.Accommodation{},
			Activities:     []models.Activity{},
			Tips:           []models.TipWarning{},
		},
		creator: creator,
	}
}

func (w *Wizard) Phase() Phase { return w.phase }

// Draft exposes the accumulated draft for rendering.
func (w *Wizard) Draft() *models.Trip { return &w.draft }

// Result returns the stored trip after a successful Finish, nil before.
func (w *Wizard) Result() *models.Trip { return w.result }

// Next advances one phase. Leaving BasicInfo requires a non-empty trimmed
// title; every other forward transition is unconditional.
func (w *Wizard) Next() error {
	switch w.phase {
	case PhaseBasicInfo:
		if strings.TrimSpace(w.draft.Title) == "" {
			return ErrTitleRequired
		}
	case PhaseTipsAndWarnings, PhaseSubmitted:
		return ErrWrongPhase
	}
	w.phase++
	return nil
}

// Back moves one phase back. Always allowed before submission and never
// discards data entered in later phases.
func (w *Wizard) Back() error {
	if w.phase <= PhaseBasicInfo || w.phase == PhaseSubmitted {
		return ErrWrongPhase
	}
	w.phase--
	return nil
}

// --- BasicInfo phase ---

func (w *Wizard) SetTitle(title string) error {
	if w.phase != PhaseBasicInfo {
		return ErrWrongPhase
	}
	w.draft.Title = strings.TrimSpace(title)
	return nil
}

func (w *Wizard) SetDuration(days int) error {
	if w.phase != PhaseBasicInfo {
		return ErrWrongPhase
	}
	w.draft.Duration = days
	return nil
}

func (w *Wizard) SetCoverImage(image string) error {
	if w.phase != PhaseBasicInfo {
		return ErrWrongPhase
	}
	w.draft.CoverImage = image
	return nil
}

// --- Places phase ---

func (w *Wizard) AddPlace(day int, lat, lng float64, name string) error {
	if w.phase != PhasePlaces {
		return ErrWrongPhase
	}
	w.draft.Places = append(w.draft.Places, models.Place{
		Day:      day,
		Location: models.GeoPoint{Lat: lat, Lng: lng},
		Name:     name,
	})
	return nil
}

func (w *Wizard) RemovePlace(index int) error {
	if w.phase != PhasePlaces {
		return ErrWrongPhase
	}
	if index < 0 || index >= len(w.draft.Places) {
		return fmt.Errorf("no place at index %d", index)
	}
	w.draft.Places = append(w.draft.Places[:index], w.draft.Places[index+1:]...)
	return nil
}

// --- Accommodations phase ---

// AddAccommodation appends a stay and returns its draft-local id.
func (w *Wizard) AddAccommodation(name string, startDay, endDay int, link string, images []string) (string, error) {
	if w.phase != PhaseAccommodations {
		return "", ErrWrongPhase
	}
	if images == nil {
		images = []string{}
	}
	id := utils.GetUUID()
	w.draft.Accommodations = append(w.draft.Accommodations, models.Accommodation{
		LocalID:  id,
		Name:     name,
		StartDay: startDay,
		EndDay:   endDay,
		Link:     link,
		Images:   images,
	})
	return id, nil
}

func (w *Wizard) RemoveAccommodation(id string) error {
	if w.phase != PhaseAccommodations {
		return ErrWrongPhase
	}
	for i, a := range w.draft.Accommodations {
		if a.LocalID == id {
			w.draft.Accommodations = append(w.draft.Accommodations[:i], w.draft.Accommodations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no accommodation with id %s", id)
}

// --- Itinerary phase ---

func (w *Wizard) AddActivity(a models.Activity) (string, error) {
	if w.phase != PhaseItinerary {
		return "", ErrWrongPhase
	}
	a.LocalID = utils.GetUUID()
	if a.Images == nil {
		a.Images = []string{}
	}
	w.draft.Activities = append(w.draft.Activities, a)
	return a.LocalID, nil
}

func (w *Wizard) RemoveActivity(id string) error {
	if w.phase != PhaseItinerary {
		return ErrWrongPhase
	}
	for i, a := range w.draft.Activities {
		if a.LocalID == id {
			w.draft.Activities = append(w.draft.Activities[:i], w.draft.Activities[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no activity with id %s", id)
}

// --- TipsAndWarnings phase ---

func (w *Wizard) AddTip(t models.TipWarning) (string, error) {
	if w.phase != PhaseTipsAndWarnings {
		return "", ErrWrongPhase
	}
	t.LocalID = utils.GetUUID()
	w.draft.Tips = append(w.draft.Tips, t)
	return t.LocalID, nil
}

func (w *Wizard) RemoveTip(id string) error {
	if w.phase != PhaseTipsAndWarnings {
		return ErrWrongPhase
	}
	for i, t := range w.draft.Tips {
		if t.LocalID == id {
			w.draft.Tips = append(w.draft.Tips[:i], w.draft.Tips[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no tip with id %s", id)
}

// Finish submits the draft. Skipping the tips phase and finishing are the
// same transition.
//
// Failure semantics: a missing title or duration jumps the wizard back to
// BasicInfo naming the field, all other phase data intact. A submission
// failure keeps the wizard in TipsAndWarnings so Finish can simply be
// called again.
func (w *Wizard) Finish(ctx context.Context) (*models.Trip, error) {
	if w.phase == PhaseSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if w.phase != PhaseTipsAndWarnings {
		return nil, ErrWrongPhase
	}

	if strings.TrimSpace(w.draft.Title) == "" {
		w.phase = PhaseBasicInfo
		return nil, &MissingFieldError{Field: "title"}
	}
	if w.draft.Duration < 1 {
		w.phase = PhaseBasicInfo
		return nil, &MissingFieldError{Field: "duration"}
	}

	submission := w.draft
	submission.Places = filterPlaceholderPlaces(w.draft.Places)

	created, err := w.creator.Create(ctx, &submission)
	if err != nil {
		return nil, err
	}

	w.phase = PhaseSubmitted
	w.result = created
	return created, nil
}

func filterPlaceholderPlaces(places []models.Place) []models.Place {
	kept := make([]models.Place, 0, len(places))
	for _, p := range places {
		name := strings.TrimSpace(p.Name)
		if strings.HasPrefix(name, placeholderPrefix) || len(name) < minPlaceNameLen {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
