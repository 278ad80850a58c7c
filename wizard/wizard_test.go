package wizard

import (
	"context"
	"errors"
	"testing"

	"evora/models"
)

// fakeCreator records submissions and can be told to fail.
type fakeCreator struct {
	fail     error
	received *models.Trip
	calls    int
}

func (c *fakeCreator) Create(_ context.Context, draft *models.Trip) (*models.Trip, error) {
	c.calls++
	if c.fail != nil {
		return nil, c.fail
	}
	copied := *draft
	copied.Slug = "stored-slug"
	c.received = &copied
	return &copied, nil
}

func advanceTo(t *testing.T, w *Wizard, target Phase) {
	t.Helper()
	for w.Phase() < target {
		if err := w.Next(); err != nil {
			t.Fatalf("advance from %s: %v", w.Phase(), err)
		}
	}
}

func TestNextRequiresTitle(t *testing.T) {
	w := New(&fakeCreator{})

	if err := w.Next(); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if err := w.SetTitle("   "); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if err := w.Next(); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("whitespace title must not pass the guard, got %v", err)
	}

	w.SetTitle("Bali Trip")
	if err := w.Next(); err != nil {
		t.Fatalf("expected transition to Places, got %v", err)
	}
	if w.Phase() != PhasePlaces {
		t.Fatalf("expected Places, got %s", w.Phase())
	}
}

func TestBackPreservesLaterPhaseData(t *testing.T) {
	w := New(&fakeCreator{})
	w.SetTitle("Bali Trip")
	w.SetDuration(5)
	advanceTo(t, w, PhasePlaces)

	if err := w.AddPlace(1, -8.5, 115.26, "Ubud Market"); err != nil {
		t.Fatalf("AddPlace: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if w.Phase() != PhaseBasicInfo {
		t.Fatalf("expected BasicInfo after Back, got %s", w.Phase())
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next after Back: %v", err)
	}
	if len(w.Draft().Places) != 1 {
		t.Fatal("place entered before Back was lost")
	}
}

func TestBackFromFirstPhase(t *testing.T) {
	w := New(&fakeCreator{})
	if err := w.Back(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

func TestMutatorsGuardedByPhase(t *testing.T) {
	w := New(&fakeCreator{})
	w.SetTitle("Trip")

	if err := w.AddPlace(1, 0, 0, "Somewhere"); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("AddPlace in BasicInfo should fail, got %v", err)
	}
	if _, err := w.AddTip(models.TipWarning{}); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("AddTip in BasicInfo should fail, got %v", err)
	}

	advanceTo(t, w, PhasePlaces)
	if err := w.SetTitle("Changed"); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("SetTitle outside BasicInfo should fail, got %v", err)
	}
}

func TestRemoveByLocalID(t *testing.T) {
	w := New(&fakeCreator{})
	w.SetTitle("Trip")
	advanceTo(t, w, PhaseAccommodations)

	keep, err := w.AddAccommodation("Villa Ubud", 1, 5, "", nil)
	if err != nil {
		t.Fatalf("AddAccommodation: %v", err)
	}
	drop, err := w.AddAccommodation("Hostel", 1, 2, "", nil)
	if err != nil {
		t.Fatalf("AddAccommodation: %v", err)
	}
	if keep == drop {
		t.Fatal("accommodation ids must be unique")
	}

	if err := w.RemoveAccommodation(drop); err != nil {
		t.Fatalf("RemoveAccommodation: %v", err)
	}
	if err := w.RemoveAccommodation(drop); err == nil {
		t.Fatal("removing a missing id should fail")
	}
	if len(w.Draft().Accommodations) != 1 || w.Draft().Accommodations[0].LocalID != keep {
		t.Fatalf("unexpected accommodations: %+v", w.Draft().Accommodations)
	}
}

func TestFullFlow(t *testing.T) {
	creator := &fakeCreator{}
	w := New(creator)

	w.SetTitle("Bali Trip")
	w.SetDuration(5)

	advanceTo(t, w, PhasePlaces)
	if err := w.AddPlace(3, -8.5, 115.26, "Sacred Monkey Forest Sanctuary"); err != nil {
		t.Fatalf("AddPlace: %v", err)
	}

	advanceTo(t, w, PhaseAccommodations)
	if _, err := w.AddAccommodation("Villa Ubud", 1, 5, "", nil); err != nil {
		t.Fatalf("AddAccommodation: %v", err)
	}

	advanceTo(t, w, PhaseItinerary)
	if _, err := w.AddActivity(models.Activity{
		Day: 3, Type: models.ActivityTypeActivity, Time: "09:00",
		Title: "Forest walk", Description: "Morning walk", Cost: 20,
	}); err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	advanceTo(t, w, PhaseTipsAndWarnings)
	if _, err := w.AddTip(models.TipWarning{
		Category: models.TipCategoryCustoms, Title: "Dress modestly",
		Description: "Cover shoulders at temples", Priority: models.TipPriorityMedium,
	}); err != nil {
		t.Fatalf("AddTip: %v", err)
	}

	created, err := w.Finish(context.Background())
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if w.Phase() != PhaseSubmitted {
		t.Fatalf("expected Submitted, got %s", w.Phase())
	}
	if created.Slug != "stored-slug" {
		t.Fatalf("expected creator result returned, got %+v", created)
	}
	if creator.received.Title != "Bali Trip" || creator.received.Duration != 5 {
		t.Fatalf("submitted draft mismatch: %+v", creator.received)
	}
	if len(creator.received.Places) != 1 || len(creator.received.Activities) != 1 || len(creator.received.Tips) != 1 {
		t.Fatalf("submitted child entities mismatch: %+v", creator.received)
	}
	if got := w.Result(); got == nil || got.Slug != "stored-slug" {
		t.Fatalf("Result not stored: %+v", got)
	}

	if _, err := w.Finish(context.Background()); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("second Finish should fail, got %v", err)
	}
	if err := w.Next(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("Next after submit should fail, got %v", err)
	}
}

func TestFinishWithoutTipsEqualsSkip(t *testing.T) {
	creator := &fakeCreator{}
	w := New(creator)
	w.SetTitle("Quick Trip")
	w.SetDuration(2)
	advanceTo(t, w, PhaseTipsAndWarnings)

	if _, err := w.Finish(context.Background()); err != nil {
		t.Fatalf("Finish with no tips: %v", err)
	}
	if len(creator.received.Tips) != 0 {
		t.Fatalf("expected empty tips, got %+v", creator.received.Tips)
	}
}

func TestFinishDropsPlaceholderPlaces(t *testing.T) {
	creator := &fakeCreator{}
	w := New(creator)
	w.SetTitle("Trip")
	w.SetDuration(3)
	advanceTo(t, w, PhasePlaces)

	w.AddPlace(1, -8.5, 115.2, "Location -8.50, 115.20")
	w.AddPlace(1, 0, 0, "ab")
	w.AddPlace(2, -8.6, 115.1, "Tanah Lot")

	advanceTo(t, w, PhaseTipsAndWarnings)
	if _, err := w.Finish(context.Background()); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if len(creator.received.Places) != 1 || creator.received.Places[0].Name != "Tanah Lot" {
		t.Fatalf("placeholders not filtered: %+v", creator.received.Places)
	}
	// The draft itself keeps every entry.
	if len(w.Draft().Places) != 3 {
		t.Fatalf("draft mutated by Finish: %+v", w.Draft().Places)
	}
}

func TestFinishMissingFieldJumpsBack(t *testing.T) {
	w := New(&fakeCreator{})
	w.SetTitle("Trip")
	advanceTo(t, w, PhasePlaces)
	w.AddPlace(1, -8.5, 115.2, "Tanah Lot")
	advanceTo(t, w, PhaseTipsAndWarnings)

	_, err := w.Finish(context.Background())
	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "duration" {
		t.Fatalf("expected missing duration, got %v", err)
	}
	if w.Phase() != PhaseBasicInfo {
		t.Fatalf("expected jump to BasicInfo, got %s", w.Phase())
	}

	// Fix the field and walk forward again; nothing was discarded.
	w.SetDuration(4)
	advanceTo(t, w, PhaseTipsAndWarnings)
	if _, err := w.Finish(context.Background()); err != nil {
		t.Fatalf("Finish after fix: %v", err)
	}
}

func TestFinishRetryAfterCreatorFailure(t *testing.T) {
	creator := &fakeCreator{fail: errors.New("store down")}
	w := New(creator)
	w.SetTitle("Trip")
	w.SetDuration(3)
	advanceTo(t, w, PhaseTipsAndWarnings)

	if _, err := w.Finish(context.Background()); err == nil {
		t.Fatal("expected submission failure")
	}
	if w.Phase() != PhaseTipsAndWarnings {
		t.Fatalf("failed submit must stay in TipsAndWarnings, got %s", w.Phase())
	}

	creator.fail = nil
	if _, err := w.Finish(context.Background()); err != nil {
		t.Fatalf("retry Finish: %v", err)
	}
	if creator.calls != 2 {
		t.Fatalf("expected 2 submit attempts, got %d", creator.calls)
	}
}

func TestFinishBeforeLastPhase(t *testing.T) {
	w := New(&fakeCreator{})
	w.SetTitle("Trip")
	w.SetDuration(3)

	if _, err := w.Finish(context.Background()); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}
