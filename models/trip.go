package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCoverImage is used when a trip is created without a cover image.
const DefaultCoverImage = "https://images.pexels.com/photos/2166553/pexels-photo-2166553.jpeg?auto=compress&cs=tinysrgb&w=1200"

const (
	MinDuration = 1
	MaxDuration = 30
)

// Activity types
const (
	ActivityTypeActivity       = "activity"
	ActivityTypeDining         = "dining"
	ActivityTypeTransportation = "transportation"
)

// Tip categories
const (
	TipCategoryCustoms  = "customs"
	TipCategoryScams    = "scams"
	TipCategoryLanguage = "language"
	TipCategorySafety   = "safety"
	TipCategoryMoney    = "money"
	TipCategoryGeneral  = "general"
)

// Tip priorities
const (
	TipPriorityLow    = "low"
	TipPriorityMedium = "medium"
	TipPriorityHigh   = "high"
)

// Trip is the root document describing one travel itinerary.
type Trip struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title" validate:"required"`
	Duration       int                `json:"duration" bson:"duration" validate:"required,min=1,max=30"`
	CoverImage     string             `json:"coverImage" bson:"coverImage"`
	Places         []Place            `json:"places" bson:"places" validate:"dive"`
	Accommodations []Accommodation    `json:"accommodations" bson:"accommodations" validate:"dive"`
	Activities     []Activity         `json:"activities" bson:"activities" validate:"dive"`
	Tips           []TipWarning       `json:"tips" bson:"tips" validate:"dive"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	IsPublic       *bool              `json:"isPublic,omitempty" bson:"isPublic"`
	Slug           string             `json:"slug,omitempty" bson:"slug,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// GeoPoint is a lat/lng pair.
type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Place is a point of interest tied to a day of the trip.
type Place struct {
	Day      int      `json:"day" bson:"day" validate:"required,min=1"`
	Location GeoPoint `json:"location" bson:"location"`
	Name     string   `json:"name" bson:"name" validate:"required"`
}

// Accommodation is a stay spanning a day range. The id is assigned by the
// client for list editing in the wizard; it is not a database identity.
type Accommodation struct {
	LocalID  string   `json:"id" bson:"id" validate:"required"`
	Name     string   `json:"name" bson:"name" validate:"required"`
	StartDay int      `json:"startDay" bson:"startDay" validate:"required,min=1"`
	EndDay   int      `json:"endDay" bson:"endDay" validate:"required,gtefield=StartDay"`
	Link     string   `json:"link" bson:"link"`
	Images   []string `json:"images" bson:"images"`
}

// Activity is a single scheduled event on a day.
type Activity struct {
	LocalID     string   `json:"id" bson:"id" validate:"required"`
	Day         int      `json:"day" bson:"day" validate:"required,min=1"`
	Type        string   `json:"type" bson:"type" validate:"required,oneof=activity dining transportation"`
	Time        string   `json:"time" bson:"time" validate:"required"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
	Cost        float64  `json:"cost" bson:"cost" validate:"min=0"`
	Link        string   `json:"link" bson:"link"`
	Images      []string `json:"images" bson:"images"`
}

// TipWarning is an advisory note attached to a trip.
type TipWarning struct {
	LocalID     string `json:"id" bson:"id" validate:"required"`
	Category    string `json:"category" bson:"category" validate:"required,oneof=customs scams language safety money general"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
	Priority    string `json:"priority" bson:"priority" validate:"required,oneof=low medium high"`
}

// TripSummary is the projection returned by the list endpoint. Full
// activity/accommodation/tip detail is deliberately not included.
type TripSummary struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Title      string             `json:"title" bson:"title"`
	Duration   int                `json:"duration" bson:"duration"`
	CoverImage string             `json:"coverImage" bson:"coverImage"`
	Places     []Place            `json:"places" bson:"places"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	Slug       string             `json:"slug,omitempty" bson:"slug,omitempty"`
}

// ApplyDefaults fills creation-time defaults: stock cover image, anonymous
// creator, public trip, empty child slices.
func (t *Trip) ApplyDefaults() {
	if t.CoverImage == "" {
		t.CoverImage = DefaultCoverImage
	}
	if t.CreatedBy == "" {
		t.CreatedBy = "anonymous"
	}
	if t.IsPublic == nil {
		public := true
		t.IsPublic = &public
	}
	if t.Places == nil {
		t.Places = []Place{}
	}
	if t.Accommodations == nil {
		t.Accommodations = []Accommodation{}
	}
	if t.Activities == nil {
		t.Activities = []Activity{}
	}
	if t.Tips == nil {
		t.Tips = []TipWarning{}
	}
}
