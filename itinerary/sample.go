package itinerary

import (
	"evora/models"
)

// SampleTrip returns the bundled Bali itinerary served when a stored trip
// cannot be fetched. The summary endpoint degrades to it rather than
// failing the page.
func SampleTrip() *models.Trip {
	public := true
	return &models.Trip{
		Slug:       "magical-bali-adventure",
		Title:      "7 Days in Magical Bali",
		Duration:   7,
		CoverImage: models.DefaultCoverImage,
		CreatedBy:  "anonymous",
		IsPublic:   &public,
		Places: []models.Place{
			{Day: 1, Location: models.GeoPoint{Lat: -8.3405, Lng: 115.0920}, Name: "Ngurah Rai International Airport, Denpasar, Bali, Indonesia"},
			{Day: 2, Location: models.GeoPoint{Lat: -8.5069, Lng: 115.2625}, Name: "Sacred Monkey Forest Sanctuary, Ubud, Bali, Indonesia"},
			{Day: 3, Location: models.GeoPoint{Lat: -8.4095, Lng: 115.1889}, Name: "Tegallalang Rice Terraces, Ubud, Bali, Indonesia"},
			{Day: 4, Location: models.GeoPoint{Lat: -8.8303, Lng: 115.0892}, Name: "Uluwatu Temple, Pecatu, Badung Regency, Bali, Indonesia"},
			{Day: 5, Location: models.GeoPoint{Lat: -8.6500, Lng: 115.1372}, Name: "Mount Batur, Kintamani, Bangli Regency, Bali, Indonesia"},
		},
		Accommodations: []models.Accommodation{
			{
				LocalID:  "1",
				Name:     "Luxury Villa Ubud",
				StartDay: 1,
				EndDay:   4,
				Link:     "https://booking.com/villa-ubud",
				Images:   []string{"https://images.pexels.com/photos/1134176/pexels-photo-1134176.jpeg?auto=compress&cs=tinysrgb&w=800"},
			},
			{
				LocalID:  "2",
				Name:     "Beachfront Resort Seminyak",
				StartDay: 5,
				EndDay:   7,
				Link:     "https://booking.com/seminyak-resort",
				Images:   []string{"https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg?auto=compress&cs=tinysrgb&w=800"},
			},
		},
		Activities: []models.Activity{
			{
				LocalID: "1", Day: 1, Type: models.ActivityTypeTransportation, Time: "14:00",
				Title:       "Airport Transfer to Ubud",
				Description: "Private car transfer from Ngurah Rai Airport to Ubud villa",
				Cost:        35, Link: "https://klook.com/airport-transfer", Images: []string{},
			},
			{
				LocalID: "2", Day: 2, Type: models.ActivityTypeActivity, Time: "09:00",
				Title:       "Ubud Monkey Forest Sanctuary",
				Description: "Explore the sacred monkey forest sanctuary and ancient temples",
				Cost:        5, Link: "https://monkeyforestubud.com", Images: []string{},
			},
			{
				LocalID: "3", Day: 2, Type: models.ActivityTypeDining, Time: "12:30",
				Title:       "Lunch at Locavore Restaurant",
				Description: "Award-winning restaurant featuring modern Indonesian cuisine",
				Cost:        85, Link: "https://locavore.co.id", Images: []string{},
			},
			{
				LocalID: "4", Day: 3, Type: models.ActivityTypeActivity, Time: "06:00",
				Title:       "Sunrise at Tegallalang Rice Terraces",
				Description: "Watch the sunrise over the famous stepped rice terraces",
				Cost:        10, Images: []string{},
			},
			{
				LocalID: "5", Day: 4, Type: models.ActivityTypeActivity, Time: "16:00",
				Title:       "Uluwatu Temple Sunset",
				Description: "Visit the clifftop temple and watch traditional Kecak dance performance",
				Cost:        25, Link: "https://uluwatu-temple.com", Images: []string{},
			},
		},
		Tips: []models.TipWarning{
			{
				LocalID: "1", Category: models.TipCategoryCustoms, Priority: models.TipPriorityHigh,
				Title:       "Temple Etiquette",
				Description: "Always wear a sarong when entering temples. Remove shoes and hats as a sign of respect.",
			},
			{
				LocalID: "2", Category: models.TipCategoryScams, Priority: models.TipPriorityHigh,
				Title:       "Taxi Scams at Airport",
				Description: "Use official airport taxis or pre-booked transfers. Avoid unofficial drivers who approach you.",
			},
			{
				LocalID: "3", Category: models.TipCategoryMoney, Priority: models.TipPriorityMedium,
				Title:       "Currency and Payments",
				Description: "Indonesian Rupiah (IDR) is the local currency. Many places accept cards, but carry cash for local markets.",
			},
		},
	}
}
