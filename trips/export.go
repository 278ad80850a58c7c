package trips

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"evora/globals"
	"evora/itinerary"
	"evora/utils"
)

// GET /api/trips/:identifier/qr
//
// PNG QR code pointing at the public share URL for the trip.
func TripQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	identifier := ps.ByName("identifier")

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	trip, err := activeStore().Get(ctx, identifier)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		utils.RespondWithStoreError(w, "Failed to fetch trip", err)
		return
	}

	shareBase := globals.Getenv("SHARE_BASE_URL", "https://evora-travel.netlify.app")
	shareURL := fmt.Sprintf("%s/itinerary/%s", shareBase, trip.Slug)

	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}

// GET /api/trips/:identifier/pdf
//
// Printable day-by-day itinerary with cost totals.
func TripPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	identifier := ps.ByName("identifier")

	ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
	defer cancel()

	trip, err := activeStore().Get(ctx, identifier)
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if err != nil {
		utils.RespondWithStoreError(w, "Failed to fetch trip", err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, trip.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d days - total cost $%.2f", trip.Duration, itinerary.TotalCost(trip)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for day := 1; day <= trip.Duration; day++ {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 9, fmt.Sprintf("Day %d ($%.2f)", day, itinerary.CostForDay(trip, day)), "", 1, "L", false, 0, "")

		activities := itinerary.ActivitiesForDay(trip, day)
		if len(activities) == 0 {
			pdf.SetFont("Arial", "I", 10)
			pdf.CellFormat(0, 7, "Nothing scheduled", "", 1, "L", false, 0, "")
			pdf.Ln(2)
			continue
		}

		pdf.SetFont("Arial", "", 10)
		for _, a := range activities {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s  %s - %s ($%.2f)", a.Time, a.Title, a.Type, a.Cost), "", 1, "L", false, 0, "")
			pdf.MultiCell(0, 5, a.Description, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(trip.Tips) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 9, "Tips & Warnings", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, tip := range trip.Tips {
			pdf.CellFormat(0, 6, fmt.Sprintf("[%s/%s] %s", tip.Category, tip.Priority, tip.Title), "", 1, "L", false, 0, "")
			pdf.MultiCell(0, 5, tip.Description, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+trip.Slug+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
