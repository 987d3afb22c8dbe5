package itinerary

import (
	"bytes"
	"fmt"

	"biffguide/festival"
	"biffguide/models"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// BuildPDF renders a saved plan as an A4 document: title, traveler
// metadata, one section per day with its timed activities, and a QR link to
// the official festival site.
func BuildPDF(plan models.Plan, traveler models.TravelerInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	_, pageHeight := pdf.GetPageSize()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "BIFF 29th Travel Itinerary")
	pdf.Ln(16)

	// QR link to the official site, top right.
	qrPNG, err := qrcode.Encode(festival.Info.OfficialSite, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("site-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("site-qr", 165, 10, 30, 30, false, opts, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Traveler: %s", traveler.Name))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Duration: %d days", traveler.Days))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Budget: %s", traveler.Budget))
	pdf.Ln(8)
	if plan.TotalBudget > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Estimated total: %d KRW", plan.TotalBudget))
		pdf.Ln(8)
	}
	pdf.Ln(6)

	for _, day := range plan.Itinerary {
		if pdf.GetY() > pageHeight-40 {
			pdf.AddPage()
		}
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d: %s", day.Day, day.Theme))
		pdf.Ln(10)

		pdf.SetFont("Arial", "", 10)
		for _, activity := range day.Schedule {
			if pdf.GetY() > pageHeight-25 {
				pdf.AddPage()
				pdf.SetFont("Arial", "", 10)
			}
			pdf.CellFormat(0, 6,
				fmt.Sprintf("%s - %s (%s)", activity.Time, activity.Activity, activity.Location),
				"", 1, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
