package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/utils"
)

// Sheet names, in workbook order
const (
	SheetSummary     = "Summary"
	SheetLodging     = "Lodging"
	SheetDining      = "Dining"
	SheetAttractions = "Attractions"
	SheetTransport   = "Transport"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RecommendationWorkbook builds a workbook for a trip and its recommendation.
// The caller owns the returned file and must close it.
func RecommendationWorkbook(trip models.TripRecord, rec models.Recommendation, now time.Time) (*excelize.File, string, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, "", fmt.Errorf("create header style: %w", err)
	}

	steps := []struct {
		name  string
		build func() error
	}{
		{SheetSummary, func() error { return writeSummary(f, headerStyle, trip, rec) }},
		{SheetLodging, func() error { return writeOptions(f, headerStyle, SheetLodging, rec.HotelOptions) }},
		{SheetDining, func() error { return writeOptions(f, headerStyle, SheetDining, rec.RestaurantOptions) }},
		{SheetAttractions, func() error { return writeAttractions(f, headerStyle, rec.Attractions) }},
		{SheetTransport, func() error { return writeOptions(f, headerStyle, SheetTransport, rec.TravelModes) }},
	}
	for _, s := range steps {
		if _, err := f.NewSheet(s.name); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("create %s sheet: %w", s.name, err)
		}
		if err := s.build(); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("write %s sheet: %w", s.name, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("drop default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	filename := fmt.Sprintf("%s_Recommendation_%s.xlsx", utils.CleanFileName(trip.Destination), now.Format("2006-01-02"))
	return f, filename, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeHeader(f *excelize.File, style int, sheet string, row int, headers ...any) error {
	if err := writeRow(f, sheet, row, headers...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	return f.SetCellStyle(sheet, first, last, style)
}

func writeSummary(f *excelize.File, style int, trip models.TripRecord, rec models.Recommendation) error {
	sheet := SheetSummary
	rows := [][]any{
		{"Destination", trip.Destination},
		{"Dates", utils.FormatDate(trip.DateFrom) + " to " + utils.FormatDate(trip.DateTo)},
		{"Nights", rec.StayNights},
		{"Travelers", trip.NumPeople},
		{"Must-visit places", strings.Join(trip.MustVisitPlaces, ", ")},
		{"Weather", fmt.Sprintf("%s, %d°C, %d%% rain, %d%% humidity",
			rec.Weather.Condition, rec.Weather.Temperature, rec.Weather.Precipitation, rec.Weather.Humidity)},
	}
	for i, r := range rows {
		if err := writeRow(f, sheet, i+1, r...); err != nil {
			return err
		}
	}

	row := len(rows) + 2
	if err := writeHeader(f, style, sheet, row, "Category", "Selected", "Total"); err != nil {
		return err
	}
	b := rec.Budget
	for _, c := range []models.Category{models.CategoryLodging, models.CategoryDining, models.CategoryAttraction, models.CategoryTransport} {
		row++
		selected := b.Selections[c]
		if c == models.CategoryAttraction {
			selected = fmt.Sprintf("%d attractions", len(rec.Attractions))
		}
		if err := writeRow(f, sheet, row, string(c), selected, b.PerCategoryTotal[c]); err != nil {
			return err
		}
	}

	row += 2
	totals := [][]any{
		{"Grand total", "", b.GrandTotal},
		{"Budget", "", b.MaxBudget},
		{"Remaining", "", b.VarianceFromCeiling},
	}
	for _, r := range totals {
		if err := writeRow(f, sheet, row, r...); err != nil {
			return err
		}
		row++
	}
	if b.OverBudget {
		if err := writeRow(f, sheet, row, "Over budget"); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "C", 22)
}

func writeOptions(f *excelize.File, style int, sheet string, options []models.PricedOption) error {
	if err := writeHeader(f, style, sheet, 1, "Name", "Tier", "Unit Price", "Total Price", "Quality", "Details"); err != nil {
		return err
	}
	for i, o := range options {
		if err := writeRow(f, sheet, i+2, o.Name, string(o.Tier), o.UnitPrice, o.TotalPrice, o.QualityScore, strings.Join(o.Details, ", ")); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "F", 18)
}

func writeAttractions(f *excelize.File, style int, attractions []models.Attraction) error {
	sheet := SheetAttractions
	if err := writeHeader(f, style, sheet, 1, "Name", "Price", "Quality", "Must Visit", "Description"); err != nil {
		return err
	}
	for i, a := range attractions {
		if err := writeRow(f, sheet, i+2, a.Name, a.Price, a.QualityScore, a.MustVisit, a.Description); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", "D", 18); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "E", "E", 50)
}
