package planner

import (
	"math"
	"strings"

	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/utils"
)

// Upper bounds. Counts and budget match the trips table columns.
const (
	MaxStayNights = 3650
	MaxCount      = math.MaxInt32
	MaxBudget     = 999_999_999_999.99
)

// Validate checks a trip request and returns its normalized form.
// Checks run in a fixed order so the first problem reported is stable.
func Validate(req models.TripRequest) (models.TripRequest, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return models.TripRequest{}, ErrMissingDestination
	}
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return models.TripRequest{}, ErrMissingDateRange
	}
	if !req.DateFrom.Before(req.DateTo) {
		return models.TripRequest{}, ErrInvalidDateOrder
	}
	if utils.DaysBetween(req.DateFrom, req.DateTo) > MaxStayNights {
		return models.TripRequest{}, ErrStayTooLong
	}
	if req.NumPeople < 1 || req.MaxDurationDays < 1 || req.NumPeople > MaxCount || req.MaxDurationDays > MaxCount {
		return models.TripRequest{}, ErrInvalidCount
	}
	if math.IsNaN(req.MaxBudget) || req.MaxBudget < 0 || utils.Round(req.MaxBudget) > MaxBudget {
		return models.TripRequest{}, ErrInvalidBudget
	}

	req.MustVisitPlaces = uniquePlaces(req.MustVisitPlaces)
	return req, nil
}

// uniquePlaces trims entries, drops blanks and keeps the first occurrence of each.
// Matching after the trim is exact and case-sensitive.
func uniquePlaces(places []string) []string {
	seen := make(map[string]bool, len(places))
	out := make([]string, 0, len(places))
	for _, p := range places {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
