package planner

import (
	"strings"

	"TRIPWISE_BACK-END/internal/models"
)

// Standard-tier base budgets used for the quick estimate shown before submission
const (
	estimateHotelPerNight       = 3000
	estimateFoodPerPersonPerDay = 1000
	estimateTransportPerDay     = 300
	estimateAttractionsPerDay   = 500
	estimatePerMustVisitPlace   = 300
)

// Estimate is a rough pre-submission budget
type Estimate struct {
	PerCategoryTotal map[models.Category]float64 `json:"per_category_total"`
	Total            float64                     `json:"total"`
}

// EstimateBudget computes the preview from partial form input.
// It returns a zero estimate until destination, duration and party size are set.
func EstimateBudget(destination string, maxDurationDays, numPeople int, mustVisitPlaces []string) Estimate {
	if strings.TrimSpace(destination) == "" || maxDurationDays < 1 || numPeople < 1 {
		return Estimate{PerCategoryTotal: map[models.Category]float64{}}
	}

	days := float64(maxDurationDays)
	per := map[models.Category]float64{
		models.CategoryLodging:    days * estimateHotelPerNight,
		models.CategoryDining:     days * float64(numPeople) * estimateFoodPerPersonPerDay,
		models.CategoryTransport:  days * estimateTransportPerDay,
		models.CategoryAttraction: days*estimateAttractionsPerDay + float64(len(uniquePlaces(mustVisitPlaces)))*estimatePerMustVisitPlace,
	}

	var total float64
	for _, v := range per {
		total += v
	}
	return Estimate{PerCategoryTotal: per, Total: total}
}
