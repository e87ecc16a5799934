package planner

import (
	"fmt"
	"math"

	"TRIPWISE_BACK-END/internal/models"
)

// DefaultMinimumAttractions is how many attractions a recommendation aims for
const DefaultMinimumAttractions = 5

// Must-visit pricing and rating ranges
const (
	mustVisitBasePrice   = 100
	mustVisitPriceSpread = 300
	mustVisitMinQuality  = 4.0
)

// DefaultFallbackCatalog fills recommendations that have few must-visit places
var DefaultFallbackCatalog = []models.Attraction{
	{Name: "Local Museum", Price: 150, QualityScore: 4.2, Description: "Explore the rich culture and history of the region."},
	{Name: "Heritage Site", Price: 300, QualityScore: 4.6, Description: "Ancient site with historical significance."},
	{Name: "Adventure Park", Price: 500, QualityScore: 4.4, Description: "Fun activities for all age groups."},
	{Name: "Local Beach", Price: 0, QualityScore: 4.5, Description: "Relax on the beautiful sandy shores."},
	{Name: "City Tour", Price: 250, QualityScore: 4.3, Description: "Guided tour of the city's highlights."},
}

// AttractionCurator merges must-visit places with a fallback catalog
type AttractionCurator struct {
	catalog []models.Attraction
	random  RandomSource
}

// NewAttractionCurator builds a curator over the given catalog
func NewAttractionCurator(random RandomSource, catalog []models.Attraction) *AttractionCurator {
	return &AttractionCurator{catalog: append([]models.Attraction(nil), catalog...), random: random}
}

// Curate returns must-visit places first, then catalog entries until minimumCount is met
func (c *AttractionCurator) Curate(mustVisitPlaces []string, destination string, minimumCount int) []models.Attraction {
	rng := c.random.New(streamAttractions)

	out := make([]models.Attraction, 0, max(minimumCount, len(mustVisitPlaces)))
	present := make(map[string]bool, cap(out))
	for _, place := range mustVisitPlaces {
		if present[place] {
			continue
		}
		present[place] = true
		quality := math.Min(5, math.Round((mustVisitMinQuality+rng.Float64())*10)/10)
		out = append(out, models.Attraction{
			Name:         place,
			Price:        float64(mustVisitBasePrice + rng.IntN(mustVisitPriceSpread)),
			QualityScore: quality,
			Description:  fmt.Sprintf("A popular attraction in %s. Must-visit for tourists.", destination),
			MustVisit:    true,
		})
	}

	for _, a := range c.catalog {
		if len(out) >= minimumCount {
			break
		}
		if present[a.Name] {
			continue
		}
		present[a.Name] = true
		out = append(out, a)
	}
	return out
}
