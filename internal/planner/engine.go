package planner

import (
	"fmt"

	"TRIPWISE_BACK-END/internal/models"
)

// Options configures an Engine
type Options struct {
	Random             RandomSource
	TierSelector       TierSelector
	MinimumAttractions int
}

// Engine turns a resolved trip record into a priced recommendation
type Engine struct {
	pricing  *PricingModel
	curator  *AttractionCurator
	weather  *WeatherEstimator
	selector TierSelector
	minimum  int
}

// NewEngine wires the default tables and catalog
func NewEngine(opts Options) *Engine {
	if opts.TierSelector == nil {
		opts.TierSelector = CheapestTier{}
	}
	if opts.MinimumAttractions <= 0 {
		opts.MinimumAttractions = DefaultMinimumAttractions
	}
	return &Engine{
		pricing:  DefaultPricingModel(opts.Random),
		curator:  NewAttractionCurator(opts.Random, DefaultFallbackCatalog),
		weather:  NewWeatherEstimator(opts.Random),
		selector: opts.TierSelector,
		minimum:  opts.MinimumAttractions,
	}
}

// Recommend runs pricing, curation and aggregation for one trip
func (e *Engine) Recommend(record models.TripRecord) (models.Recommendation, error) {
	req := record.TripRequest
	nights := StayNights(req)

	priced, err := e.pricing.Price(req, nights)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("price trip: %w", err)
	}
	attractions := e.curator.Curate(req.MustVisitPlaces, req.Destination, e.minimum)

	budget, err := Aggregate(priced.Lodging, priced.Dining, attractions, priced.Transport, req.MaxBudget, e.selector)
	if err != nil {
		return models.Recommendation{}, fmt.Errorf("aggregate budget: %w", err)
	}

	return models.Recommendation{
		StayNights:        nights,
		HotelOptions:      priced.Lodging,
		RestaurantOptions: priced.Dining,
		Attractions:       attractions,
		TravelModes:       priced.Transport,
		Weather:           e.weather.Estimate(),
		Budget:            budget,
	}, nil
}
