package planner

import (
	"fmt"
	"math"
	"math/rand/v2"

	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/utils"
)

const (
	// MealsPerDay is the number of paid meals assumed per person per day
	MealsPerDay = 3
	// MaxPerturbation bounds rate fluctuation as a fraction of the base rate
	MaxPerturbation = 0.25
)

// RateCard is one tier of a category's price table
type RateCard struct {
	Name     string
	Tier     models.Tier
	BaseRate float64
	Quality  float64
	Details  []string
}

// RateTable holds the tiers of one category, cheapest first
type RateTable struct {
	Category models.Category
	Cards    []RateCard
	Perturb  bool
}

// DefaultLodging is priced per night
var DefaultLodging = RateTable{
	Category: models.CategoryLodging,
	Perturb:  true,
	Cards: []RateCard{
		{Name: "Budget Inn", Tier: models.TierBudget, BaseRate: 1200, Quality: 3.5,
			Details: []string{"Free WiFi", "Air Conditioning", "TV"}},
		{Name: "Comfort Stay", Tier: models.TierStandard, BaseRate: 2200, Quality: 4.2,
			Details: []string{"Free WiFi", "Air Conditioning", "Pool", "Breakfast", "Parking"}},
		{Name: "Luxury Resort", Tier: models.TierLuxury, BaseRate: 4500, Quality: 4.8,
			Details: []string{"Free WiFi", "Air Conditioning", "Pool", "Spa", "Restaurant", "Gym", "Room Service"}},
	},
}

// DefaultDining is priced per meal per person
var DefaultDining = RateTable{
	Category: models.CategoryDining,
	Perturb:  true,
	Cards: []RateCard{
		{Name: "Local Eats", Tier: models.TierBudget, BaseRate: 250, Quality: 4.0, Details: []string{"Local Indian"}},
		{Name: "Family Restaurant", Tier: models.TierStandard, BaseRate: 450, Quality: 4.3, Details: []string{"Multi-cuisine"}},
		{Name: "Fine Dining", Tier: models.TierLuxury, BaseRate: 800, Quality: 4.7, Details: []string{"Fine Dining"}},
	},
}

// DefaultTransport is a flat daily rate
var DefaultTransport = RateTable{
	Category: models.CategoryTransport,
	Cards: []RateCard{
		{Name: "Two Wheeler Rental", Tier: models.TierBudget, BaseRate: 500, Quality: 3.8},
		{Name: "Auto Rickshaw", Tier: models.TierStandard, BaseRate: 800, Quality: 4.1},
		{Name: "Cab", Tier: models.TierLuxury, BaseRate: 1200, Quality: 4.5},
	},
}

// PricedOptions are the priced lists for the tiered categories
type PricedOptions struct {
	Lodging   []models.PricedOption
	Dining    []models.PricedOption
	Transport []models.PricedOption
}

// PricingModel converts a validated request into priced options
type PricingModel struct {
	lodging   RateTable
	dining    RateTable
	transport RateTable
	random    RandomSource
}

// NewPricingModel validates the rate tables and builds a model
func NewPricingModel(random RandomSource, lodging, dining, transport RateTable) (*PricingModel, error) {
	for _, t := range []RateTable{lodging, dining, transport} {
		if err := t.validate(); err != nil {
			return nil, err
		}
	}
	return &PricingModel{lodging: lodging, dining: dining, transport: transport, random: random}, nil
}

// DefaultPricingModel uses the built-in rate tables
func DefaultPricingModel(random RandomSource) *PricingModel {
	m, err := NewPricingModel(random, DefaultLodging, DefaultDining, DefaultTransport)
	if err != nil {
		panic(err)
	}
	return m
}

func (t RateTable) validate() error {
	if len(t.Cards) == 0 {
		return fmt.Errorf("%s rate table is empty", t.Category)
	}
	for i, c := range t.Cards {
		if c.BaseRate <= 0 {
			return fmt.Errorf("%s tier %q: rate must be positive", t.Category, c.Tier)
		}
		if c.Quality < 0 || c.Quality > 5 {
			return fmt.Errorf("%s tier %q: quality must be within 0-5", t.Category, c.Tier)
		}
		if i > 0 && c.BaseRate <= t.Cards[i-1].BaseRate {
			return fmt.Errorf("%s tier %q: rates must be strictly increasing", t.Category, c.Tier)
		}
	}
	return nil
}

// StayNights is the number of whole nights between the trip dates
func StayNights(req models.TripRequest) int {
	return utils.DaysBetween(req.DateFrom, req.DateTo)
}

// Price produces lodging, dining and transport options for a stay
func (m *PricingModel) Price(req models.TripRequest, stayNights int) (PricedOptions, error) {
	if stayNights < 1 {
		return PricedOptions{}, ErrDegenerateStay
	}

	rng := m.random.New(streamPricing)
	return PricedOptions{
		Lodging:   m.lodging.price(rng, float64(stayNights)),
		Dining:    m.dining.price(rng, float64(req.NumPeople)*float64(stayNights)*MealsPerDay),
		Transport: m.transport.price(rng, float64(req.MaxDurationDays)),
	}, nil
}

func (t RateTable) price(rng *rand.Rand, units float64) []models.PricedOption {
	options := make([]models.PricedOption, 0, len(t.Cards))
	for _, c := range t.Cards {
		unit := c.BaseRate
		if t.Perturb {
			unit += math.Floor(rng.Float64() * MaxPerturbation * c.BaseRate)
		}
		options = append(options, models.PricedOption{
			Name:         c.Name,
			Category:     t.Category,
			Tier:         c.Tier,
			UnitPrice:    unit,
			TotalPrice:   utils.Round(unit * units),
			QualityScore: c.Quality,
			Details:      append([]string(nil), c.Details...),
		})
	}
	return options
}
