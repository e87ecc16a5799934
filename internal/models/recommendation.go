package models

// Category groups priced options
type Category string

const (
	CategoryLodging    Category = "lodging"
	CategoryDining     Category = "dining"
	CategoryAttraction Category = "attraction"
	CategoryTransport  Category = "transport"
)

// Tier is a named cost class within a category
type Tier string

const (
	TierBudget   Tier = "budget"
	TierStandard Tier = "standard"
	TierLuxury   Tier = "luxury"
)

// PricedOption is one concrete, costed offer
type PricedOption struct {
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Tier         Tier     `json:"tier"`
	UnitPrice    float64  `json:"unit_price"`
	TotalPrice   float64  `json:"total_price"`
	QualityScore float64  `json:"quality_score"`
	Details      []string `json:"details,omitempty"`
}

// Attraction is a curated place to visit
type Attraction struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	QualityScore float64 `json:"quality_score"`
	Description  string  `json:"description"`
	MustVisit    bool    `json:"must_visit"`
}

// Weather is the weather context shown next to a recommendation
type Weather struct {
	Condition     string `json:"condition"`
	Temperature   int    `json:"temperature"`
	Precipitation int    `json:"precipitation"`
	Humidity      int    `json:"humidity"`
}

// BudgetSummary is the aggregated estimate compared to the traveler's ceiling
type BudgetSummary struct {
	PerCategoryTotal    map[Category]float64 `json:"per_category_total"`
	Selections          map[Category]string  `json:"selections"`
	GrandTotal          float64              `json:"grand_total"`
	MaxBudget           float64              `json:"max_budget"`
	VarianceFromCeiling float64              `json:"variance_from_ceiling"`
	OverBudget          bool                 `json:"over_budget"`
}

// Recommendation is the computed output handed to presenters
type Recommendation struct {
	StayNights        int            `json:"stay_nights"`
	HotelOptions      []PricedOption `json:"hotel_options"`
	RestaurantOptions []PricedOption `json:"restaurant_options"`
	Attractions       []Attraction   `json:"attractions"`
	TravelModes       []PricedOption `json:"travel_modes"`
	Weather           Weather        `json:"weather"`
	Budget            BudgetSummary  `json:"budget"`
}
