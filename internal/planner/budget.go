package planner

import (
	"fmt"
	"strings"

	"TRIPWISE_BACK-END/internal/models"
	"TRIPWISE_BACK-END/internal/utils"
)

// TierSelector picks the option that forms the cost basis of a category
type TierSelector interface {
	Select(options []models.PricedOption) (models.PricedOption, error)
	Name() string
}

// CheapestTier selects the option with the lowest total price
type CheapestTier struct{}

func (CheapestTier) Name() string { return "cheapest" }

func (CheapestTier) Select(options []models.PricedOption) (models.PricedOption, error) {
	if len(options) == 0 {
		return models.PricedOption{}, ErrNoOptions
	}
	best := options[0]
	for _, o := range options[1:] {
		if o.TotalPrice < best.TotalPrice {
			best = o
		}
	}
	return best, nil
}

// TierByLabel selects the option with a fixed tier label
type TierByLabel struct {
	Tier models.Tier
}

func (s TierByLabel) Name() string { return string(s.Tier) }

func (s TierByLabel) Select(options []models.PricedOption) (models.PricedOption, error) {
	if len(options) == 0 {
		return models.PricedOption{}, ErrNoOptions
	}
	for _, o := range options {
		if o.Tier == s.Tier {
			return o, nil
		}
	}
	return models.PricedOption{}, fmt.Errorf("no %s option in %s", s.Tier, options[0].Category)
}

// ParseTierSelector maps a config value to a selector
func ParseTierSelector(value string) (TierSelector, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "cheapest":
		return CheapestTier{}, nil
	case string(models.TierBudget):
		return TierByLabel{Tier: models.TierBudget}, nil
	case string(models.TierStandard):
		return TierByLabel{Tier: models.TierStandard}, nil
	case string(models.TierLuxury):
		return TierByLabel{Tier: models.TierLuxury}, nil
	default:
		return nil, fmt.Errorf("unknown tier strategy %q", value)
	}
}

// Aggregate reduces priced options to a budget summary.
// Either every category resolves or no summary is produced.
func Aggregate(
	lodging []models.PricedOption,
	dining []models.PricedOption,
	attractions []models.Attraction,
	transport []models.PricedOption,
	maxBudget float64,
	selector TierSelector,
) (models.BudgetSummary, error) {
	if selector == nil {
		selector = CheapestTier{}
	}

	perCategory := make(map[models.Category]float64, 4)
	selections := make(map[models.Category]string, 3)
	tiered := []struct {
		category models.Category
		options  []models.PricedOption
	}{
		{models.CategoryLodging, lodging},
		{models.CategoryDining, dining},
		{models.CategoryTransport, transport},
	}
	for _, t := range tiered {
		picked, err := selector.Select(t.options)
		if err != nil {
			return models.BudgetSummary{}, fmt.Errorf("select %s: %w", t.category, err)
		}
		perCategory[t.category] = picked.TotalPrice
		selections[t.category] = picked.Name
	}

	var attractionsTotal float64
	for _, a := range attractions {
		attractionsTotal += a.Price
	}
	perCategory[models.CategoryAttraction] = utils.Round(attractionsTotal)

	var grand float64
	for _, v := range perCategory {
		grand += v
	}
	grand = utils.Round(grand)
	variance := utils.Round(maxBudget - grand)

	return models.BudgetSummary{
		PerCategoryTotal:    perCategory,
		Selections:          selections,
		GrandTotal:          grand,
		MaxBudget:           maxBudget,
		VarianceFromCeiling: variance,
		OverBudget:          variance < 0,
	}, nil
}
