package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPWISE_BACK-END/internal/models"
)

func opts(category models.Category, totals ...float64) []models.PricedOption {
	tiers := []models.Tier{models.TierBudget, models.TierStandard, models.TierLuxury}
	out := make([]models.PricedOption, 0, len(totals))
	for i, total := range totals {
		out = append(out, models.PricedOption{
			Name:       string(category) + "-" + string(tiers[i]),
			Category:   category,
			Tier:       tiers[i],
			TotalPrice: total,
		})
	}
	return out
}

func TestAggregate_Cheapest(t *testing.T) {
	lodging := opts(models.CategoryLodging, 4800, 8800, 18000)
	dining := opts(models.CategoryDining, 6000, 10800, 19200)
	transport := opts(models.CategoryTransport, 2000, 3200, 4800)
	attractions := []models.Attraction{{Name: "x", Price: 150}, {Name: "y", Price: 0}, {Name: "z", Price: 300}}

	got, err := Aggregate(lodging, dining, attractions, transport, 20000, CheapestTier{})
	require.NoError(t, err)

	assert.Equal(t, 4800.0, got.PerCategoryTotal[models.CategoryLodging])
	assert.Equal(t, 6000.0, got.PerCategoryTotal[models.CategoryDining])
	assert.Equal(t, 2000.0, got.PerCategoryTotal[models.CategoryTransport])
	assert.Equal(t, 450.0, got.PerCategoryTotal[models.CategoryAttraction])
	assert.Equal(t, 13250.0, got.GrandTotal)
	assert.Equal(t, 6750.0, got.VarianceFromCeiling)
	assert.False(t, got.OverBudget)
	assert.Equal(t, "lodging-budget", got.Selections[models.CategoryLodging])
}

func TestAggregate_CheapestIgnoresOrder(t *testing.T) {
	lodging := opts(models.CategoryLodging, 9000, 5000, 7000)
	dining := opts(models.CategoryDining, 100)
	transport := opts(models.CategoryTransport, 100)

	got, err := Aggregate(lodging, dining, nil, transport, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, got.PerCategoryTotal[models.CategoryLodging])
	assert.Equal(t, 0.0, got.PerCategoryTotal[models.CategoryAttraction])
}

func TestAggregate_OverBudget(t *testing.T) {
	got, err := Aggregate(
		opts(models.CategoryLodging, 4800),
		opts(models.CategoryDining, 6000),
		nil,
		opts(models.CategoryTransport, 2000),
		10000,
		CheapestTier{},
	)
	require.NoError(t, err)
	assert.Equal(t, -2800.0, got.VarianceFromCeiling)
	assert.True(t, got.OverBudget)
}

func TestAggregate_ExactlyOnBudget(t *testing.T) {
	got, err := Aggregate(
		opts(models.CategoryLodging, 500),
		opts(models.CategoryDining, 300),
		nil,
		opts(models.CategoryTransport, 200),
		1000,
		CheapestTier{},
	)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.VarianceFromCeiling)
	assert.False(t, got.OverBudget)
}

func TestAggregate_EmptyCategoryFails(t *testing.T) {
	_, err := Aggregate(
		opts(models.CategoryLodging, 500),
		nil,
		nil,
		opts(models.CategoryTransport, 200),
		1000,
		CheapestTier{},
	)
	assert.ErrorIs(t, err, ErrNoOptions)
}

func TestAggregate_ByLabel(t *testing.T) {
	got, err := Aggregate(
		opts(models.CategoryLodging, 4800, 8800, 18000),
		opts(models.CategoryDining, 6000, 10800, 19200),
		nil,
		opts(models.CategoryTransport, 2000, 3200, 4800),
		50000,
		TierByLabel{Tier: models.TierStandard},
	)
	require.NoError(t, err)
	assert.Equal(t, 22800.0, got.GrandTotal)
	assert.Equal(t, "dining-standard", got.Selections[models.CategoryDining])

	_, err = Aggregate(
		opts(models.CategoryLodging, 4800),
		opts(models.CategoryDining, 6000),
		nil,
		opts(models.CategoryTransport, 2000),
		50000,
		TierByLabel{Tier: models.TierLuxury},
	)
	assert.Error(t, err)
}

func TestParseTierSelector(t *testing.T) {
	for _, v := range []string{"", "cheapest", "Budget", " luxury ", "standard"} {
		s, err := ParseTierSelector(v)
		require.NoError(t, err, v)
		assert.NotNil(t, s)
	}

	s, err := ParseTierSelector("")
	require.NoError(t, err)
	assert.Equal(t, "cheapest", s.Name())

	_, err = ParseTierSelector("premium")
	assert.Error(t, err)
}
