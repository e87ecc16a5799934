package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRIPWISE_BACK-END/internal/models"
)

func goaRecord(t *testing.T) models.TripRecord {
	t.Helper()
	req, err := Validate(goaRequest())
	require.NoError(t, err)
	return models.NewTripRecord(req, models.StorageLocal, time.Now())
}

func TestEngine_RecommendGoa(t *testing.T) {
	e := NewEngine(Options{Random: Seeded(2024)})

	rec, err := e.Recommend(goaRecord(t))
	require.NoError(t, err)

	assert.Equal(t, 4, rec.StayNights)
	require.Len(t, rec.HotelOptions, 3)
	require.Len(t, rec.RestaurantOptions, 3)
	require.Len(t, rec.TravelModes, 3)
	require.Len(t, rec.Attractions, 5)

	for _, d := range rec.RestaurantOptions {
		assert.Equal(t, d.UnitPrice*2*4*3, d.TotalPrice)
	}
	assert.Equal(t, "Baga Beach", rec.Attractions[0].Name)
	assert.Equal(t, "Local Museum", rec.Attractions[1].Name)

	b := rec.Budget
	assert.Equal(t, rec.HotelOptions[0].TotalPrice, b.PerCategoryTotal[models.CategoryLodging])
	assert.Equal(t, rec.RestaurantOptions[0].TotalPrice, b.PerCategoryTotal[models.CategoryDining])
	assert.Equal(t, 2000.0, b.PerCategoryTotal[models.CategoryTransport])

	var sum float64
	for _, v := range b.PerCategoryTotal {
		sum += v
	}
	assert.Equal(t, sum, b.GrandTotal)
	assert.Equal(t, 20000.0-b.GrandTotal, b.VarianceFromCeiling)
	assert.Equal(t, b.VarianceFromCeiling < 0, b.OverBudget)

	assert.Contains(t, []string{"Sunny", "Partly Cloudy"}, rec.Weather.Condition)
	assert.GreaterOrEqual(t, rec.Weather.Temperature, 25)
	assert.Less(t, rec.Weather.Temperature, 35)
}

func TestEngine_SeededIsReproducible(t *testing.T) {
	record := goaRecord(t)

	a, err := NewEngine(Options{Random: Seeded(9)}).Recommend(record)
	require.NoError(t, err)
	b, err := NewEngine(Options{Random: Seeded(9)}).Recommend(record)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEngine_LiveKeepsInvariants(t *testing.T) {
	e := NewEngine(Options{Random: Live()})
	record := goaRecord(t)

	for i := 0; i < 10; i++ {
		rec, err := e.Recommend(record)
		require.NoError(t, err)
		for j, h := range rec.HotelOptions {
			base := DefaultLodging.Cards[j].BaseRate
			assert.GreaterOrEqual(t, h.UnitPrice, base)
			assert.LessOrEqual(t, h.UnitPrice, base*1.25)
		}
	}
}

func TestEngine_DegenerateStay(t *testing.T) {
	record := goaRecord(t)
	record.DateTo = record.DateFrom

	_, err := NewEngine(Options{Random: Seeded(1)}).Recommend(record)
	assert.ErrorIs(t, err, ErrDegenerateStay)
}

func TestEngine_TierStrategy(t *testing.T) {
	e := NewEngine(Options{Random: Seeded(5), TierSelector: TierByLabel{Tier: models.TierLuxury}})

	rec, err := e.Recommend(goaRecord(t))
	require.NoError(t, err)
	assert.Equal(t, "Luxury Resort", rec.Budget.Selections[models.CategoryLodging])
	assert.Equal(t, 4800.0, rec.Budget.PerCategoryTotal[models.CategoryTransport])
}
