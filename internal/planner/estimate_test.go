package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"TRIPWISE_BACK-END/internal/models"
)

func TestEstimateBudget(t *testing.T) {
	got := EstimateBudget("Goa", 5, 2, []string{"Baga Beach", "Baga Beach", " "})

	assert.Equal(t, 15000.0, got.PerCategoryTotal[models.CategoryLodging])
	assert.Equal(t, 10000.0, got.PerCategoryTotal[models.CategoryDining])
	assert.Equal(t, 1500.0, got.PerCategoryTotal[models.CategoryTransport])
	assert.Equal(t, 2800.0, got.PerCategoryTotal[models.CategoryAttraction])
	assert.Equal(t, 29300.0, got.Total)
}

func TestEstimateBudget_Incomplete(t *testing.T) {
	assert.Zero(t, EstimateBudget("", 5, 2, nil).Total)
	assert.Zero(t, EstimateBudget("Goa", 0, 2, nil).Total)
	assert.Zero(t, EstimateBudget("Goa", 5, 0, nil).Total)
}

func TestSuggestPlaces(t *testing.T) {
	got := SuggestPlaces("goa")
	assert.Contains(t, got, "Baga Beach")

	assert.Empty(t, SuggestPlaces("Atlantis"))
	assert.NotNil(t, SuggestPlaces("Atlantis"))

	dests := Destinations()
	assert.Contains(t, dests, "Goa")
	assert.IsIncreasing(t, dests)
}
