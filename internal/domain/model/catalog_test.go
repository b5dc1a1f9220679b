package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog(
		[]Size{{ID: "medium", Name: "Medium", PriceMultiplier: 1, CalorieMultiplier: 1}},
		[]Crust{{ID: "wheat", Name: "Whole Wheat", Price: 40, Calories: 150}},
		[]Sauce{{ID: "tomato", Name: "Fresh Tomato", Price: 20, Calories: 30}},
		[]Topping{{ID: "mushrooms", Name: "Mushrooms", PricePerGram: 0.6, CaloriesPer10g: 20, Vegan: true}},
		nil,
	)
}

func TestCatalog_Lookups(t *testing.T) {
	c := testCatalog()

	size, err := c.SizeByID("medium")
	require.NoError(t, err)
	assert.Equal(t, "Medium", size.Name)

	crust, err := c.CrustByID("wheat")
	require.NoError(t, err)
	assert.Equal(t, 40.0, crust.Price)

	sauce, err := c.SauceByID("tomato")
	require.NoError(t, err)
	assert.Equal(t, 30, sauce.Calories)

	topping, err := c.ToppingByID("mushrooms")
	require.NoError(t, err)
	assert.True(t, topping.Vegan)
}

func TestCatalog_UnknownIDs(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name   string
		lookup func() error
		kind   string
	}{
		{"size", func() error { _, err := c.SizeByID("xl"); return err }, "size"},
		{"crust", func() error { _, err := c.CrustByID("sourdough"); return err }, "crust"},
		{"sauce", func() error { _, err := c.SauceByID("bbq"); return err }, "sauce"},
		{"topping", func() error { _, err := c.ToppingByID("pineapple"); return err }, "topping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			require.Error(t, err)

			var resErr *ConfigResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, tt.kind, resErr.Kind)
			assert.Contains(t, err.Error(), "unknown "+tt.kind)
		})
	}
}
