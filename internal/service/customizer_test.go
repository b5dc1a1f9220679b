//go:build !integration

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pizza-service/internal/domain/model"
)

func customizerTestCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.Size{
			{ID: "small", Name: "Small", PriceMultiplier: 0.8, CalorieMultiplier: 0.8},
			{ID: "medium", Name: "Medium", PriceMultiplier: 1, CalorieMultiplier: 1},
			{ID: "large", Name: "Large", PriceMultiplier: 1.3, CalorieMultiplier: 1.2},
		},
		[]model.Crust{
			{ID: "ragi", Name: "Ragi", Price: 50, Calories: 120},
			{ID: "wheat", Name: "Whole Wheat", Price: 40, Calories: 150},
		},
		[]model.Sauce{
			{ID: "tomato", Name: "Tomato", Price: 20, Calories: 30},
			{ID: "pesto", Name: "Pesto", Price: 40, Calories: 70},
		},
		[]model.Topping{
			{ID: "mushrooms", Name: "Mushrooms", PricePerGram: 0.6, CaloriesPer10g: 20, Vegan: true},
			{ID: "paneer", Name: "Paneer", PricePerGram: 0.9, CaloriesPer10g: 75, Vegan: false},
		},
		[]model.Pizza{
			{
				ID:           "veggie-delight",
				Name:         "Veggie Delight",
				BasePrice:    220,
				BaseCalories: 160,
				SizeID:       "medium",
				CrustID:      "wheat",
				SauceID:      "tomato",
				Toppings:     []model.ToppingSelection{{ToppingID: "mushrooms", QuantityGrams: 25}},
				Vegan:        true,
			},
		},
	)
}

func newTestCustomizer() (*CustomizerServiceImpl, *CartServiceImpl) {
	catalog := customizerTestCatalog()
	pricing := NewPricingService(catalog)
	carts := NewCartService(pricing, nil, WithCartClock(fakeClock()))
	customizer := NewCustomizerService(catalog, pricing, carts, WithCustomizerClock(fakeClock()))
	return customizer, carts
}

func TestCustomizerService_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("blank draft seeds defaults", func(t *testing.T) {
		customizer, _ := newTestCustomizer()

		view, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		assert.Equal(t, "Custom Pizza", view.Pizza.Name)
		assert.Equal(t, "small", view.Pizza.SizeID)
		assert.Equal(t, "ragi", view.Pizza.CrustID)
		assert.Equal(t, "tomato", view.Pizza.SauceID)
		assert.Empty(t, view.Pizza.Toppings)
		assert.True(t, view.Pizza.Vegan)
		assert.Equal(t, 1, view.Quantity)
	})

	t.Run("draft quote includes the surcharge", func(t *testing.T) {
		customizer, _ := newTestCustomizer()

		view, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		// (250*0.8 + 50 + 20) * 1.2 = 324.00
		assert.InDelta(t, 324.00, view.Quote.UnitPrice, 0.001)
	})

	t.Run("preset draft copies the configuration", func(t *testing.T) {
		customizer, _ := newTestCustomizer()

		view, err := customizer.Start(ctx, "s1", "veggie-delight")
		require.NoError(t, err)

		assert.Equal(t, "Veggie Delight", view.Pizza.Name)
		assert.Equal(t, "wheat", view.Pizza.CrustID)
		require.Len(t, view.Pizza.Toppings, 1)
		assert.Equal(t, 25, view.Pizza.Toppings[0].QuantityGrams)
	})

	t.Run("unknown preset fails", func(t *testing.T) {
		customizer, _ := newTestCustomizer()

		_, err := customizer.Start(ctx, "s1", "hawaiian")
		assert.ErrorIs(t, err, ErrPresetNotFound)
	})
}

func TestCustomizerService_Current(t *testing.T) {
	ctx := context.Background()
	customizer, _ := newTestCustomizer()

	_, err := customizer.Current(ctx, "s1")
	assert.ErrorIs(t, err, ErrNoDraft)

	_, err = customizer.Start(ctx, "s1", "")
	require.NoError(t, err)

	view, err := customizer.Current(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Custom Pizza", view.Pizza.Name)
}

func TestCustomizerService_Components(t *testing.T) {
	ctx := context.Background()

	t.Run("set size, crust, and sauce update the quote", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		view, err := customizer.SetSize(ctx, "s1", "large")
		require.NoError(t, err)
		assert.Equal(t, "large", view.Pizza.SizeID)

		view, err = customizer.SetCrust(ctx, "s1", "wheat")
		require.NoError(t, err)
		assert.Equal(t, "wheat", view.Pizza.CrustID)

		view, err = customizer.SetSauce(ctx, "s1", "pesto")
		require.NoError(t, err)
		assert.Equal(t, "pesto", view.Pizza.SauceID)

		// (250*1.3 + 40 + 40) * 1.2 = 486.00
		assert.InDelta(t, 486.00, view.Quote.UnitPrice, 0.001)
	})

	t.Run("unknown component ids fail", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		_, err = customizer.SetSize(ctx, "s1", "xl")
		assert.Error(t, err)
		_, err = customizer.SetCrust(ctx, "s1", "sourdough")
		assert.Error(t, err)
		_, err = customizer.SetSauce(ctx, "s1", "bbq")
		assert.Error(t, err)
	})
}

func TestCustomizerService_Toppings(t *testing.T) {
	ctx := context.Background()

	t.Run("first toggle seeds the default grams", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		view, err := customizer.ToggleTopping(ctx, "s1", "mushrooms")
		require.NoError(t, err)

		require.Len(t, view.Pizza.Toppings, 1)
		assert.Equal(t, DefaultToppingGrams, view.Pizza.Toppings[0].QuantityGrams)
	})

	t.Run("re-selecting restores the previous grams", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		_, err = customizer.ToggleTopping(ctx, "s1", "mushrooms")
		require.NoError(t, err)
		_, err = customizer.SetToppingQuantity(ctx, "s1", "mushrooms", 50)
		require.NoError(t, err)

		view, err := customizer.ToggleTopping(ctx, "s1", "mushrooms")
		require.NoError(t, err)
		assert.Empty(t, view.Pizza.Toppings)

		view, err = customizer.ToggleTopping(ctx, "s1", "mushrooms")
		require.NoError(t, err)
		require.Len(t, view.Pizza.Toppings, 1)
		assert.Equal(t, 50, view.Pizza.Toppings[0].QuantityGrams)
	})

	t.Run("grams clamp to the allowed range", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)
		_, err = customizer.ToggleTopping(ctx, "s1", "mushrooms")
		require.NoError(t, err)

		view, err := customizer.SetToppingQuantity(ctx, "s1", "mushrooms", 5)
		require.NoError(t, err)
		assert.Equal(t, MinToppingGrams, view.Pizza.Toppings[0].QuantityGrams)

		view, err = customizer.SetToppingQuantity(ctx, "s1", "mushrooms", 500)
		require.NoError(t, err)
		assert.Equal(t, MaxToppingGrams, view.Pizza.Toppings[0].QuantityGrams)
	})

	t.Run("non-vegan topping flips the vegan flag", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		view, err := customizer.ToggleTopping(ctx, "s1", "paneer")
		require.NoError(t, err)
		assert.False(t, view.Pizza.Vegan)
		assert.False(t, view.Quote.Vegan)
	})

	t.Run("unknown topping fails", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		_, err = customizer.ToggleTopping(ctx, "s1", "pineapple")
		assert.Error(t, err)
	})
}

func TestCustomizerService_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("commits the draft into the cart", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)
		_, err = customizer.ToggleTopping(ctx, "s1", "mushrooms")
		require.NoError(t, err)
		_, err = customizer.SetQuantity(ctx, "s1", 2)
		require.NoError(t, err)

		snap, view, err := customizer.Commit(ctx, "s1")
		require.NoError(t, err)

		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 2, snap.Lines[0].Quantity)
		assert.True(t, strings.HasPrefix(snap.Lines[0].Pizza.ID, model.CustomIDPrefix))
		assert.True(t, snap.Lines[0].Pizza.IsCustom())

		// Quantity selector resets, configuration survives.
		assert.Equal(t, 1, view.Quantity)
		require.Len(t, view.Pizza.Toppings, 1)
	})

	t.Run("committed price carries the surcharge", func(t *testing.T) {
		customizer, _ := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		snap, _, err := customizer.Commit(ctx, "s1")
		require.NoError(t, err)

		// (250*0.8 + 50 + 20) * 1.2 = 324.00
		assert.InDelta(t, 324.00, snap.Lines[0].TotalPrice, 0.001)
	})

	t.Run("repeat commits create separate lines", func(t *testing.T) {
		customizer, carts := newTestCustomizer()
		_, err := customizer.Start(ctx, "s1", "")
		require.NoError(t, err)

		_, _, err = customizer.Commit(ctx, "s1")
		require.NoError(t, err)
		_, _, err = customizer.Commit(ctx, "s1")
		require.NoError(t, err)

		snap, err := carts.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, snap.Lines, 2)
	})

	t.Run("commit without a draft fails", func(t *testing.T) {
		customizer, _ := newTestCustomizer()

		_, _, err := customizer.Commit(ctx, "s1")
		assert.ErrorIs(t, err, ErrNoDraft)
	})
}
