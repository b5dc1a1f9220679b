//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pizza-service/internal/domain/model"
	"github.com/guttosm/pizza-service/internal/mocks"
)

// fakeClock returns a strictly increasing time source so minted line ids
// never collide within a test.
func fakeClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func newTestCartService() *CartServiceImpl {
	pricing := NewPricingService(pricingTestCatalog())
	return NewCartService(pricing, nil, WithCartClock(fakeClock()))
}

func cartTestPizza() model.Pizza {
	return model.Pizza{
		ID:           "protein-special",
		Name:         "Protein Special",
		BasePrice:    250,
		BaseCalories: 180,
		SizeID:       "large",
		CrustID:      "ragi",
		SauceID:      "tomato",
		Toppings:     []model.ToppingSelection{{ToppingID: "paneer", QuantityGrams: 30}},
	}
}

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line with computed totals", func(t *testing.T) {
		carts := newTestCartService()

		snap, err := carts.Add(ctx, "s1", cartTestPizza(), 2)
		require.NoError(t, err)

		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 2, snap.Lines[0].Quantity)
		assert.InDelta(t, 794.00, snap.Lines[0].TotalPrice, 0.001)
		assert.Equal(t, 1260, snap.Lines[0].TotalCalories)
		assert.InDelta(t, 794.00, snap.CartTotal, 0.001)
		assert.Equal(t, 1260, snap.CartCalories)
	})

	t.Run("merges structurally identical pizzas into one line", func(t *testing.T) {
		carts := newTestCartService()

		_, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)
		snap, err := carts.Add(ctx, "s1", cartTestPizza(), 2)
		require.NoError(t, err)

		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 3, snap.Lines[0].Quantity)
		assert.InDelta(t, 1191.00, snap.Lines[0].TotalPrice, 0.001)
	})

	t.Run("merge accumulates totals onto the existing line", func(t *testing.T) {
		carts := newTestCartService()

		first, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)
		merged, err := carts.Add(ctx, "s1", cartTestPizza(), 2)
		require.NoError(t, err)

		require.Len(t, merged.Lines, 1)
		assert.InDelta(t, first.Lines[0].TotalPrice*3, merged.Lines[0].TotalPrice, 0.001)
		assert.Equal(t, first.Lines[0].TotalCalories*3, merged.Lines[0].TotalCalories)
	})

	t.Run("merge ignores topping order", func(t *testing.T) {
		carts := newTestCartService()

		first := cartTestPizza()
		first.Toppings = []model.ToppingSelection{
			{ToppingID: "paneer", QuantityGrams: 30},
			{ToppingID: "mushrooms", QuantityGrams: 20},
		}
		second := cartTestPizza()
		second.Toppings = []model.ToppingSelection{
			{ToppingID: "mushrooms", QuantityGrams: 20},
			{ToppingID: "paneer", QuantityGrams: 30},
		}

		_, err := carts.Add(ctx, "s1", first, 1)
		require.NoError(t, err)
		snap, err := carts.Add(ctx, "s1", second, 1)
		require.NoError(t, err)

		require.Len(t, snap.Lines, 1)
		assert.Equal(t, 2, snap.Lines[0].Quantity)
	})

	t.Run("different gram quantities stay separate lines", func(t *testing.T) {
		carts := newTestCartService()

		heavier := cartTestPizza()
		heavier.Toppings = []model.ToppingSelection{{ToppingID: "paneer", QuantityGrams: 40}}

		_, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)
		snap, err := carts.Add(ctx, "s1", heavier, 1)
		require.NoError(t, err)

		assert.Len(t, snap.Lines, 2)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		carts := newTestCartService()

		_, err := carts.Add(ctx, "s1", cartTestPizza(), 0)
		assert.Error(t, err)
	})

	t.Run("unknown component id fails the add", func(t *testing.T) {
		carts := newTestCartService()

		bad := cartTestPizza()
		bad.CrustID = "sourdough"

		_, err := carts.Add(ctx, "s1", bad, 1)
		var resErr *model.ConfigResolutionError
		require.True(t, errors.As(err, &resErr))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		carts := newTestCartService()

		_, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)

		snap, err := carts.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Empty(t, snap.Lines)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets absolute quantity and recomputes totals", func(t *testing.T) {
		carts := newTestCartService()
		snap, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)
		lineID := snap.Lines[0].ID

		snap, err = carts.UpdateQuantity(ctx, "s1", lineID, 5)
		require.NoError(t, err)

		assert.Equal(t, 5, snap.Lines[0].Quantity)
		assert.InDelta(t, 1985.00, snap.Lines[0].TotalPrice, 0.001)
		assert.Equal(t, 3150, snap.Lines[0].TotalCalories)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		carts := newTestCartService()
		snap, err := carts.Add(ctx, "s1", cartTestPizza(), 2)
		require.NoError(t, err)

		snap, err = carts.UpdateQuantity(ctx, "s1", snap.Lines[0].ID, 0)
		require.NoError(t, err)

		assert.Empty(t, snap.Lines)
		assert.Zero(t, snap.CartTotal)
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		carts := newTestCartService()
		snap, err := carts.Add(ctx, "s1", cartTestPizza(), 2)
		require.NoError(t, err)

		snap, err = carts.UpdateQuantity(ctx, "s1", snap.Lines[0].ID, -5)
		require.NoError(t, err)

		assert.Empty(t, snap.Lines)
	})

	t.Run("unknown line id fails", func(t *testing.T) {
		carts := newTestCartService()

		_, err := carts.UpdateQuantity(ctx, "s1", "nope", 2)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})

	t.Run("non-positive update of an absent line is a no-op", func(t *testing.T) {
		carts := newTestCartService()

		_, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)

		snap, err := carts.UpdateQuantity(ctx, "s1", "nope", 0)
		require.NoError(t, err)
		assert.Len(t, snap.Lines, 1)

		snap, err = carts.UpdateQuantity(ctx, "s1", "nope", -5)
		require.NoError(t, err)
		assert.Len(t, snap.Lines, 1)
	})
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing line", func(t *testing.T) {
		carts := newTestCartService()
		snap, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)

		snap, err = carts.Remove(ctx, "s1", snap.Lines[0].ID)
		require.NoError(t, err)

		assert.Empty(t, snap.Lines)
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		carts := newTestCartService()
		_, err := carts.Add(ctx, "s1", cartTestPizza(), 1)
		require.NoError(t, err)

		snap, err := carts.Remove(ctx, "s1", "nope")
		require.NoError(t, err)

		assert.Len(t, snap.Lines, 1)
	})
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	carts := newTestCartService()

	_, err := carts.Add(ctx, "s1", cartTestPizza(), 3)
	require.NoError(t, err)

	snap, err := carts.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.CartTotal)

	snap, err = carts.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
}

func TestCartService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("load failure surfaces", func(t *testing.T) {
		repo := mocks.NewMockCartsRepositoryInterface(t)
		repo.On("Load", ctx, "s1").Return(nil, errors.New("mongo down")).Once()

		carts := NewCartService(NewPricingService(pricingTestCatalog()), repo)

		_, err := carts.Get(ctx, "s1")
		assert.Error(t, err)
	})

	t.Run("degraded store reads as an empty cart", func(t *testing.T) {
		repo := mocks.NewMockCartsRepositoryInterface(t)
		repo.On("Load", ctx, "s1").Return(nil, nil).Once()

		carts := NewCartService(NewPricingService(pricingTestCatalog()), repo)

		snap, err := carts.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, snap.Lines)
	})
}
