package order

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/fudofusion/internal/domain"
)

func menuItem(id int64, name, price string) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: name, Category: "MAIN", Price: decimal.RequireFromString(price)}
}

func requireTotal(t *testing.T, o *Order, want string) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(o.Total()), "total %s, want %s", o.Total(), want)
}

func TestOrderAddRemove(t *testing.T) {
	burger := menuItem(1, "Burger", "10.00")

	t.Run("add then partial remove", func(t *testing.T) {
		o := New()
		require.NoError(t, o.Add(burger, 3))
		requireTotal(t, o, "30")

		require.NoError(t, o.Remove(burger.ID, 2))
		requireTotal(t, o, "10")
		require.Equal(t, 1, o.Quantity(burger.ID))
	})

	t.Run("removing more than held is rejected", func(t *testing.T) {
		o := New()
		require.NoError(t, o.Add(burger, 2))

		err := o.Remove(burger.ID, 5)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInsufficientQuantity))
		require.Equal(t, 2, o.Quantity(burger.ID))
		requireTotal(t, o, "20")
	})

	t.Run("removing an absent item is rejected", func(t *testing.T) {
		o := New()
		require.NoError(t, o.Add(burger, 1))

		require.Equal(t, ErrItemNotInOrder, o.Remove(42, 1))
		require.Equal(t, 1, o.Len())
		requireTotal(t, o, "10")
	})

	t.Run("removing everything drops the line", func(t *testing.T) {
		o := New()
		require.NoError(t, o.Add(burger, 2))
		require.NoError(t, o.Remove(burger.ID, 2))
		require.True(t, o.IsEmpty())
		require.Equal(t, 0, o.Quantity(burger.ID))
		requireTotal(t, o, "0")
	})

	t.Run("non positive quantities are rejected", func(t *testing.T) {
		o := New()
		require.Equal(t, ErrInvalidQuantity, o.Add(burger, 0))
		require.Equal(t, ErrInvalidQuantity, o.Add(burger, -1))
		require.NoError(t, o.Add(burger, 1))
		require.Equal(t, ErrInvalidQuantity, o.Remove(burger.ID, 0))
		require.Equal(t, 1, o.Quantity(burger.ID))
	})

	t.Run("repeated adds accumulate on one line", func(t *testing.T) {
		o := New()
		require.NoError(t, o.Add(burger, 1))
		require.NoError(t, o.Add(burger, 4))
		require.Equal(t, 1, o.Len())
		require.Equal(t, 5, o.Quantity(burger.ID))
		requireTotal(t, o, "50")
	})
}

func TestOrderKeysByID(t *testing.T) {
	o := New()
	small := menuItem(1, "Fries", "2.50")
	large := menuItem(2, "Fries", "4.00")

	require.NoError(t, o.Add(small, 1))
	require.NoError(t, o.Add(large, 1))
	require.Equal(t, 2, o.Len())
	requireTotal(t, o, "6.5")

	require.NoError(t, o.Remove(large.ID, 1))
	require.Equal(t, 1, o.Quantity(small.ID))
	require.Equal(t, 0, o.Quantity(large.ID))
}

func TestOrderSharedID(t *testing.T) {
	soup := menuItem(1, "Soup", "4.50")
	cake := menuItem(1, "Cake", "6.00")

	o := New()
	require.NoError(t, o.Add(soup, 1))
	err := o.Add(cake, 1)
	require.ErrorIs(t, err, ErrItemConflict)

	require.Equal(t, 1, o.Len())
	require.Equal(t, 1, o.Quantity(1))
	requireTotal(t, o, "4.5")
	require.Equal(t, "\nOrder Summary:\nSoup x 1 - $4.50\n\nTotal: $4.50", o.Summary())

	// an identical row under the same id is the same product
	require.NoError(t, o.Add(menuItem(1, "Soup", "4.5"), 2))
	require.Equal(t, 3, o.Quantity(1))
	requireTotal(t, o, "13.5")
}

func TestOrderQuantityOverflow(t *testing.T) {
	tea := menuItem(3, "Tea", "1.25")
	o := New()
	require.NoError(t, o.Add(tea, math.MaxInt))
	require.Equal(t, ErrInvalidQuantity, o.Add(tea, 1))

	require.Equal(t, math.MaxInt, o.Quantity(tea.ID))
	want := tea.Price.Mul(decimal.NewFromInt(math.MaxInt))
	require.True(t, want.Equal(o.Total()))
}

func TestOrderSummary(t *testing.T) {
	o := New()
	require.Equal(t, "\nOrder Summary:\n\nTotal: $0.00", o.Summary())

	require.NoError(t, o.Add(menuItem(2, "Soup", "4.5"), 2))
	require.NoError(t, o.Add(menuItem(1, "Steak", "19.99"), 1))

	want := "\nOrder Summary:\n" +
		"Soup x 2 - $9.00\n" +
		"Steak x 1 - $19.99\n" +
		"\nTotal: $28.99"
	require.Equal(t, want, o.Summary())
}

func TestOrderTotalInvariant(t *testing.T) {
	items := []domain.MenuItem{
		menuItem(1, "Soup", "4.5"),
		menuItem(2, "Steak", "19.99"),
		menuItem(3, "Tea", "1.25"),
		menuItem(4, "Water", "0"),
	}
	rng := rand.New(rand.NewSource(7))
	o := New()

	for step := 0; step < 500; step++ {
		item := items[rng.Intn(len(items))]
		qty := rng.Intn(5) + 1
		if rng.Intn(2) == 0 {
			require.NoError(t, o.Add(item, qty))
		} else {
			before := o.Quantity(item.ID)
			beforeTotal := o.Total()
			err := o.Remove(item.ID, qty)
			if before == 0 || qty > before {
				require.Error(t, err)
				require.Equal(t, before, o.Quantity(item.ID))
				require.True(t, beforeTotal.Equal(o.Total()))
			} else {
				require.NoError(t, err)
			}
		}

		sum := decimal.Zero
		for _, line := range o.Lines() {
			require.Greater(t, line.Quantity, 0)
			sum = sum.Add(line.Subtotal())
		}
		require.True(t, sum.Equal(o.Total()), "step %d: sum %s total %s", step, sum, o.Total())
	}
}
