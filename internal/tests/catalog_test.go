package tests

import (
	"testing"

	"quickbite/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	restaurants := catalog.Seed()

	require.Len(t, restaurants, 3)
	for _, r := range restaurants {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Menu, "restaurant %s has no menu", r.Name)
		assert.True(t, r.IsOpen)
		for _, item := range r.Menu {
			assert.Greater(t, item.Price, 0.0)
			assert.True(t, item.IsAvailable)
		}
	}
}

func TestFilter(t *testing.T) {
	restaurants := catalog.Seed()

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{name: "no filters", want: []string{"Pizza Palace", "Burger Junction", "Sushi Zen"}},
		{name: "query by restaurant name", query: "palace", want: []string{"Pizza Palace"}},
		{name: "query by cuisine", query: "japanese", want: []string{"Sushi Zen"}},
		{name: "query by menu item", query: "veggie", want: []string{"Burger Junction"}},
		{name: "query matches nothing", query: "tacos", want: []string{}},
		{name: "category by menu item", category: "Burgers", want: []string{"Burger Junction"}},
		{name: "category by cuisine", category: "Fast Food", want: []string{"Pizza Palace", "Burger Junction"}},
		{name: "query and category", query: "salmon", category: "Sushi", want: []string{"Sushi Zen"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			matched := catalog.Filter(restaurants, testCase.query, testCase.category)
			names := []string{}
			for _, r := range matched {
				names = append(names, r.Name)
			}
			assert.Equal(t, testCase.want, names)
		})
	}
}

func TestSortBy(t *testing.T) {
	restaurants := catalog.Seed()

	tests := []struct {
		key  string
		want []string
	}{
		{key: "rating", want: []string{"Sushi Zen", "Pizza Palace", "Burger Junction"}},
		{key: "distance", want: []string{"Burger Junction", "Pizza Palace", "Sushi Zen"}},
		{key: "delivery_time", want: []string{"Burger Junction", "Pizza Palace", "Sushi Zen"}},
		{key: "unknown", want: []string{"Pizza Palace", "Burger Junction", "Sushi Zen"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.key, func(t *testing.T) {
			sorted := catalog.SortBy(restaurants, testCase.key)
			names := []string{}
			for _, r := range sorted {
				names = append(names, r.Name)
			}
			assert.Equal(t, testCase.want, names)
		})
	}
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	restaurants := catalog.Seed()
	catalog.SortBy(restaurants, "distance")
	assert.Equal(t, "Pizza Palace", restaurants[0].Name)
}
