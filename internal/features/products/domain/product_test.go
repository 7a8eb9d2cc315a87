package domain

import (
	"strings"
	"testing"

	orders "admin-console/internal/features/orders/domain"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalog = []Product{
	{ID: "p1", Name: "Whey Gold 2kg", Category: "Protein", SubCategory: "Popular", Price: 4999, Discount: 10},
	{ID: "p2", Name: "Creatine Mono", Category: "Creatine", SubCategory: "Trending", Price: 899},
	{ID: "p3", Name: "Pump Shot", Category: "Pre Workout", SubCategory: "Just Launched", Price: 1299, Discount: 15},
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "Empty", term: "", want: []string{"p1", "p2", "p3"}},
		{name: "Name", term: "whey", want: []string{"p1"}},
		{name: "Category", term: "CREATINE", want: []string{"p2"}},
		{name: "SubCategory", term: "launched", want: []string{"p3"}},
		{name: "Shared", term: "p", want: []string{"p1", "p3"}},
		{name: "NoMatch", term: "vitamin", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(catalog, tt.term)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSearch_Generated(t *testing.T) {
	faker := gofakeit.New(7)

	for run := 0; run < 30; run++ {
		products := make([]Product, faker.IntRange(0, 25))
		for i := range products {
			products[i] = Product{
				ID:          faker.UUID(),
				Name:        faker.ProductName(),
				Category:    faker.ProductCategory(),
				SubCategory: faker.Word(),
			}
		}
		term := faker.Letter()

		got := Search(products, term)
		require.LessOrEqual(t, len(got), len(products))
		for _, p := range got {
			hay := strings.ToLower(p.Name + "\x00" + p.Category + "\x00" + p.SubCategory)
			assert.Contains(t, hay, strings.ToLower(term))
		}
	}
}

func TestNewView(t *testing.T) {
	t.Run("Discounted", func(t *testing.T) {
		p := catalog[0]
		p.Images = []string{"whey.jpg", "whey-back.jpg"}

		v := NewView(p)
		assert.Equal(t, int64(4499), v.EffectivePrice)
		assert.True(t, v.Discounted)
		assert.Equal(t, "whey.jpg", v.Thumbnail)
	})

	t.Run("PlainWithoutImage", func(t *testing.T) {
		v := NewView(catalog[1])
		assert.Equal(t, int64(899), v.EffectivePrice)
		assert.False(t, v.Discounted)
		assert.Equal(t, orders.PlaceholderImage, v.Thumbnail)
	})

	t.Run("RoundsLikeOrderLines", func(t *testing.T) {
		v := NewView(catalog[2])
		assert.Equal(t, orders.EffectiveUnitPrice(1299, 15), v.EffectivePrice)
		assert.Equal(t, int64(1104), v.EffectivePrice)
	})
}
