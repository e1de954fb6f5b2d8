package services

import (
	"context"
	"errors"
	"testing"

	"dukicks/data"
	"dukicks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(data.SeedProducts())
	require.NoError(t, err)
	return c
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

type failingSource struct{ err error }

func (f failingSource) FindAll(ctx context.Context) ([]models.RawProduct, error) {
	return nil, f.err
}

type rawSource []models.RawProduct

func (r rawSource) FindAll(ctx context.Context) ([]models.RawProduct, error) {
	return r, nil
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	raw := []models.RawProduct{
		{ID: 1, Name: "a", Image: "a.jpg"},
		{ID: 1, Name: "b", Image: "b.jpg"},
	}
	_, err := NewCatalog(raw)
	assert.ErrorIs(t, err, models.ErrInvalidCatalogEntry)
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog(context.Background(), rawSource{{ID: 5, Name: "Calcetas", Image: "c.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	boom := errors.New("boom")
	_, err = LoadCatalog(context.Background(), failingSource{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestCatalog_GetByID(t *testing.T) {
	c := seedCatalog(t)

	p, ok := c.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Nike", p.Brand)
	assert.Equal(t, "Air Max 270", p.Model)

	_, ok = c.GetByID(999)
	assert.False(t, ok)
}

func TestCatalog_GetByCategory(t *testing.T) {
	c := seedCatalog(t)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(c.GetByCategory("Hombre")))
	assert.Equal(t, []int{13, 14}, ids(c.GetByCategory("Gorras")))
	assert.Empty(t, c.GetByCategory("Niños"))
}

func TestCatalog_GetFeatured(t *testing.T) {
	c := seedCatalog(t)

	assert.Equal(t, []int{1, 7, 8, 13}, ids(c.GetFeatured(4)))
	assert.Equal(t, []int{1, 7}, ids(c.GetFeatured(2)))
	assert.Equal(t, []int{1, 7, 8, 13}, ids(c.GetFeatured(0)))
}

func TestCatalog_GetNew(t *testing.T) {
	c := seedCatalog(t)
	assert.Equal(t, []int{1, 3, 8}, ids(c.GetNew()))
}

func TestCatalog_DistinctValues(t *testing.T) {
	c := seedCatalog(t)

	assert.Equal(t, []string{"Hombre", "Mujer", "Gorras"}, c.GetCategories())
	assert.Equal(t, []string{"Nike", "Adidas", "Jordan", "Puma"}, c.GetBrands())
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := seedCatalog(t)

	all := c.All()
	all[0].Price = 1

	p, _ := c.GetByID(1)
	assert.Equal(t, 3299, p.Price)
}

func TestPriceWithDiscount(t *testing.T) {
	c := seedCatalog(t)

	p, _ := c.GetByID(1)
	assert.Equal(t, 2969, PriceWithDiscount(p))

	swoosh, _ := c.GetByID(13)
	assert.Equal(t, 599, PriceWithDiscount(swoosh))
}

func TestCatalog_Detail(t *testing.T) {
	c := seedCatalog(t)
	p, _ := c.GetByID(1)

	d := c.Detail(p)
	assert.Equal(t, 2969, d.FinalPrice)
	assert.Equal(t, "$3,299", d.Breakdown.Original)
	assert.Equal(t, 330, d.Breakdown.DiscountAmount)
}

func TestCatalog_Search(t *testing.T) {
	c := seedCatalog(t)
	assert.Equal(t, []int{1, 7, 13}, ids(c.Search("nike")))
}
