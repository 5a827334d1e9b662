package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeTiers(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]Tier{
		{Name: "cupcake", Image: "cupcake.svg", Price: 5, Threshold: 0},
		{Name: "donut", Image: "donut.svg", Price: 10, Threshold: 5},
		{Name: "eclair", Image: "eclair.svg", Price: 15, Threshold: 10},
	})
	require.NoError(t, err)
	return c
}

func TestSelectEdges(t *testing.T) {
	c := threeTiers(t)

	tests := []struct {
		sold  int
		price int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{1_000_000, 15},
		{-3, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.price, c.Select(tt.sold).Price, "sold=%d", tt.sold)
	}
}

func TestSelectIsMaximal(t *testing.T) {
	c := Default()

	for sold := 0; sold <= 25000; sold += 7 {
		idx := c.Index(sold)
		tier := c.Tier(idx)
		require.LessOrEqual(t, tier.Threshold, sold)

		for j := idx + 1; j < c.Len(); j++ {
			require.Greater(t, c.Tier(j).Threshold, sold, "tier %d also unlocked at %d", j, sold)
		}
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	c := Default()
	for _, sold := range []int{0, 5, 199, 200, 19999, 20000} {
		assert.Equal(t, c.Index(sold), c.Index(sold))
		assert.Equal(t, c.Select(sold), c.Select(sold))
	}
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name  string
		tiers []Tier
		want  error
	}{
		{"empty", nil, ErrEmpty},
		{"first not zero", []Tier{{Image: "a", Threshold: 1}}, ErrFirstThreshold},
		{"duplicate threshold", []Tier{{Image: "a"}, {Image: "b", Threshold: 0}}, ErrThresholdOrder},
		{"descending", []Tier{{Image: "a"}, {Image: "b", Threshold: 10}, {Image: "c", Threshold: 3}}, ErrThresholdOrder},
		{"negative price", []Tier{{Image: "a", Price: -1}}, ErrNegativePrice},
		{"no image", []Tier{{Name: "ghost"}}, ErrMissingImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.tiers)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewCopiesTiers(t *testing.T) {
	tiers := []Tier{{Name: "cupcake", Image: "cupcake.svg", Price: 5}}
	c, err := New(tiers)
	require.NoError(t, err)

	tiers[0].Price = 500
	assert.Equal(t, 5, c.Tier(0).Price)

	out := c.Tiers()
	out[0].Price = 700
	assert.Equal(t, 5, c.Tier(0).Price)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(nil) })
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, 13, c.Len())
	assert.Equal(t, "cupcake", c.Tier(0).Name)
	assert.Equal(t, "oreo", c.Select(25000).Name)
	assert.Equal(t, "donut", c.Select(5).Name)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
desserts:
  - name: a
    image: a.svg
    price: 1
    threshold: 0
  - name: b
    image: b.svg
    price: 2
    threshold: 3
`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "b", c.Select(3).Name)
}

func TestParseRejects(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("desserts: []\n"))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]byte("desserts:\n  - name: a\n    image: a.svg\n    colour: red\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("desserts:\n  - name: a\n    image: a.svg\n    threshold: 2\n"))
	assert.ErrorIs(t, err, ErrFirstThreshold)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Len(), c.Len())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("desserts:\n  - name: a\n    image: a.svg\n    price: 3\n"), 0o600))

	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Select(0).Price)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
