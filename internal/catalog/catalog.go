package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty          = errors.New("catalog has no tiers")
	ErrFirstThreshold = errors.New("first tier must have threshold 0")
	ErrThresholdOrder = errors.New("thresholds must be strictly ascending")
	ErrNegativePrice  = errors.New("price must not be negative")
	ErrMissingImage   = errors.New("tier has no image reference")
)

// Tier is a priced dessert unlocked once cumulative sales reach Threshold.
type Tier struct {
	Name      string `yaml:"name"`
	Image     string `yaml:"image"`
	Price     int    `yaml:"price"`
	Threshold int    `yaml:"threshold"`
}

// Catalog is an immutable, validated list of tiers ordered by threshold.
type Catalog struct {
	tiers []Tier
}

// New validates tiers and returns a catalog holding a private copy of them.
func New(tiers []Tier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, ErrEmpty
	}

	for i, tier := range tiers {
		if tier.Image == "" {
			return nil, fmt.Errorf("tier %d (%s): %w", i, tier.Name, ErrMissingImage)
		}
		if tier.Price < 0 {
			return nil, fmt.Errorf("tier %d (%s): %w", i, tier.Name, ErrNegativePrice)
		}
		if i == 0 {
			if tier.Threshold != 0 {
				return nil, fmt.Errorf("tier 0 (%s) has threshold %d: %w", tier.Name, tier.Threshold, ErrFirstThreshold)
			}
			continue
		}
		if prev := tiers[i-1].Threshold; tier.Threshold <= prev {
			return nil, fmt.Errorf("tier %d (%s) threshold %d after %d: %w",
				i, tier.Name, tier.Threshold, prev, ErrThresholdOrder)
		}
	}

	owned := make([]Tier, len(tiers))
	copy(owned, tiers)
	return &Catalog{tiers: owned}, nil
}

// MustNew is like New but panics on an invalid catalog.
func MustNew(tiers []Tier) *Catalog {
	c, err := New(tiers)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of tiers.
func (c *Catalog) Len() int {
	return len(c.tiers)
}

// Tier returns the tier at index i.
func (c *Catalog) Tier(i int) Tier {
	return c.tiers[i]
}

// Tiers returns a copy of the ordered tiers.
func (c *Catalog) Tiers() []Tier {
	out := make([]Tier, len(c.tiers))
	copy(out, c.tiers)
	return out
}

// Index returns the position of the active tier for unitsSold: the last tier
// whose threshold does not exceed it. Thresholds are ascending, so the scan
// stops at the first tier that is still locked.
func (c *Catalog) Index(unitsSold int) int {
	best := 0
	for i, tier := range c.tiers {
		if unitsSold < tier.Threshold {
			break
		}
		best = i
	}
	return best
}

// Select returns the active tier for unitsSold.
func (c *Catalog) Select(unitsSold int) Tier {
	return c.tiers[c.Index(unitsSold)]
}
