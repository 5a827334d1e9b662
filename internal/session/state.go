package session

import "dessert-clicker/internal/catalog"

// State is a snapshot of one session's sales. Transitions return a new value,
// so UnitsSold and TotalRevenue always change together.
type State struct {
	UnitsSold    int
	TotalRevenue int
	TierIndex    int
	Tier         catalog.Tier
}

// Start returns the initial state: nothing sold, first tier active.
func Start(c *catalog.Catalog) State {
	return State{Tier: c.Tier(0)}
}

// RecordSale sells one unit of the active tier and re-selects the tier for
// the new sales count.
func RecordSale(c *catalog.Catalog, s State) State {
	sold := s.UnitsSold + 1
	idx := c.Index(sold)
	return State{
		UnitsSold:    sold,
		TotalRevenue: s.TotalRevenue + s.Tier.Price,
		TierIndex:    idx,
		Tier:         c.Tier(idx),
	}
}
