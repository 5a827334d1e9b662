package session

import (
	"sync"

	"github.com/google/uuid"

	"dessert-clicker/internal/catalog"
	"dessert-clicker/internal/logger"
)

// Session owns the state of one running app instance. It is driven from the
// UI event goroutine only and takes no locks.
type Session struct {
	id      string
	catalog *catalog.Catalog
	state   State
	logger  logger.Logger
	ended   sync.Once
}

func New(c *catalog.Catalog, log logger.Logger) *Session {
	if log == nil {
		log = logger.NoOp{}
	}

	s := &Session{
		id:      uuid.NewString(),
		catalog: c,
		state:   Start(c),
		logger:  log,
	}

	s.logger.Info("Session", "session started", map[string]interface{}{
		"session_id": s.id,
		"tiers":      c.Len(),
		"tier":       s.state.Tier.Name,
	})
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// RecordSale applies one sale and returns the resulting state.
func (s *Session) RecordSale() State {
	prev := s.state
	s.state = RecordSale(s.catalog, prev)

	s.logger.Debug("Session", "sale recorded", map[string]interface{}{
		"session_id":    s.id,
		"units_sold":    s.state.UnitsSold,
		"total_revenue": s.state.TotalRevenue,
	})

	if s.state.TierIndex != prev.TierIndex {
		s.logger.Info("Session", "tier unlocked", map[string]interface{}{
			"session_id": s.id,
			"tier":       s.state.Tier.Name,
			"price":      s.state.Tier.Price,
			"units_sold": s.state.UnitsSold,
		})
	}

	return s.state
}

// Shutdown logs the final totals. Only the first call has an effect, so both
// the signal handler and the window teardown may call it.
func (s *Session) Shutdown() {
	s.ended.Do(func() {
		s.logger.Info("Session", "session ended", map[string]interface{}{
			"session_id":    s.id,
			"units_sold":    s.state.UnitsSold,
			"total_revenue": s.state.TotalRevenue,
		})
	})
}
