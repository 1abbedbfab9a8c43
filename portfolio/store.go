package portfolio

import (
	"context"
	"slices"
	"sync"

	"github.com/etnz/fxdash"
	"github.com/rs/zerolog/log"
)

// Store caches a snapshot of a Feed.
//
// The snapshot is fetched by the first Load and replaced by Refresh only. A
// feed that fails yields an empty collection: the error is logged, and
// returned by Load and Refresh for information.
//
// A Store is safe for concurrent use.
type Store struct {
	feed Feed

	loadMu sync.Mutex // serializes first loads

	mu       sync.RWMutex
	loaded   bool
	trades   []fxdash.Trade
	exposure []fxdash.ExposureEntry
}

// NewStore returns an empty store over feed.
func NewStore(feed Feed) *Store { return &Store{feed: feed} }

// Load fetches the snapshot unless it is already loaded. Concurrent first
// calls fetch once: the others wait for it.
func (s *Store) Load(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.Loaded() {
		return nil
	}
	return s.Refresh(ctx)
}

// Refresh fetches both collections and replaces the snapshot.
func (s *Store) Refresh(ctx context.Context) error {
	trades, terr := s.feed.Trades(ctx)
	if terr != nil {
		log.Error().Err(terr).Msg("cannot fetch trades")
		trades = nil
	}
	exposure, eerr := s.feed.Exposure(ctx)
	if eerr != nil {
		log.Error().Err(eerr).Msg("cannot fetch exposure")
		exposure = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = trades
	s.exposure = exposure
	s.loaded = true
	if terr != nil {
		return terr
	}
	return eerr
}

// Loaded reports whether a snapshot has been fetched.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Trades returns a copy of the trades, never nil.
func (s *Store) Trades() []fxdash.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]fxdash.Trade, 0, len(s.trades)), s.trades...)
}

// Exposure returns a copy of the currency exposure, never nil.
func (s *Store) Exposure() []fxdash.ExposureEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]fxdash.ExposureEntry, 0, len(s.exposure)), s.exposure...)
}

// PairExposure returns the exposure view of pair over the current snapshot.
func (s *Store) PairExposure(pair fxdash.Pair) fxdash.PairExposure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fxdash.NewPairExposure(slices.Clip(s.trades), pair)
}

// CurrencyExposure looks up the exposure entry of c.
func (s *Store) CurrencyExposure(c fxdash.Currency) (fxdash.ExposureEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fxdash.LookupExposure(s.exposure, c)
}
