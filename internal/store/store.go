// internal/store/store.go

// Package store keeps the client-side mirror of the remote catalog: the
// authoritative in-memory item list, the active search query, and the
// derived visible view.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"libery/internal/catalog"
)

// Lister is the slice of the repository client the store needs.
type Lister interface {
	List(ctx context.Context) ([]catalog.Item, error)
}

// Store owns the item list. The visible view is always derived through
// catalog.Filter; nothing mutates it independently.
type Store struct {
	client Lister
	logger *zap.Logger

	mu      sync.Mutex
	items   []catalog.Item
	query   string
	visible []catalog.Item
	loading bool
	lastErr error
	seq     uint64 // newest refresh requested
}

func New(client Lister, logger *zap.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// Refresh replaces the item list wholesale from the backend. When
// refreshes overlap, each is tagged with a sequence number and a response
// that is no longer the newest requested is discarded, so a stale fetch
// can never overwrite a newer one. On failure the prior items are kept
// and the error is recorded for display.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	items, err := s.client.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.Debug("discarding superseded refresh", zap.Uint64("seq", seq), zap.Uint64("latest", s.seq))
		return nil
	}

	s.loading = false
	if err != nil {
		s.lastErr = err
		return err
	}

	s.lastErr = nil
	s.items = items
	s.visible = catalog.Filter(s.items, s.query)
	return nil
}

// ApplyDelete removes the item with the given ID locally, without a
// re-fetch. Call it only after the backend confirmed the delete; there is
// no rollback.
func (s *Store) ApplyDelete(id catalog.ItemID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]catalog.Item, 0, len(s.items))
	removed := false
	for _, it := range s.items {
		if it.Key() == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false
	}

	s.items = kept
	s.visible = catalog.Filter(s.items, s.query)
	return true
}

// SetQuery updates the search query and recomputes the visible view.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
	s.visible = catalog.Filter(s.items, s.query)
}

// Items returns a snapshot of the full item list.
func (s *Store) Items() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.items)
}

// Visible returns a snapshot of the filtered view.
func (s *Store) Visible() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.visible)
}

// Query returns the active search query.
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Loading reports whether the newest refresh is still in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the error from the most recent completed refresh, or nil.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func snapshot(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, len(items))
	copy(out, items)
	return out
}
