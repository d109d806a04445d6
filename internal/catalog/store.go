package catalog

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

const reloadKey = "catalog"

// Store owns the current snapshot and replaces it wholesale on reload.
// Readers always see a fully built snapshot: the new one is assembled off to
// the side and published with a single pointer store.
type Store struct {
	source  RowSource
	current atomic.Pointer[Snapshot]
	group   singleflight.Group
}

// NewStore creates a store that starts with an empty snapshot.
func NewStore(source RowSource) *Store {
	s := &Store{source: source}
	s.current.Store(Empty())
	return s
}

// Snapshot returns the current snapshot. Hold on to the returned value for
// the duration of a request so every lookup sees the same data.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Swap publishes snap as the current snapshot.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		snap = Empty()
	}
	s.current.Store(snap)
}

// Reload fetches the feed, builds a new snapshot and swaps it in.
// Concurrent calls share one fetch. On a feed error the current snapshot is
// left in place and the error is returned.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.group.Do(reloadKey, func() (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rows, err := s.source.FetchCatalogRows(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: fetch rows: %w", err)
		}

		snap := Build(rows)
		s.current.Store(snap)
		return snap, nil
	})
	if err != nil {
		return s.Snapshot(), err
	}
	return v.(*Snapshot), nil
}
