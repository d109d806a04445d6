package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	calls atomic.Int32
	delay time.Duration
	fetch func(call int32) ([]Row, error)
}

func (s *stubSource) FetchCatalogRows(ctx context.Context) ([]Row, error) {
	n := s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.fetch(n)
}

// generation returns rows whose subjects and schedules all carry the same tag.
func generation(tag string, persons int) []Row {
	rows := make([]Row, 0, persons*2)
	for i := range persons {
		id := int64(i + 1)
		base := Row{PersonID: id, PersonName: fmt.Sprintf("Person %d", id)}
		for j := range 2 {
			r := base
			r.SubjectID = ptr(int64(j + 1))
			r.SubjectCode = fmt.Sprintf("%s-%d", tag, j)
			r.ScheduleID = ptr(int64(j + 1))
			rows = append(rows, r)
		}
	}
	return rows
}

func TestStore_StartsEmpty(t *testing.T) {
	t.Parallel()

	store := NewStore(&stubSource{fetch: func(int32) ([]Row, error) { return nil, nil }})
	require.NotNil(t, store.Snapshot())
	assert.Zero(t, store.Snapshot().Len())
}

func TestStore_Reload(t *testing.T) {
	t.Parallel()

	src := &stubSource{fetch: func(int32) ([]Row, error) { return feedRows(), nil }}
	store := NewStore(src)

	snap, err := store.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Len())
	assert.Same(t, snap, store.Snapshot())
}

func TestStore_ReloadErrorKeepsCurrent(t *testing.T) {
	t.Parallel()

	feedErr := errors.New("db down")
	src := &stubSource{fetch: func(call int32) ([]Row, error) {
		if call == 1 {
			return feedRows(), nil
		}
		return nil, feedErr
	}}
	store := NewStore(src)

	first, err := store.Reload(context.Background())
	require.NoError(t, err)

	snap, err := store.Reload(context.Background())
	require.ErrorIs(t, err, feedErr)
	assert.Same(t, first, snap)
	assert.Same(t, first, store.Snapshot())
}

func TestStore_ReloadCancelled(t *testing.T) {
	t.Parallel()

	src := &stubSource{fetch: func(int32) ([]Row, error) {
		t.Error("fetch should not run with a cancelled context")
		return nil, nil
	}}
	store := NewStore(src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentReloadsShareOneFetch(t *testing.T) {
	t.Parallel()

	src := &stubSource{
		delay: 100 * time.Millisecond,
		fetch: func(int32) ([]Row, error) { return feedRows(), nil },
	}
	store := NewStore(src)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Reload(context.Background()); err != nil {
				t.Errorf("Reload() error = %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestStore_ReadersNeverSeeMixedSnapshots(t *testing.T) {
	t.Parallel()

	src := &stubSource{fetch: func(call int32) ([]Row, error) {
		return generation(fmt.Sprintf("gen%d", call), 20), nil
	}}
	store := NewStore(src)
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			_, _ = store.Reload(context.Background())
		}
	}()

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				snap := store.Snapshot()
				var tag string
				for _, p := range snap.Persons() {
					for _, s := range p.Subjects {
						gen, _, _ := strings.Cut(s.Code, "-")
						if tag == "" {
							tag = gen
						}
						if gen != tag {
							t.Errorf("snapshot mixes %s and %s", tag, gen)
							return
						}
					}
					for _, sch := range p.Schedules {
						gen, _, _ := strings.Cut(sch.SubjectCode, "-")
						if gen != tag {
							t.Errorf("schedule from %s in snapshot of %s", gen, tag)
							return
						}
					}
				}
			}
		}()
	}
	wg.Wait()

	assert.Greater(t, src.calls.Load(), int32(1))
}
