package client

import (
	"context"
	"sync"
)

// State is the data lifecycle state of a screen.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}

	return "unknown"
}

// Loader loads the data of a screen. It must return when ctx is done.
type Loader[T any] func(ctx context.Context) (T, error)

// Snapshot is the state of a screen at one point in time.
//
// Data keeps the last successfully loaded value while a refresh is
// loading or after it failed.
type Snapshot[T any] struct {
	State      State
	Data       T
	Err        error
	Generation uint64 // Number of the load that produced the snapshot
}

// Screen runs the loads of a single screen.
//
// Every Refresh starts a new generation and cancels the load of the
// previous one. Only the newest generation publishes its result, so an
// old response arriving late never overwrites newer data.
// A Screen is safe for concurrent use.
type Screen[T any] struct {
	load     Loader[T]
	onChange func(Snapshot[T])

	mu       sync.Mutex
	snapshot Snapshot[T]
	cancel   context.CancelFunc
	closed   bool

	// Snapshots waiting for onChange, in publishing order
	pending    []Snapshot[T]
	delivering bool
}

// NewScreen returns an idle screen. onChange, if not nil, is called with
// every published snapshot. Calls happen in order, never concurrently,
// and without any lock held: onChange may call Snapshot, Refresh or Close.
func NewScreen[T any](load Loader[T], onChange func(Snapshot[T])) *Screen[T] {
	return &Screen[T]{
		load:     load,
		onChange: onChange,
	}
}

// Snapshot returns the current state.
func (s *Screen[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot
}

// Refresh starts loading and returns a channel that is closed once the
// load finished, whether its result was published or discarded.
//
// A load that is already in flight is cancelled. After Close, Refresh
// does nothing and returns a closed channel.
func (s *Screen[T]) Refresh(ctx context.Context) <-chan struct{} {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		done := make(chan struct{})
		close(done)
		return done
	}

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.cancel = cancel
	s.snapshot.Generation++
	s.snapshot.State = StateLoading
	s.snapshot.Err = nil
	generation := s.snapshot.Generation
	s.publish()

	s.mu.Unlock()
	s.deliver()

	go func() {
		defer close(done)
		defer cancel()

		data, err := s.load(ctx)

		s.mu.Lock()

		// A newer generation or Close took over
		if s.closed || generation != s.snapshot.Generation {
			s.mu.Unlock()
			return
		}

		if err != nil {
			s.snapshot.State = StateError
			s.snapshot.Err = err
		} else {
			s.snapshot.State = StateLoaded
			s.snapshot.Data = data
		}
		s.cancel = nil
		s.publish()

		s.mu.Unlock()
		s.deliver()
	}()

	return done
}

// Load refreshes and waits for the result.
func (s *Screen[T]) Load(ctx context.Context) Snapshot[T] {
	<-s.Refresh(ctx)
	return s.Snapshot()
}

// Close cancels the load in flight. Results of loads that finish after
// Close are discarded.
func (s *Screen[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// publish queues the current snapshot for onChange. s.mu must be held.
func (s *Screen[T]) publish() {
	if s.onChange != nil {
		s.pending = append(s.pending, s.snapshot)
	}
}

// deliver calls onChange for all queued snapshots. s.mu must not be held.
//
// Only one goroutine delivers at a time. Snapshots queued while onChange
// runs, including by onChange itself, are delivered by that goroutine
// before it returns.
func (s *Screen[T]) deliver() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		s.onChange(next)

		s.mu.Lock()
	}

	s.pending = nil
	s.delivering = false
	s.mu.Unlock()
}
