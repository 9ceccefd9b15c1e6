// Package store holds the tablet state shared by every view and notifies
// observers when it changes.
package store

import (
	"slices"
	"sync"

	"github.com/tabletlab/tablet"
)

// Observer is notified with a fresh snapshot after every state change.
// *tablet.Renderer implements Observer.
type Observer interface {
	OnStateChange(s tablet.Snapshot)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(s tablet.Snapshot)

// OnStateChange calls fn(s).
func (fn ObserverFunc) OnStateChange(s tablet.Snapshot) {
	fn(s)
}

// Action mutates the state. Actions are applied in order under the store
// lock and must not call back into the store.
type Action func(s *tablet.Snapshot)

// Option configures a Store during creation.
type Option func(*Store)

// WithCupRadius replaces the function that derives the cup radius from
// the other dimensions. The default is tablet.CupRadius over the length.
func WithCupRadius(fn func(g tablet.Geometry) float64) Option {
	return func(s *Store) {
		if fn != nil {
			s.cupRadius = fn
		}
	}
}

type subscription struct {
	id   uint64
	obs  Observer
	seen uint64 // version last delivered
}

// Store is a single state cell with synchronous change notification.
//
// Notifications are serialized: while observers are being notified, a
// Dispatch from another goroutine or from an observer only records the
// change, and the notifying goroutine delivers the newest snapshot once
// the current round completes. Every observer therefore sees snapshots one
// at a time and always ends up with the latest state.
type Store struct {
	mu        sync.Mutex
	state     tablet.Snapshot
	version   uint64
	subs      []*subscription
	nextID    uint64
	notifying bool
	cupRadius func(g tablet.Geometry) float64
}

// New creates a store holding initial. The cup radius of initial is
// ignored and derived from its other dimensions.
func New(initial tablet.Snapshot, opts ...Option) *Store {
	s := &Store{
		state:   initial,
		version: 1,
		cupRadius: func(g tablet.Geometry) float64 {
			return tablet.CupRadius(g.Length, g.TotalThickness, g.BandThickness)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state with the derived cup radius filled in.
func (s *Store) Snapshot() tablet.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() tablet.Snapshot {
	snap := s.state
	snap.CupRadius = s.cupRadius(snap.Geometry)
	return snap
}

// Subscribe registers o and delivers the current snapshot to it before
// returning, unless another goroutine is notifying, in which case that
// goroutine delivers it. The returned function unsubscribes o; it is safe
// to call more than once.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, &subscription{id: id, obs: o})
	s.notifyLocked()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub *subscription) bool {
			return sub.id == id
		})
	}
}

// Dispatch applies actions in order and notifies observers if the state
// changed.
func (s *Store) Dispatch(actions ...Action) {
	s.mu.Lock()
	before := s.state
	for _, a := range actions {
		a(&s.state)
	}
	if s.state != before {
		s.version++
	}
	s.notifyLocked()
}

// notifyLocked delivers the newest snapshot to every subscription that has
// not seen it. It is called with s.mu held and releases it, also when an
// observer panics.
func (s *Store) notifyLocked() {
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	locked := true
	defer func() {
		if !locked {
			s.mu.Lock()
		}
		s.notifying = false
		s.mu.Unlock()
	}()

	for {
		snap := s.snapshotLocked()
		var due []Observer
		for _, sub := range s.subs {
			if sub.seen != s.version {
				sub.seen = s.version
				due = append(due, sub.obs)
			}
		}
		if len(due) == 0 {
			return
		}
		s.mu.Unlock()
		locked = false
		tablet.Logger().Debug("store: notifying observers",
			"observers", len(due), "shape", snap.Shape.String())
		for _, o := range due {
			o.OnStateChange(snap)
		}
		s.mu.Lock()
		locked = true
	}
}

// Len returns the number of subscribed observers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
