package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/model"
)

// Store is the persisted app store. Mutations apply synchronously, notify
// subscribers, then schedule a background snapshot write. Pending writes
// coalesce so only the latest state is saved.
type Store struct {
	persister Persister

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
	lastErr error

	dirty     chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Open rehydrates the store from p and starts its writer. A stored snapshot
// that cannot be decoded is discarded and the defaults are used.
func Open(ctx context.Context, p Persister) (*Store, error) {
	state := DefaultState()

	data, ok, err := p.Load(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", StorageKey, err)
	}
	if ok {
		decoded, err := decodeState(data)
		if err != nil {
			logrus.WithError(err).Warn("discarding stored app state")
		} else {
			state = decoded
		}
	}

	s := &Store{
		persister: p,
		state:     state,
		subs:      make(map[int]func(State)),
		dirty:     make(chan struct{}, 1),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go s.writer()
	return s, nil
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Settings returns the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// Subscribe registers fn to be called with the new state after every
// mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SetPage records the page the user is on.
func (s *Store) SetPage(p model.Page) {
	s.update(func(st *State) { st.CurrentPage = p })
}

// AddCoupletHistory prepends c to the couplet history.
func (s *Store) AddCoupletHistory(c model.CoupletResult) {
	s.update(func(st *State) {
		st.CoupletHistory = append([]model.CoupletResult{c}, st.CoupletHistory...)
	})
}

// AddFortuneHistory prepends f to the fortune history.
func (s *Store) AddFortuneHistory(f model.FortuneCard) {
	s.update(func(st *State) {
		st.FortuneHistory = append([]model.FortuneCard{f}, st.FortuneHistory...)
	})
}

// ToggleSound flips the sound setting.
func (s *Store) ToggleSound() {
	s.update(func(st *State) { st.Settings.SoundEnabled = !st.Settings.SoundEnabled })
}

// ToggleAnimation flips the animation setting.
func (s *Store) ToggleAnimation() {
	s.update(func(st *State) { st.Settings.AnimationEnabled = !st.Settings.AnimationEnabled })
}

func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap.clone())
	}

	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *Store) writer() {
	defer close(s.done)
	for {
		select {
		case <-s.dirty:
			s.flush()
		case <-s.stop:
			select {
			case <-s.dirty:
				s.flush()
			default:
			}
			return
		}
	}
}

func (s *Store) flush() {
	data, err := encodeState(s.State())
	if err == nil {
		err = s.persister.Save(context.Background(), StorageKey, data)
	}

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		logrus.WithError(err).Warn("saving app state")
	}
}

// Close writes any pending snapshot and stops the writer. Mutations made
// after Close are kept in memory only.
func (s *Store) Close() error {
	s.closeOnce.Do(func() { close(s.stop) })
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
