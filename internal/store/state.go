package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ziadkadry99/chunlian/internal/model"
)

const (
	// StorageKey is the key the app snapshot is stored under.
	StorageKey = "ai-new-year-storage"
	// SchemaVersion is written with every snapshot. Snapshots carrying a
	// different version are discarded on load.
	SchemaVersion = 0
)

// ErrVersionMismatch means a stored snapshot was written by an
// incompatible schema version.
var ErrVersionMismatch = errors.New("snapshot version mismatch")

// State is the persisted application state.
type State struct {
	CurrentPage    model.Page            `json:"currentPage"`
	CoupletHistory []model.CoupletResult `json:"coupletHistory"`
	FortuneHistory []model.FortuneCard   `json:"fortuneHistory"`
	Settings       model.Settings        `json:"settings"`
}

// DefaultState is the state of a first launch.
func DefaultState() State {
	return State{
		CurrentPage:    model.PageHome,
		CoupletHistory: []model.CoupletResult{},
		FortuneHistory: []model.FortuneCard{},
		Settings:       model.DefaultSettings(),
	}
}

// clone returns a copy that shares no slices with s.
func (s State) clone() State {
	out := s
	out.CoupletHistory = make([]model.CoupletResult, len(s.CoupletHistory))
	copy(out.CoupletHistory, s.CoupletHistory)
	out.FortuneHistory = make([]model.FortuneCard, len(s.FortuneHistory))
	copy(out.FortuneHistory, s.FortuneHistory)
	return out
}

type envelope struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// encodeState wraps s in the versioned envelope.
func encodeState(s State) ([]byte, error) {
	data, err := json.Marshal(envelope{State: s, Version: SchemaVersion})
	if err != nil {
		return nil, fmt.Errorf("marshalling state: %w", err)
	}
	return data, nil
}

// decodeState reads an envelope. Fields absent from the stored state keep
// their defaults.
func decodeState(data []byte) (State, error) {
	var raw struct {
		State   json.RawMessage `json:"state"`
		Version int             `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return DefaultState(), fmt.Errorf("unmarshalling snapshot: %w", err)
	}
	if raw.Version != SchemaVersion {
		return DefaultState(), fmt.Errorf("%w: stored %d, want %d", ErrVersionMismatch, raw.Version, SchemaVersion)
	}

	s := DefaultState()
	if len(raw.State) > 0 {
		if err := json.Unmarshal(raw.State, &s); err != nil {
			return DefaultState(), fmt.Errorf("unmarshalling state: %w", err)
		}
	}
	if s.CoupletHistory == nil {
		s.CoupletHistory = []model.CoupletResult{}
	}
	if s.FortuneHistory == nil {
		s.FortuneHistory = []model.FortuneCard{}
	}
	return s, nil
}
