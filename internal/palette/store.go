// Package palette keeps the user's saved colours: an ordered, duplicate-free
// list of hex strings that is written through to a kv.Store on every change.
package palette

import (
	"fmt"
	"slices"
	"sync"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/kv"
	"hexbot-palette/internal/metrics"
	"hexbot-palette/internal/ui"
)

// DefaultKey is the storage key the palette is persisted under.
const DefaultKey = "colours"

const (
	opAdd    = "add"
	opRemove = "remove"
)

// Store is the saved palette. The zero value is not usable; call New.
//
// The first call to any method loads the persisted list. Add and Remove hold
// the lock across compute and persist, so concurrent mutations never work
// from the same stale snapshot.
type Store struct {
	mu      sync.Mutex
	kv      kv.Store
	key     string
	colours []string
	ready   bool
}

// Option configures a Store.
type Option func(*Store)

// WithKey stores the palette under key instead of DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func New(store kv.Store, opts ...Option) *Store {
	s := &Store{kv: store, key: DefaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string { return s.key }

// Initialize loads the persisted palette once and returns it. A missing,
// unreadable or malformed value yields an empty palette.
func (s *Store) Initialize() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return slices.Clone(s.colours)
}

// Colours returns a snapshot of the palette in insertion order.
func (s *Store) Colours() []string {
	return s.Initialize()
}

func (s *Store) Contains(c colour.Colour) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return slices.Contains(s.colours, c.Hex())
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()
	return len(s.colours)
}

// Add appends c unless it is already saved, persists the resulting palette
// and returns it. The palette is written even when c was already present.
func (s *Store) Add(c colour.Colour) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	hex := c.Hex()
	next := slices.Clone(s.colours)
	if !slices.Contains(next, hex) {
		next = append(next, hex)
	}
	if err := s.persistLocked(opAdd, next); err != nil {
		return nil, err
	}
	ui.LogStatus("debug", fmt.Sprintf("Palette add %s (%d saved)", hex, len(next)))
	return slices.Clone(next), nil
}

// Remove drops every entry equal to c, persists the resulting palette and
// returns it. Removing an absent colour still rewrites the palette.
func (s *Store) Remove(c colour.Colour) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	hex := c.Hex()
	next := make([]string, 0, len(s.colours))
	for _, saved := range s.colours {
		if saved != hex {
			next = append(next, saved)
		}
	}
	if err := s.persistLocked(opRemove, next); err != nil {
		return nil, err
	}
	ui.LogStatus("debug", fmt.Sprintf("Palette remove %s (%d saved)", hex, len(next)))
	return slices.Clone(next), nil
}

func (s *Store) persistLocked(op string, next []string) error {
	if err := s.kv.Save(s.key, next); err != nil {
		metrics.MetricMutationsTotal.WithLabelValues(op, metrics.Result(err)).Inc()
		ui.LogStatus("error", fmt.Sprintf("Failed to save palette (%s): %v", op, err))
		return &PersistenceError{Op: op, Key: s.key, Err: err}
	}
	metrics.MetricMutationsTotal.WithLabelValues(op, metrics.Result(nil)).Inc()
	s.colours = next
	metrics.SetSavedColours(len(next))
	return nil
}

func (s *Store) ensureLoaded() {
	if s.ready {
		return
	}
	s.ready = true
	s.colours = []string{}

	var raw []any
	found, err := s.kv.Load(s.key, &raw)
	if err != nil {
		ui.LogStatus("warn", "Failed to load saved palette, starting fresh: "+err.Error())
		metrics.SetSavedColours(0)
		return
	}
	if !found {
		metrics.SetSavedColours(0)
		return
	}

	s.colours = normalise(raw)
	if dropped := len(raw) - len(s.colours); dropped > 0 {
		ui.LogStatus("warn", fmt.Sprintf("Dropped %d invalid or duplicate palette entries", dropped))
	}
	if !matches(raw, s.colours) {
		// Rewrite so the stored value matches what callers see.
		if err := s.kv.Save(s.key, s.colours); err != nil {
			ui.LogStatus("warn", "Failed to rewrite normalised palette: "+err.Error())
		}
	}
	ui.LogStatus("info", fmt.Sprintf("Restored %d saved colours", len(s.colours)))
	metrics.SetSavedColours(len(s.colours))
}

// normalise keeps the entries that parse as colours, in canonical form,
// first occurrence wins.
func normalise(raw []any) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}
		c, err := colour.Parse(str)
		if err != nil {
			continue
		}
		hex := c.Hex()
		if _, dup := seen[hex]; dup {
			continue
		}
		seen[hex] = struct{}{}
		out = append(out, hex)
	}
	return out
}

// matches reports whether raw already is the canonical list.
func matches(raw []any, canonical []string) bool {
	if len(raw) != len(canonical) {
		return false
	}
	for i, v := range raw {
		if str, ok := v.(string); !ok || str != canonical[i] {
			return false
		}
	}
	return true
}
