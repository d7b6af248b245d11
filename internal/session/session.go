// Package session ties the colour math, the random colour source and the
// saved palette together around a single current base colour.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/palette"
	"hexbot-palette/internal/ui"
)

var (
	ErrNoBase       = errors.New("no base colour yet")
	ErrUnknownLabel = errors.New("unknown related colour label")
)

// Source produces random colours on demand.
type Source interface {
	FetchRandomColour(ctx context.Context) (colour.Colour, error)
}

// View is a snapshot of everything a surface needs to draw: the base colour,
// its contrast tokens and related colours, and the saved palette. Base is
// empty and Contrast and Related are nil until a base colour is set.
type View struct {
	Base     string           `json:"base"`
	Contrast *colour.Contrast `json:"contrast,omitempty"`
	Related  []colour.Derived `json:"related"`
	Saved    []string         `json:"saved"`
}

type Session struct {
	source  Source
	palette *palette.Store

	mu      sync.RWMutex
	base    colour.Colour
	hasBase bool
}

func New(source Source, store *palette.Store) *Session {
	return &Session{source: source, palette: store}
}

// Refresh fetches a new random base colour. When the source fails the
// previous base is kept and the error is returned with the current view.
func (s *Session) Refresh(ctx context.Context) (View, error) {
	if s.source == nil {
		return s.View(), errors.New("no colour source configured")
	}
	c, err := s.source.FetchRandomColour(ctx)
	if err != nil {
		ui.LogStatus("warn", "Random colour fetch failed, keeping current base: "+err.Error())
		return s.View(), fmt.Errorf("refresh: %w", err)
	}
	ui.LogStatus("debug", "Fetched random colour "+c.Hex())
	return s.SetBase(c), nil
}

// SetBase makes c the current base colour.
func (s *Session) SetBase(c colour.Colour) View {
	s.mu.Lock()
	s.base, s.hasBase = c, true
	s.mu.Unlock()
	return s.View()
}

// Select makes the related colour with the given label the new base.
func (s *Session) Select(label string) (View, error) {
	base, ok := s.Base()
	if !ok {
		return s.View(), ErrNoBase
	}
	c, ok := colour.Related(base, label)
	if !ok {
		return s.View(), fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return s.SetBase(c), nil
}

// SaveBase adds the current base colour to the palette.
func (s *Session) SaveBase() (View, error) {
	base, ok := s.Base()
	if !ok {
		return s.View(), ErrNoBase
	}
	return s.Save(base)
}

// Save adds c to the palette.
func (s *Session) Save(c colour.Colour) (View, error) {
	if _, err := s.palette.Add(c); err != nil {
		return s.View(), err
	}
	return s.View(), nil
}

// Remove drops c from the palette.
func (s *Session) Remove(c colour.Colour) (View, error) {
	if _, err := s.palette.Remove(c); err != nil {
		return s.View(), err
	}
	return s.View(), nil
}

// Base returns the current base colour and whether one has been set.
func (s *Session) Base() (colour.Colour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base, s.hasBase
}

// Saved returns the saved palette.
func (s *Session) Saved() []string {
	return s.palette.Colours()
}

func (s *Session) View() View {
	v := View{Saved: s.palette.Colours()}
	base, ok := s.Base()
	if !ok {
		return v
	}
	contrast := colour.ContrastOf(base)
	v.Base = base.Hex()
	v.Contrast = &contrast
	v.Related = colour.DeriveRelated(base)
	return v
}
