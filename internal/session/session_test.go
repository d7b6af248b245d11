package session_test

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"hexbot-palette/internal/colour"
	"hexbot-palette/internal/kv"
	"hexbot-palette/internal/palette"
	"hexbot-palette/internal/session"
	"hexbot-palette/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetLevel("error")
	os.Exit(m.Run())
}

// queue hands out its colours in order, then fails.
type queue struct {
	colours []colour.Colour
}

var errOffline = errors.New("offline")

func (q *queue) FetchRandomColour(context.Context) (colour.Colour, error) {
	if len(q.colours) == 0 {
		return colour.Colour{}, errOffline
	}
	c := q.colours[0]
	q.colours = q.colours[1:]
	return c, nil
}

func newSession(colours ...string) *session.Session {
	q := &queue{}
	for _, h := range colours {
		q.colours = append(q.colours, colour.MustParse(h))
	}
	return session.New(q, palette.New(kv.NewMemory()))
}

func TestEmptyView(t *testing.T) {
	s := newSession()
	v := s.View()
	if v.Base != "" || v.Contrast != nil || v.Related != nil {
		t.Errorf("view without base = %+v", v)
	}
	if len(v.Saved) != 0 {
		t.Errorf("Saved = %v", v.Saved)
	}
	if _, err := s.SaveBase(); !errors.Is(err, session.ErrNoBase) {
		t.Errorf("SaveBase err = %v, want ErrNoBase", err)
	}
	if _, err := s.Select(colour.LabelDarker); !errors.Is(err, session.ErrNoBase) {
		t.Errorf("Select err = %v, want ErrNoBase", err)
	}
}

func TestRefreshKeepsBaseOnFailure(t *testing.T) {
	s := newSession("#336699")

	v, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if v.Base != "#336699" || len(v.Related) != 7 {
		t.Fatalf("view = %+v", v)
	}
	if v.Contrast == nil || v.Contrast.Text != colour.White {
		t.Errorf("contrast = %+v", v.Contrast)
	}

	v, err = s.Refresh(context.Background())
	if !errors.Is(err, errOffline) {
		t.Fatalf("err = %v, want errOffline", err)
	}
	if v.Base != "#336699" {
		t.Errorf("base after failed refresh = %q", v.Base)
	}
}

func TestSelect(t *testing.T) {
	s := newSession()
	base := colour.MustParse("#336699")
	s.SetBase(base)

	v, err := s.Select(colour.LabelComplementary)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := colour.Related(base, colour.LabelComplementary)
	if v.Base != want.Hex() {
		t.Errorf("base = %s, want %s", v.Base, want)
	}

	if _, err := s.Select("tetradic"); !errors.Is(err, session.ErrUnknownLabel) {
		t.Errorf("err = %v, want ErrUnknownLabel", err)
	}
	if got, _ := s.Base(); got != want {
		t.Error("failed select changed the base")
	}
}

func TestSaveAndRemove(t *testing.T) {
	s := newSession("#ff0000")
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveBase(); err != nil {
		t.Fatal(err)
	}
	v, err := s.Save(colour.MustParse("#00FF00"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"#ff0000", "#00ff00"}; !reflect.DeepEqual(v.Saved, want) {
		t.Fatalf("Saved = %v, want %v", v.Saved, want)
	}

	v, err = s.Remove(colour.MustParse("#ff0000"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"#00ff00"}; !reflect.DeepEqual(v.Saved, want) {
		t.Errorf("Saved = %v, want %v", v.Saved, want)
	}
	if v.Base != "#ff0000" {
		t.Error("removing a saved colour changed the base")
	}
	if !reflect.DeepEqual(s.Saved(), v.Saved) {
		t.Error("Saved() disagrees with view")
	}
}
