package hexbot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"hexbot-palette/internal/colour"
)

func serve(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestFetchRandomColour(t *testing.T) {
	c := serve(t, http.StatusOK, `{"colors":[{"value":"#3A7BD5"},{"value":"#000000"}]}`)
	got, err := c.FetchRandomColour(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != colour.MustParse("#3a7bd5") {
		t.Errorf("got %s, want #3a7bd5", got)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"empty", http.StatusOK, `{"colors":[]}`, func(err error) bool { return errors.Is(err, ErrNoColour) }},
		{"invalid value", http.StatusOK, `{"colors":[{"value":"blue"}]}`, func(err error) bool {
			var ice *colour.InvalidColorError
			return errors.As(err, &ice)
		}},
		{"garbage", http.StatusOK, `<html>`, func(err error) bool { return err != nil }},
		{"status", http.StatusServiceUnavailable, ``, func(err error) bool { return err != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := serve(t, tt.status, tt.body).FetchRandomColour(context.Background())
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFetchHonoursContext(t *testing.T) {
	c := serve(t, http.StatusOK, `{"colors":[{"value":"#ffffff"}]}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.FetchRandomColour(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestZeroClientConcurrentFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"colors":[{"value":"#0a0b0c"}]}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.FetchRandomColour(context.Background()); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if c.HTTP != nil {
		t.Error("fetch mutated the client")
	}
}
