package commands

import (
	"path/filepath"
	"testing"

	"hexbot-palette/internal/config"
)

func TestApplyFlagsNormalisesStore(t *testing.T) {
	for _, k := range []string{"PALETTE_STORE", "PALETTE_HOME", "HEXBOT_URL", "API_KEY_HASH"} {
		t.Setenv(k, "")
	}
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}

	prevHome, prevStore, prevURL := home, storeKind, hexbotURL
	t.Cleanup(func() { home, storeKind, hexbotURL = prevHome, prevStore, prevURL })

	home, storeKind, hexbotURL = t.TempDir(), " SQLite ", "http://127.0.0.1:1/hexbot"
	applyFlags(cfg)

	if cfg.Store != "sqlite" {
		t.Errorf("Store = %q, want sqlite", cfg.Store)
	}
	if cfg.Home != home || cfg.HexbotURL != hexbotURL {
		t.Errorf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestApplyFlagsKeepsConfigWhenUnset(t *testing.T) {
	prevHome, prevStore, prevURL := home, storeKind, hexbotURL
	t.Cleanup(func() { home, storeKind, hexbotURL = prevHome, prevStore, prevURL })
	home, storeKind, hexbotURL = "", "", ""

	cfg := &config.Config{Home: "/data", Store: "memory", HexbotURL: "http://h"}
	applyFlags(cfg)
	if cfg.Home != "/data" || cfg.Store != "memory" || cfg.HexbotURL != "http://h" {
		t.Errorf("cfg = %+v", cfg)
	}
}
