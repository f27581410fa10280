package config

import (
	"io"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Frontend != FrontendWindow {
		t.Errorf("default frontend = %q, want %q", cfg.Frontend, FrontendWindow)
	}
	if w, h := cfg.WindowSize(); w != 512 || h != 512 {
		t.Errorf("window = %dx%d, want 512x512", w, h)
	}
	if got := cfg.TickInterval(); got != time.Second/16 {
		t.Errorf("tick interval = %v, want %v", got, time.Second/16)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"-width", "20", "-height", "12", "-tps", "8",
		"-frontend", "terminal", "-seed", "42", "-length", "2", "-sound",
	}, io.Discard)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 12 || cfg.TPS != 8 {
		t.Errorf("grid/tps = %dx%d@%d", cfg.Width, cfg.Height, cfg.TPS)
	}
	if cfg.Frontend != FrontendTerminal || cfg.Seed != 42 || cfg.Length != 2 || !cfg.Sound {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"-width", "0"}},
		{"negative cell", []string{"-cell", "-1"}},
		{"tps too low", []string{"-tps", "0"}},
		{"tps too high", []string{"-tps", "61"}},
		{"length 3", []string{"-length", "3"}},
		{"length 2 on narrow grid", []string{"-width", "3", "-length", "2"}},
		{"unknown frontend", []string{"-frontend", "opengl"}},
		{"unknown flag", []string{"-colour", "red"}},
		{"stray argument", []string{"play"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args, io.Discard); err == nil {
				t.Errorf("Parse(%v) accepted invalid input", tt.args)
			}
		})
	}
}
