package main

import (
	"bytes"
	"errors"
	"snek/config"
	"snek/game"
	"testing"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		snap game.Snapshot
		want string
	}{
		{"quit", game.Snapshot{State: game.Running, Score: 2}, "Quit. Score: 2\n"},
		{"collision", game.Snapshot{State: game.Terminated, Score: 5, Err: errors.New("self collision at {1 1}")},
			"Game over (self collision at {1 1}). Score: 5\n"},
		{"no cause", game.Snapshot{State: game.Terminated}, "Game over. Score: 0\n"},
		{"board full", game.Snapshot{State: game.Terminated, Score: 3, Err: errors.New("board full"), Won: true},
			"You win, the board is full! Score: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report(&buf, tt.snap)
			if buf.String() != tt.want {
				t.Errorf("report = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	if code := run([]string{"-frontend", "opengl"}); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if code := run([]string{"-tps", "0"}); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestCheckFrontend(t *testing.T) {
	other := config.FrontendEbiten
	if windowFrontend == config.FrontendEbiten {
		other = config.FrontendRaylib
	}
	for _, name := range []string{config.FrontendWindow, config.FrontendTerminal, windowFrontend} {
		if err := checkFrontend(name); err != nil {
			t.Errorf("checkFrontend(%q) = %v", name, err)
		}
	}
	if err := checkFrontend(other); err == nil {
		t.Errorf("checkFrontend(%q) accepted a frontend this binary lacks", other)
	}
	if code := run([]string{"-frontend", other}); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
