package config

import (
	"path/filepath"
	"testing"
)

func TestResolveDBPathPrefersFlag(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	got, err := ResolveDBPath("/tmp/explicit.framedb")
	if err != nil {
		t.Fatalf("ResolveDBPath: %v", err)
	}
	if got != "/tmp/explicit.framedb" {
		t.Fatalf("got %q, want explicit flag value", got)
	}
}

func TestResolveDBPathFallsBackToHome(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	got, err := ResolveDBPath("")
	if err != nil {
		t.Fatalf("ResolveDBPath: %v", err)
	}
	want := filepath.Join(home, ".framedb")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveEditorPrecedence(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	Set("editor", "nano")

	if got := ResolveEditor(""); got != "nano" {
		t.Fatalf("got %q, want config fallback %q", got, "nano")
	}
	if got := ResolveEditor("vim"); got != "vim" {
		t.Fatalf("got %q, want explicit flag to win", got)
	}

	t.Setenv("EDITOR", "emacs")
	if got := ResolveEditor(""); got != "emacs" {
		t.Fatalf("got %q, want $EDITOR to win over config", got)
	}

	t.Setenv("VISUAL", "vi")
	if got := ResolveEditor(""); got != "vi" {
		t.Fatalf("got %q, want $VISUAL to win over $EDITOR", got)
	}
}

func TestGettersDefaults(t *testing.T) {
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if GetInt("history.count") != 10 {
		t.Fatalf("default history.count = %d, want 10", GetInt("history.count"))
	}
	if GetBool("no-color") != false {
		t.Fatalf("default no-color = true, want false")
	}
	if GetDuration("lock-timeout").Seconds() != 5 {
		t.Fatalf("default lock-timeout = %v, want 5s", GetDuration("lock-timeout"))
	}
}
