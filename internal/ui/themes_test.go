package ui

import (
	"strings"
	"testing"
)

func TestInitTheme_NoColorFlag(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	InitTheme(true)
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("no-color theme must produce empty escape codes")
	}
	if got := Title("Result"); got != "Result" {
		t.Errorf("Title = %q, want plain text", got)
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
	}
}

func TestSetTheme(t *testing.T) {
	saved := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(saved) })

	for name, want := range map[string]string{"light": "light", "none": "none", "bogus": "dark", "dark": "dark"} {
		SetTheme(name)
		if got := GetCurrentTheme().Name; got != want {
			t.Errorf("SetTheme(%q) -> %q, want %q", name, got, want)
		}
	}

	SetTheme("dark")
	if !strings.HasPrefix(ColorGreen(), "\033[") {
		t.Errorf("dark theme should emit ANSI codes, got %q", ColorGreen())
	}
	if !strings.Contains(Title("Result"), "Result") {
		t.Error("Title must keep its text")
	}
}
