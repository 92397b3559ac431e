package theme

import (
	"reflect"
	"testing"
)

func TestThemesRegistered(t *testing.T) {
	want := []string{"dracula", "gruvbox", "nord", "solarized", "tokyonight"}
	if got := Available(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSetThemeIsCaseInsensitive(t *testing.T) {
	t.Cleanup(func() { SetTheme(Default) })

	if !SetTheme(" Nord ") {
		t.Fatalf("expected Nord to be found")
	}
	if CurrentName() != "nord" {
		t.Fatalf("expected nord, got %s", CurrentName())
	}
	if SetTheme("missing") {
		t.Fatalf("unknown theme should not be set")
	}
	if CurrentName() != "nord" {
		t.Fatalf("failed SetTheme must keep the active theme")
	}
}

func TestCycleThemeWraps(t *testing.T) {
	t.Cleanup(func() { SetTheme(Default) })

	SetTheme("tokyonight")
	if got := CycleTheme(); got != "dracula" {
		t.Fatalf("expected cycle to wrap to dracula, got %s", got)
	}
	if got := CycleTheme(); got != "gruvbox" {
		t.Fatalf("expected gruvbox, got %s", got)
	}
}

func TestPalettesDefineEveryColour(t *testing.T) {
	for _, name := range Available() {
		SetTheme(name)
		th := Current()
		colours := map[string]string{
			"Primary":             th.Primary().Dark,
			"Secondary":           th.Secondary().Dark,
			"Accent":              th.Accent().Dark,
			"Error":               th.Error().Dark,
			"Warning":             th.Warning().Dark,
			"Success":             th.Success().Dark,
			"Info":                th.Info().Dark,
			"Text":                th.Text().Dark,
			"TextMuted":           th.TextMuted().Dark,
			"Background":          th.Background().Dark,
			"BackgroundSecondary": th.BackgroundSecondary().Dark,
			"BorderNormal":        th.BorderNormal().Dark,
			"BorderFocused":       th.BorderFocused().Light,
		}
		for field, v := range colours {
			if v == "" {
				t.Errorf("%s: %s is empty", name, field)
			}
		}
	}
	SetTheme(Default)
}
