package ui

import "testing"

func TestSetTheme(t *testing.T) {
	defer SetTheme("dark")

	tests := []struct {
		name string
		want string
	}{
		{"light", "light"},
		{"none", "none"},
		{"dark", "dark"},
		{"solarized", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := CurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) activated %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitThemeHonorsNoColor(t *testing.T) {
	defer SetTheme("dark")

	InitTheme(true)
	if CurrentTheme().Reset != "" {
		t.Error("--no-color must disable escape codes")
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if CurrentTheme().Name != "none" {
		t.Error("NO_COLOR must disable colors")
	}
}

func TestColorsFollowCurrentTheme(t *testing.T) {
	defer SetTheme("dark")

	SetTheme("dark")
	if (Colors{}).Red() != DarkTheme.Fail {
		t.Error("Colors.Red must return the theme's failure color")
	}
	SetTheme("none")
	if (Colors{}).Yellow() != "" || (Colors{}).Reset() != "" {
		t.Error("no-color theme must return empty codes")
	}
}
