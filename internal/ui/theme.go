// Package ui holds the terminal color themes shared by the report writers
// and the error handler.
package ui

import (
	"os"
	"sync"
)

// Theme maps report roles to ANSI escape codes.
type Theme struct {
	Name string
	// Heading colors the "Computing ..." line and table headers.
	Heading string
	// Value colors strategy values.
	Value string
	// Reference colors the standard library's value.
	Reference string
	// Timing colors the duration column.
	Timing string
	Pass   string
	Fail   string
	Warn   string
	Bold   string
	Reset  string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Heading:   "\033[38;5;39m",
		Value:     "\033[38;5;255m",
		Reference: "\033[38;5;245m",
		Timing:    "\033[38;5;141m",
		Pass:      "\033[38;5;82m",
		Fail:      "\033[38;5;196m",
		Warn:      "\033[38;5;220m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Heading:   "\033[38;5;27m",
		Value:     "\033[38;5;232m",
		Reference: "\033[38;5;240m",
		Timing:    "\033[38;5;54m",
		Pass:      "\033[38;5;28m",
		Fail:      "\033[38;5;124m",
		Warn:      "\033[38;5;130m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme emits no escape codes.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetTheme activates the theme called name ("dark", "light" or "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	t := DarkTheme
	switch name {
	case "light":
		t = LightTheme
	case "none":
		t = NoColorTheme
	}
	themeMutex.Lock()
	currentTheme = t
	themeMutex.Unlock()
}

// InitTheme disables colors when noColor is set or NO_COLOR is present in
// the environment (https://no-color.org/), and selects the dark theme
// otherwise.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetTheme("none")
		return
	}
	SetTheme("dark")
}

// Colors adapts the current theme to the apperrors.ColorProvider interface.
type Colors struct{}

func (Colors) Yellow() string { return CurrentTheme().Warn }
func (Colors) Red() string    { return CurrentTheme().Fail }
func (Colors) Reset() string  { return CurrentTheme().Reset }
