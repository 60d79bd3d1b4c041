// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ColorScheme struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI escapes for plain fmt output. Empty until InitializeColors runs, so
// tests and piped output stay uncolored.
var Green, Error, Reset string

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("4"),
		Accent:    lipgloss.Color("5"),
		Success:   lipgloss.Color("2"),
		Warning:   lipgloss.Color("3"),
		Error:     lipgloss.Color("1"),
		Border:    lipgloss.Color("8"),
		Text:      lipgloss.Color("0"),
		TextMuted: lipgloss.Color("240"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("6"),
		Accent:    lipgloss.Color("205"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("11"),
		Error:     lipgloss.Color("196"),
		Border:    lipgloss.Color("240"),
		Text:      lipgloss.Color("15"),
		TextMuted: lipgloss.Color("245"),
	}
}

// InitializeColors detects terminal mode, sets up the matching color scheme
// and fills in the ANSI escapes.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		detectedMode = detectTerminalMode()
		if detectedMode == TerminalModeLight {
			currentColorScheme = createLightColorScheme()
		} else {
			currentColorScheme = createDarkColorScheme()
		}
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, failure, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		failure = "\033[31m" // Red
	} else {
		success = "\033[92m" // Bright Green
		failure = "\033[91m" // Bright Red
	}

	reset = "\033[0m"
	return
}
