package ui

import (
	"fmt"
	"os"
)

// Color codes for terminal output. These style vcat's own messages
// (usage errors, the simulate banner); the progress bar uses its own
// fixed sequences and never routes through here.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// Theme defines the color scheme for message types
type Theme struct {
	Success string
	Warning string
	Error   string
	Info    string
	Header  string
}

// DefaultTheme returns the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
		Info:    BrightCyan,
		Header:  Bold + BrightCyan,
	}
}

// ColorConfig manages color output settings
type ColorConfig struct {
	Enabled bool
	Theme   *Theme
}

// NewColorConfig creates a new color configuration with default settings
func NewColorConfig() *ColorConfig {
	noColor := os.Getenv("NO_COLOR") != ""
	term := os.Getenv("TERM")

	enabled := !noColor && term != "dumb" && term != ""

	return &ColorConfig{
		Enabled: enabled,
		Theme:   DefaultTheme(),
	}
}

// Apply applies a color to text if colors are enabled
func (c *ColorConfig) Apply(color, text string) string {
	if !c.Enabled {
		return text
	}
	return color + text + Reset
}

// Success formats success messages
func (c *ColorConfig) Success(text string) string {
	return c.Apply(c.Theme.Success, text)
}

// Warning formats warning messages
func (c *ColorConfig) Warning(text string) string {
	return c.Apply(c.Theme.Warning, text)
}

// Error formats error messages
func (c *ColorConfig) Error(text string) string {
	return c.Apply(c.Theme.Error, text)
}

// Info formats info messages
func (c *ColorConfig) Info(text string) string {
	return c.Apply(c.Theme.Info, text)
}

// Header formats header text
func (c *ColorConfig) Header(text string) string {
	return c.Apply(c.Theme.Header, text)
}

// FormatKeyValue formats a key-value pair with proper colors
func (c *ColorConfig) FormatKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", c.Apply(Bold, key), value)
}
