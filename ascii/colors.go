// Package ascii provides terminal ANSI color codes and semantic names
// for colors so they can be grouped in themes.
package ascii

import "fmt"

const (
	Reset = "\033[0m"
	Red   = "\033[1;31m"
	Green = "\033[1;32m"
	Blue  = "\033[1;34m"
	Cyan  = "\033[1;36m"
	Gray  = "\033[90m" // Bright black, actually

	// 256-color palette
	Orange = "\033[38;5;208m"
	Purple = "\033[1;38;5;99m"
)

// Theme defines semantic color mappings
type Theme struct {
	// Diagnostics
	Error string

	// UI elements
	Muted   string // secondary/dimmed text
	Accent  string // highlighted/emphasized text
	Success string

	// Value tree printing
	Key     string
	Literal string
	Null    string

	// Hexdump gutter
	Offset string
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Error: Red,

	Muted:   Gray,
	Accent:  Cyan,
	Success: Green,

	Key:     Cyan,
	Literal: Green,
	Null:    Purple,

	Offset: Orange,
}

func Color(color, format string, args ...any) string {
	return fmt.Sprintf(color+format+Reset, args...)
}
