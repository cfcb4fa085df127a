package split

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=DebugMode -linecomment -output=debugmode_string.go

// DebugMode selects how each masked cluster is additionally shown.
type DebugMode int

const (
	DebugNone  DebugMode = iota // none
	DebugPrint                  // print
	DebugPlot                   // plot
)

// ParseDebugMode parses "none", "print" or "plot". The empty string is none.
func ParseDebugMode(s string) (DebugMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DebugNone, nil
	case "print":
		return DebugPrint, nil
	case "plot":
		return DebugPlot, nil
	}
	return DebugNone, fmt.Errorf("unknown debug mode %q (want none, print or plot)", s)
}
