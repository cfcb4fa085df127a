// Package names builds the ordered list of output labels for a split.
package names

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Resolve returns the target names for count clusters. With an empty path the
// names are the synthetic indices "0".."count-1"; otherwise the file is read
// one name per line. A length mismatch is not an error here.
func Resolve(path string, count int) ([]string, error) {
	if path == "" {
		return Synthetic(count), nil
	}
	return ReadFile(path)
}

// Synthetic returns "0", "1", … up to count-1.
func Synthetic(count int) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// ReadFile reads a line-delimited name list.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open name list: %w", err)
	}
	defer f.Close()

	list, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read name list %s: %w", path, err)
	}
	return list, nil
}

// Read splits r into lines, keeping order, blanks and duplicates. Lines end
// at "\n", "\r\n" or a bare "\r", as well as the other Unicode line
// boundaries (VT, FF, FS, GS, RS, NEL, LS, PS). A trailing line break does
// not produce an extra empty name. Line length is unbounded.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text at every line boundary and drops the terminators.
func SplitLines(text string) []string {
	var list []string
	start := 0
	for i, r := range text {
		if i < start {
			// Second byte of a "\r\n" pair.
			continue
		}
		if !isLineBreak(r) {
			continue
		}
		list = append(list, text[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && strings.HasPrefix(text[start:], "\n") {
			start++
		}
	}
	if start < len(text) {
		list = append(list, text[start:])
	}
	return list
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
