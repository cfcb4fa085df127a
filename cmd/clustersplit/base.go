package main

import (
	"errors"

	"cluster-splitter/internal/naming"
)

var errBaseAndTimestamp = errors.New("-base and -timestamp are mutually exclusive")

// resolveBaseName picks the output stem: an explicit -base as given, the
// timestamp (empty stem) with -timestamp, or else the source image name
// without directory and extension.
func resolveBaseName(base string, timestamp bool, imagePath string) (string, error) {
	switch {
	case base != "" && timestamp:
		return "", errBaseAndTimestamp
	case base != "":
		return base, nil
	case timestamp:
		return "", nil
	}
	return naming.StemFromFile(imagePath), nil
}
