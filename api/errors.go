package api

import (
	"fmt"
	"strings"
)

// MissingFieldError is returned when a record omits a field the upstream
// schema is supposed to guarantee.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

// UnknownArtFormatError is returned when an image block carries none of the
// format keys the scraper knows how to pick from.
type UnknownArtFormatError struct {
	// Available lists the format keys that were present, sorted.
	Available []string
}

func (e UnknownArtFormatError) Error() string {
	if len(e.Available) == 0 {
		return "image block has no art formats"
	}
	return fmt.Sprintf("no known art format among %s", strings.Join(e.Available, ", "))
}

// StatusError is returned when an HTTP request yields a non-success status.
type StatusError struct {
	URL    string
	Status string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s replied %s", e.URL, e.Status)
}
