package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformedFile is returned by Load when a file does not hold a valid
// card list.
var ErrMalformedFile = errors.New("malformed card file")

// Save writes cards to path as indented JSON, replacing any existing file.
func Save(path string, cards []Card) error {
	buf, err := json.MarshalIndent(cards, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't encode cards: %w", err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", path, err)
	}
	return nil
}

// Load reads a card list previously written by Save. Anything that does not
// decode as one, including unknown fields or enum labels, is reported as
// ErrMalformedFile.
func Load(path string) ([]Card, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", path, err)
	}
	decoder := json.NewDecoder(bytes.NewReader(buf))
	decoder.DisallowUnknownFields()
	var cards []Card
	if err := decoder.Decode(&cards); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrMalformedFile, path, err)
	}
	return cards, nil
}
