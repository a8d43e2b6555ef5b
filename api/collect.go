package api

import (
	"fmt"

	"github.com/matanlurey/swu/card"
	"github.com/matanlurey/swu/log"
)

// Collector accumulates normalized cards from a card list walk and keeps
// count of the records that were skipped along the way.
type Collector struct {
	cards      []card.Card
	seen       map[string]string
	variants   int
	unreleased int
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]string)}
}

// Add normalizes one record and appends the result. Two records resolving
// to the same set and collector number mean the listing is corrupt, which
// is an error rather than a skip.
func (c *Collector) Add(record CardRecord) error {
	normalized, skip, err := Normalize(record)
	if err != nil {
		return fmt.Errorf("record %d: %w", record.ID, err)
	}

	switch skip {
	case SkipVariant:
		c.variants++
		return nil
	case SkipUnreleased:
		c.unreleased++
		return nil
	}

	key := fmt.Sprintf("%s-%03d", normalized.Set, normalized.Number)
	if previous, found := c.seen[key]; found {
		return fmt.Errorf("%s and %s both resolve to %s", previous, normalized.Title, key)
	}
	c.seen[key] = normalized.Title
	c.cards = append(c.cards, normalized)

	log.Debugw("Normalized card",
		"id", record.ID,
		"card", key,
		"title", normalized.Title,
		"printings", len(normalized.Art),
	)

	return nil
}

// Cards returns the collected cards in the order they were added.
func (c *Collector) Cards() []card.Card {
	return c.cards
}

// Variants returns how many alternate printings were skipped.
func (c *Collector) Variants() int {
	return c.variants
}

// Unreleased returns how many expansion-less records were skipped.
func (c *Collector) Unreleased() int {
	return c.unreleased
}
