package api

import (
	"sort"
	"strings"

	"github.com/matanlurey/swu/card"
)

// Skip says why a record was intentionally left out of the output.
type Skip int

const (
	// SkipNone marks a record that normalized into a card.
	SkipNone Skip = iota
	// SkipVariant marks an alternate printing; its art rides along on the
	// card it is a variant of.
	SkipVariant
	// SkipUnreleased marks a record with no expansion, which the upstream
	// uses for drafts of unreleased cards.
	SkipUnreleased
)

// artFormatPreference is the order in which image renditions are picked.
var artFormatPreference = []string{"card", "xxsmall"}

// Normalize flattens one raw record into a card. Records that should not
// appear in the output at all report a Skip instead. Any error means the
// upstream schema no longer matches what the scraper expects.
func Normalize(record CardRecord) (card.Card, Skip, error) {
	attrs := record.Attributes

	if attrs.VariantOf.present() {
		return card.Card{}, SkipVariant, nil
	}
	expansion, released := attrs.Expansion.attributes()
	if !released {
		return card.Card{}, SkipUnreleased, nil
	}

	title, err := requiredString(attrs.Title, "title")
	if err != nil {
		return card.Card{}, SkipNone, err
	}
	artist, err := requiredString(attrs.Artist, "artist")
	if err != nil {
		return card.Card{}, SkipNone, err
	}
	number, err := requiredPositive(attrs.CardNumber, "cardNumber")
	if err != nil {
		return card.Card{}, SkipNone, err
	}
	// cardCount is not carried into the card, but its absence still means
	// the record is incomplete.
	if _, err := requiredPositive(attrs.CardCount, "cardCount"); err != nil {
		return card.Card{}, SkipNone, err
	}
	if expansion.Code == "" {
		return card.Card{}, SkipNone, MissingFieldError{Field: "expansion code"}
	}

	typeLabel, found := attrs.Type.value()
	if !found {
		return card.Card{}, SkipNone, MissingFieldError{Field: "type data"}
	}
	cardType, err := card.ParseType(typeLabel)
	if err != nil {
		return card.Card{}, SkipNone, err
	}

	rarityLabel, found := attrs.Rarity.name()
	if !found {
		return card.Card{}, SkipNone, MissingFieldError{Field: "rarity data"}
	}
	rarity, err := card.ParseRarity(rarityLabel)
	if err != nil {
		return card.Card{}, SkipNone, err
	}

	aspectNames := attrs.Aspects.names()
	aspectNames = append(aspectNames, attrs.AspectDuplicates.names()...)
	cardAspects := make([]card.Aspect, 0, len(aspectNames))
	for _, name := range aspectNames {
		aspect, err := card.ParseAspect(name)
		if err != nil {
			return card.Card{}, SkipNone, err
		}
		cardAspects = append(cardAspects, aspect)
	}

	traitNames := attrs.Traits.names()
	traits := make([]string, 0, len(traitNames))
	for _, name := range traitNames {
		traits = append(traits, strings.ToLower(name))
	}

	var arena card.Arena
	if arenaNames := attrs.Arenas.names(); len(arenaNames) > 0 {
		if arena, err = card.ParseArena(arenaNames[0]); err != nil {
			return card.Card{}, SkipNone, err
		}
	}

	variants := attrs.Variants.attributes()
	art := make([]card.Art, 0, 1+len(variants))
	primary, err := extractArt(attrs)
	if err != nil {
		return card.Card{}, SkipNone, err
	}
	art = append(art, primary)
	for _, variant := range variants {
		variantArt, err := extractArt(variant)
		if err != nil {
			return card.Card{}, SkipNone, err
		}
		art = append(art, variantArt)
	}

	return card.Card{
		Set:        strings.ToLower(expansion.Code),
		Number:     number,
		Rarity:     rarity,
		Type:       cardType,
		Title:      title,
		SubTitle:   optionalString(attrs.Subtitle),
		Artist:     artist,
		Cost:       optionalInt(attrs.Cost),
		HP:         optionalInt(attrs.HP),
		Power:      optionalInt(attrs.Power),
		Unique:     attrs.Unique,
		Arena:      arena,
		Aspects:    cardAspects,
		Traits:     traits,
		Horizontal: attrs.ArtFrontHorizontal,
		Art:        art,
	}, SkipNone, nil
}

// extractArt assembles the imagery of one printing, either the record
// itself or one of its variants. The front and thumbnail images must be
// present; only double-sided cards carry a back.
func extractArt(attrs CardAttributes) (card.Art, error) {
	front, found, err := artDetails(attrs.ArtFront)
	if err != nil {
		return card.Art{}, err
	}
	if !found {
		return card.Art{}, MissingFieldError{Field: "artFront data"}
	}

	thumbnail, found, err := artDetails(attrs.ArtThumbnail)
	if err != nil {
		return card.Art{}, err
	}
	if !found {
		return card.Art{}, MissingFieldError{Field: "artThumbnail data"}
	}

	var back *card.ArtDetails
	if details, found, err := artDetails(attrs.ArtBack); err != nil {
		return card.Art{}, err
	} else if found {
		back = &details
	}

	style := card.StyleStandard
	switch {
	case attrs.Showcase:
		style = card.StyleShowcase
	case attrs.Hyperspace:
		style = card.StyleHyperspace
	}

	return card.Art{
		Style:     style,
		Front:     front,
		Back:      back,
		Thumbnail: thumbnail,
	}, nil
}

func artDetails(rel imageRel) (card.ArtDetails, bool, error) {
	formats, found := rel.formats()
	if !found {
		return card.ArtDetails{}, false, nil
	}
	format, found := preferredFormat(formats, artFormatPreference...)
	if !found {
		return card.ArtDetails{}, false, UnknownArtFormatError{Available: formatKeys(formats)}
	}
	return card.ArtDetails{Name: format.Name, URL: format.URL}, true, nil
}

// preferredFormat returns the first of prefs that formats contains.
func preferredFormat(formats map[string]ArtFormat, prefs ...string) (ArtFormat, bool) {
	for _, name := range prefs {
		if format, found := formats[name]; found {
			return format, true
		}
	}
	return ArtFormat{}, false
}

func formatKeys(formats map[string]ArtFormat) []string {
	keys := make([]string, 0, len(formats))
	for key := range formats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func requiredString(value *string, field string) (string, error) {
	if value == nil || *value == "" {
		return "", MissingFieldError{Field: field}
	}
	return *value, nil
}

func requiredPositive(value *float64, field string) (int, error) {
	if value == nil || *value < 1 {
		return 0, MissingFieldError{Field: field}
	}
	return int(*value), nil
}

func optionalString(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	copied := *value
	return &copied
}

func optionalInt(value *float64) *int {
	if value == nil {
		return nil
	}
	truncated := int(*value)
	return &truncated
}
