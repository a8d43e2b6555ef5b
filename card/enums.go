package card

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnknownEnumError is returned when an upstream label matches no member of
// one of the closed enumerations below.
type UnknownEnumError struct {
	Enum  string
	Label string
}

func (e UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Enum, e.Label)
}

// Type classifies what a card fundamentally is.
type Type string

// The available card types.
const (
	TypeBase    Type = "base"
	TypeEvent   Type = "event"
	TypeLeader  Type = "leader"
	TypeUnit    Type = "unit"
	TypeUpgrade Type = "upgrade"
)

var cardTypes = map[Type]struct{}{
	TypeBase:    {},
	TypeEvent:   {},
	TypeLeader:  {},
	TypeUnit:    {},
	TypeUpgrade: {},
}

// ParseType resolves an upstream card type label, ignoring case.
func ParseType(label string) (Type, error) {
	t := Type(strings.ToLower(label))
	if _, found := cardTypes[t]; !found {
		return "", UnknownEnumError{Enum: "card type", Label: label}
	}
	return t, nil
}

// UnmarshalJSON validates the card type when decoding a card file.
func (t *Type) UnmarshalJSON(data []byte) error {
	parsed, err := parseEnumJSON(data, ParseType)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Aspect is one of the color-like identities a card belongs to.
type Aspect string

// The available aspects.
const (
	AspectAggression Aspect = "aggression"
	AspectCommand    Aspect = "command"
	AspectCunning    Aspect = "cunning"
	AspectHeroism    Aspect = "heroism"
	AspectVigilance  Aspect = "vigilance"
	AspectVillainy   Aspect = "villainy"
)

var aspects = map[Aspect]struct{}{
	AspectAggression: {},
	AspectCommand:    {},
	AspectCunning:    {},
	AspectHeroism:    {},
	AspectVigilance:  {},
	AspectVillainy:   {},
}

// ParseAspect resolves an upstream aspect label, ignoring case.
func ParseAspect(label string) (Aspect, error) {
	a := Aspect(strings.ToLower(label))
	if _, found := aspects[a]; !found {
		return "", UnknownEnumError{Enum: "aspect", Label: label}
	}
	return a, nil
}

// UnmarshalJSON validates the aspect when decoding a card file.
func (a *Aspect) UnmarshalJSON(data []byte) error {
	parsed, err := parseEnumJSON(data, ParseAspect)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Arena is the combat zone a unit fights in.
type Arena string

// The available arenas.
const (
	ArenaGround Arena = "ground"
	ArenaSpace  Arena = "space"
)

var arenas = map[Arena]struct{}{
	ArenaGround: {},
	ArenaSpace:  {},
}

// ParseArena resolves an upstream arena label, ignoring case.
func ParseArena(label string) (Arena, error) {
	a := Arena(strings.ToLower(label))
	if _, found := arenas[a]; !found {
		return "", UnknownEnumError{Enum: "arena", Label: label}
	}
	return a, nil
}

// UnmarshalJSON validates the arena when decoding a card file.
func (a *Arena) UnmarshalJSON(data []byte) error {
	parsed, err := parseEnumJSON(data, ParseArena)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Rarity is how scarce a printing is.
type Rarity string

// The available rarities.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
	RaritySpecial   Rarity = "special"
)

var rarities = map[Rarity]struct{}{
	RarityCommon:    {},
	RarityUncommon:  {},
	RarityRare:      {},
	RarityLegendary: {},
	RaritySpecial:   {},
}

// ParseRarity resolves an upstream rarity label, ignoring case.
func ParseRarity(label string) (Rarity, error) {
	r := Rarity(strings.ToLower(label))
	if _, found := rarities[r]; !found {
		return "", UnknownEnumError{Enum: "rarity", Label: label}
	}
	return r, nil
}

// UnmarshalJSON validates the rarity when decoding a card file.
func (r *Rarity) UnmarshalJSON(data []byte) error {
	parsed, err := parseEnumJSON(data, ParseRarity)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Style is the treatment a printing was produced in.
type Style string

// The available print styles.
const (
	StyleStandard   Style = "standard"
	StyleHyperspace Style = "hyperspace"
	StyleShowcase   Style = "showcase"
)

var styles = map[Style]struct{}{
	StyleStandard:   {},
	StyleHyperspace: {},
	StyleShowcase:   {},
}

// ParseStyle resolves a print style label, ignoring case.
func ParseStyle(label string) (Style, error) {
	s := Style(strings.ToLower(label))
	if _, found := styles[s]; !found {
		return "", UnknownEnumError{Enum: "style", Label: label}
	}
	return s, nil
}

// UnmarshalJSON validates the style when decoding a card file.
func (s *Style) UnmarshalJSON(data []byte) error {
	parsed, err := parseEnumJSON(data, ParseStyle)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func parseEnumJSON[T ~string](data []byte, parse func(string) (T, error)) (T, error) {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		var zero T
		return zero, err
	}
	return parse(label)
}
