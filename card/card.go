// Package card defines the flat card model produced by the scraper and the
// JSON file format it is stored in.
package card

// Card is a single distinct card in a set. Alternate printings of the same
// card do not get a Card of their own; they appear as extra Art entries on
// the original.
type Card struct {
	// Set is the lowercase code of the expansion, e.g. "sor".
	Set string `json:"set"`
	// Number is the collector number within the set.
	Number int    `json:"number"`
	Rarity Rarity `json:"rarity"`
	Type   Type   `json:"type"`
	Title  string `json:"title"`
	// SubTitle is null for cards without a secondary name.
	SubTitle *string `json:"sub_title"`
	Artist   string  `json:"artist"`
	// Cost, HP and Power are null where the card type has no such stat
	// (bases have no cost, events have no HP, and so on).
	Cost   *int `json:"cost"`
	HP     *int `json:"hp"`
	Power  *int `json:"power"`
	Unique bool `json:"unique"`
	// Arena is only set for cards that fight in one.
	Arena Arena `json:"arena,omitempty"`
	// Aspects keeps upstream order and repeats doubled aspects, so a card
	// with double villainy lists it twice.
	Aspects []Aspect `json:"aspects"`
	// Traits are lowercased, in upstream order.
	Traits []string `json:"traits"`
	// Horizontal marks cards whose front is rendered in landscape.
	Horizontal bool `json:"horizontal"`
	// Art holds one entry per printing, original first, then alternates in
	// upstream order.
	Art []Art `json:"art"`
}

// Art is the imagery of one printing of a card.
type Art struct {
	Style Style      `json:"style"`
	Front ArtDetails `json:"front"`
	// Back is only present for double-sided cards such as leaders.
	Back      *ArtDetails `json:"back,omitempty"`
	Thumbnail ArtDetails  `json:"thumbnail"`
}

// ArtDetails locates a single image.
type ArtDetails struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
