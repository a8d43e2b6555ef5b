package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/matanlurey/swu/card"
	"github.com/matanlurey/swu/log"
)

func init() {
	logger := zap.NewExample()
	log.SetLogger(logger.Sugar())
}

const bobaFettRecord = `{
	"id": 1234,
	"attributes": {
		"title": "Boba Fett",
		"subtitle": null,
		"artist": "Colin Searle",
		"cardNumber": 1,
		"cardCount": 252,
		"cost": 4,
		"hp": 7,
		"power": 4,
		"unique": true,
		"artFrontHorizontal": false,
		"showcase": false,
		"hyperspace": false,
		"expansion": {"data": {"attributes": {"code": "SOR", "name": "Spark of Rebellion"}}},
		"type": {"data": {"attributes": {"value": "Unit"}}},
		"rarity": {"data": {"attributes": {"name": "Legendary"}}},
		"aspects": {"data": [{"attributes": {"name": "Cunning"}}]},
		"aspectDuplicates": {"data": []},
		"traits": {"data": [{"attributes": {"name": "UNDERWORLD"}}, {"attributes": {"name": "BOUNTY HUNTER"}}]},
		"arenas": {"data": [{"attributes": {"name": "Ground"}}]},
		"variantOf": {"data": null},
		"variants": {"data": []},
		"artFront": {"data": {"attributes": {"formats": {"card": {"url": "http://x/a.png", "name": "a"}}}}},
		"artBack": {"data": null},
		"artThumbnail": {"data": {"attributes": {"formats": {"card": {"url": "http://x/t.png", "name": "t"}, "xxsmall": {"url": "http://x/t-xs.png", "name": "t-xs"}}}}}
	}
}`

const palpatineRecord = `{
	"id": 5678,
	"attributes": {
		"title": "Emperor Palpatine",
		"subtitle": "Galactic Ruler",
		"artist": "Ario Murti",
		"cardNumber": 14,
		"cardCount": 252,
		"cost": 8,
		"hp": 10,
		"power": 4,
		"unique": true,
		"artFrontHorizontal": true,
		"showcase": false,
		"hyperspace": false,
		"expansion": {"data": {"attributes": {"code": "SOR", "name": "Spark of Rebellion"}}},
		"type": {"data": {"attributes": {"value": "Leader"}}},
		"rarity": {"data": {"attributes": {"name": "Rare"}}},
		"aspects": {"data": [{"attributes": {"name": "Villainy"}}]},
		"aspectDuplicates": {"data": [{"attributes": {"name": "Villainy"}}]},
		"traits": {"data": [{"attributes": {"name": "IMPERIAL"}}, {"attributes": {"name": "SITH"}}, {"attributes": {"name": "OFFICIAL"}}]},
		"arenas": {"data": []},
		"variantOf": {"data": null},
		"variants": {"data": [
			{
				"id": 5679,
				"attributes": {
					"showcase": false,
					"hyperspace": true,
					"artFront": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-hs.png", "name": "p-hs"}}}}},
					"artBack": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-hs-back.png", "name": "p-hs-back"}}}}},
					"artThumbnail": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-hs-t.png", "name": "p-hs-t"}}}}}
				}
			},
			{
				"id": 5680,
				"attributes": {
					"showcase": true,
					"hyperspace": true,
					"artFront": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-sc.png", "name": "p-sc"}}}}},
					"artBack": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-sc-back.png", "name": "p-sc-back"}}}}},
					"artThumbnail": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-sc-t.png", "name": "p-sc-t"}}}}}
				}
			}
		]},
		"artFront": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p.png", "name": "p"}}}}},
		"artBack": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-back.png", "name": "p-back"}}}}},
		"artThumbnail": {"data": {"attributes": {"formats": {"card": {"url": "http://x/p-t.png", "name": "p-t"}}}}}
	}
}`

func mustRecord(t *testing.T, raw string) CardRecord {
	t.Helper()
	var record CardRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	return record
}

func mustAttributes(t *testing.T, raw string) CardAttributes {
	t.Helper()
	var attrs CardAttributes
	require.NoError(t, json.Unmarshal([]byte(raw), &attrs))
	return attrs
}

// editRecord re-decodes raw with one attribute replaced, so each test can
// state only the field it is about.
func editRecord(t *testing.T, raw, field, value string) CardRecord {
	t.Helper()
	var envelope struct {
		ID         int                        `json:"id"`
		Attributes map[string]json.RawMessage `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	envelope.Attributes[field] = json.RawMessage(value)
	edited, err := json.Marshal(envelope)
	require.NoError(t, err)
	return mustRecord(t, string(edited))
}

func intPtr(n int) *int {
	return &n
}

func stringPtr(s string) *string {
	return &s
}

func TestNormalize(t *testing.T) {
	normalized, skip, err := Normalize(mustRecord(t, bobaFettRecord))
	require.NoError(t, err)
	require.Equal(t, SkipNone, skip)

	expected := card.Card{
		Set:     "sor",
		Number:  1,
		Rarity:  card.RarityLegendary,
		Type:    card.TypeUnit,
		Title:   "Boba Fett",
		Artist:  "Colin Searle",
		Cost:    intPtr(4),
		HP:      intPtr(7),
		Power:   intPtr(4),
		Unique:  true,
		Arena:   card.ArenaGround,
		Aspects: []card.Aspect{card.AspectCunning},
		Traits:  []string{"underworld", "bounty hunter"},
		Art: []card.Art{
			{
				Style:     card.StyleStandard,
				Front:     card.ArtDetails{Name: "a", URL: "http://x/a.png"},
				Thumbnail: card.ArtDetails{Name: "t", URL: "http://x/t.png"},
			},
		},
	}
	assert.Equal(t, expected, normalized)
	assert.Nil(t, normalized.Art[0].Back)
}

func TestNormalizeLeaderWithVariants(t *testing.T) {
	normalized, skip, err := Normalize(mustRecord(t, palpatineRecord))
	require.NoError(t, err)
	require.Equal(t, SkipNone, skip)

	assert.Equal(t, "sor", normalized.Set)
	assert.Equal(t, 14, normalized.Number)
	assert.Equal(t, card.TypeLeader, normalized.Type)
	assert.Equal(t, stringPtr("Galactic Ruler"), normalized.SubTitle)
	assert.True(t, normalized.Horizontal)
	assert.Equal(t, card.Arena(""), normalized.Arena)

	// The doubled aspect is kept, not deduplicated.
	assert.Equal(t, []card.Aspect{card.AspectVillainy, card.AspectVillainy}, normalized.Aspects)

	// One art entry per printing, original first, variants in listed order.
	require.Len(t, normalized.Art, 3)
	assert.Equal(t, card.StyleStandard, normalized.Art[0].Style)
	assert.Equal(t, card.StyleHyperspace, normalized.Art[1].Style)
	assert.Equal(t, card.StyleShowcase, normalized.Art[2].Style)
	assert.Equal(t, "http://x/p.png", normalized.Art[0].Front.URL)
	assert.Equal(t, "http://x/p-hs.png", normalized.Art[1].Front.URL)
	assert.Equal(t, "http://x/p-sc.png", normalized.Art[2].Front.URL)
	require.NotNil(t, normalized.Art[0].Back)
	assert.Equal(t, "http://x/p-back.png", normalized.Art[0].Back.URL)
}

func TestNormalizeSkipsVariantRecords(t *testing.T) {
	record := editRecord(t, bobaFettRecord, "variantOf", `{"data": {"id": 99}}`)

	_, skip, err := Normalize(record)
	require.NoError(t, err)
	assert.Equal(t, SkipVariant, skip)
}

func TestNormalizeSkipsUnreleasedRecords(t *testing.T) {
	record := editRecord(t, bobaFettRecord, "expansion", `{"data": null}`)

	_, skip, err := Normalize(record)
	require.NoError(t, err)
	assert.Equal(t, SkipUnreleased, skip)
}

func TestNormalizeMissingArtFront(t *testing.T) {
	record := editRecord(t, bobaFettRecord, "artFront", `{"data": null}`)

	_, _, err := Normalize(record)
	require.Error(t, err)
	var missing MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "artFront data", missing.Field)
}

func TestNormalizeMissingRequiredScalars(t *testing.T) {
	for field, value := range map[string]string{
		"title":      `null`,
		"artist":     `""`,
		"cardNumber": `null`,
		"cardCount":  `null`,
	} {
		record := editRecord(t, bobaFettRecord, field, value)

		_, _, err := Normalize(record)
		require.Error(t, err, field)
		var missing MissingFieldError
		require.True(t, errors.As(err, &missing), field)
		assert.Equal(t, field, missing.Field)
	}

	record := editRecord(t, bobaFettRecord, "rarity", `{"data": null}`)
	_, _, err := Normalize(record)
	var missing MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "rarity data", missing.Field)
}

func TestNormalizeUnknownEnumLabel(t *testing.T) {
	record := editRecord(t, bobaFettRecord, "rarity", `{"data": {"attributes": {"name": "Mythic"}}}`)

	_, _, err := Normalize(record)
	require.Error(t, err)
	var unknown card.UnknownEnumError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "rarity", unknown.Enum)
	assert.Equal(t, "Mythic", unknown.Label)
}

func TestNormalizeUnknownArtFormat(t *testing.T) {
	record := editRecord(t, bobaFettRecord, "artFront",
		`{"data": {"attributes": {"formats": {"small": {"url": "http://x/s.png", "name": "s"}, "large": {"url": "http://x/l.png", "name": "l"}}}}}`)

	_, _, err := Normalize(record)
	require.Error(t, err)
	var unknown UnknownArtFormatError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"large", "small"}, unknown.Available)
}

func TestNormalizeTruncatesFractionalNumbers(t *testing.T) {
	record := editRecord(t, bobaFettRecord, "cost", `4.9`)

	normalized, _, err := Normalize(record)
	require.NoError(t, err)
	assert.Equal(t, intPtr(4), normalized.Cost)
}

func TestExtractArtStylePrecedence(t *testing.T) {
	const template = `{
		"showcase": %s,
		"hyperspace": %s,
		"artFront": {"data": {"attributes": {"formats": {"card": {"url": "http://x/f.png", "name": "f"}}}}},
		"artThumbnail": {"data": {"attributes": {"formats": {"card": {"url": "http://x/t.png", "name": "t"}}}}}
	}`

	for _, testCase := range []struct {
		showcase   string
		hyperspace string
		expected   card.Style
	}{
		{"true", "true", card.StyleShowcase},
		{"true", "false", card.StyleShowcase},
		{"false", "true", card.StyleHyperspace},
		{"false", "false", card.StyleStandard},
	} {
		attrs := mustAttributes(t, fmt.Sprintf(template, testCase.showcase, testCase.hyperspace))

		art, err := extractArt(attrs)
		require.NoError(t, err)
		assert.Equal(t, testCase.expected, art.Style)
		assert.Nil(t, art.Back)
	}
}

func TestPreferredFormat(t *testing.T) {
	formats := map[string]ArtFormat{
		"card":    {Name: "full", URL: "http://x/full.png"},
		"xxsmall": {Name: "tiny", URL: "http://x/tiny.png"},
	}

	format, found := preferredFormat(formats, "card", "xxsmall")
	require.True(t, found)
	assert.Equal(t, "full", format.Name)

	delete(formats, "card")
	format, found = preferredFormat(formats, "card", "xxsmall")
	require.True(t, found)
	assert.Equal(t, "tiny", format.Name)

	delete(formats, "xxsmall")
	_, found = preferredFormat(formats, "card", "xxsmall")
	assert.False(t, found)
}
