// Package assets turns a card list into the image files backing it,
// downloading every referenced printing into a local directory tree.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/matanlurey/swu/card"
	"github.com/matanlurey/swu/log"
)

// Kind directories under the download root.
const (
	kindFront = "front"
	kindBack  = "back"
	kindThumb = "thumb"
)

// Asset is one image to download and the path it ends up at, relative to
// the download root.
type Asset struct {
	URL  string
	Path string
}

// Resolve lists every image referenced by cards. Each image lands at
// <kind>/<style>/<set>-<number>.png, with the collector number zero padded
// to three digits. When two entries resolve to the same path the first one
// wins.
func Resolve(cards []card.Card) []Asset {
	var assets []Asset
	seen := make(map[string]struct{})

	add := func(kind string, c card.Card, style card.Style, details card.ArtDetails) {
		path := filepath.Join(kind, string(style), fmt.Sprintf("%s-%03d.png", c.Set, c.Number))
		if _, found := seen[path]; found {
			log.Warnf("Ignoring duplicate image %s for %s", path, c.Title)
			return
		}
		seen[path] = struct{}{}
		assets = append(assets, Asset{URL: details.URL, Path: path})
	}

	for _, c := range cards {
		for _, art := range c.Art {
			add(kindFront, c, art.Style, art.Front)
			if art.Back != nil {
				add(kindBack, c, art.Style, *art.Back)
			}
			add(kindThumb, c, art.Style, art.Thumbnail)
		}
	}

	return assets
}
