package api

// The card list nests every related entity inside a {"data": {"attributes":
// …}} envelope, with "data" null when the relation is unset. The envelope
// types below are deliberately unexported; the rest of the module only ever
// sees the flattened card model.

// CardPage is one page of the card list response.
type CardPage struct {
	Data []CardRecord `json:"data"`
	Meta Meta         `json:"meta"`
}

// Meta carries the pagination block of a page.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Pagination describes where a page sits in the whole listing.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// CardRecord is one raw row of the card list.
type CardRecord struct {
	ID         int            `json:"id"`
	Attributes CardAttributes `json:"attributes"`
}

// CardAttributes holds every card field the normalizer reads. Scalars the
// upstream schema may omit or null out are pointers; numbers arrive as JSON
// numbers and are truncated to integers later.
type CardAttributes struct {
	Title              *string  `json:"title"`
	Subtitle           *string  `json:"subtitle"`
	Artist             *string  `json:"artist"`
	CardNumber         *float64 `json:"cardNumber"`
	CardCount          *float64 `json:"cardCount"`
	Cost               *float64 `json:"cost"`
	HP                 *float64 `json:"hp"`
	Power              *float64 `json:"power"`
	Unique             bool     `json:"unique"`
	ArtFrontHorizontal bool     `json:"artFrontHorizontal"`
	Showcase           bool     `json:"showcase"`
	Hyperspace         bool     `json:"hyperspace"`

	Expansion        expansionRel `json:"expansion"`
	Type             typeRel      `json:"type"`
	Rarity           rarityRel    `json:"rarity"`
	Aspects          namedListRel `json:"aspects"`
	AspectDuplicates namedListRel `json:"aspectDuplicates"`
	Traits           namedListRel `json:"traits"`
	Arenas           namedListRel `json:"arenas"`
	VariantOf        presenceRel  `json:"variantOf"`
	Variants         variantsRel  `json:"variants"`
	ArtFront         imageRel     `json:"artFront"`
	ArtBack          imageRel     `json:"artBack"`
	ArtThumbnail     imageRel     `json:"artThumbnail"`
}

// ExpansionAttributes identifies the set a card was printed in.
type ExpansionAttributes struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ArtFormat is one pre-rendered size of a card image.
type ArtFormat struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type expansionRel struct {
	Data *struct {
		Attributes ExpansionAttributes `json:"attributes"`
	} `json:"data"`
}

func (r expansionRel) attributes() (ExpansionAttributes, bool) {
	if r.Data == nil {
		return ExpansionAttributes{}, false
	}
	return r.Data.Attributes, true
}

type typeRel struct {
	Data *struct {
		Attributes struct {
			Value string `json:"value"`
		} `json:"attributes"`
	} `json:"data"`
}

func (r typeRel) value() (string, bool) {
	if r.Data == nil {
		return "", false
	}
	return r.Data.Attributes.Value, true
}

type rarityRel struct {
	Data *struct {
		Attributes struct {
			Name string `json:"name"`
		} `json:"attributes"`
	} `json:"data"`
}

func (r rarityRel) name() (string, bool) {
	if r.Data == nil {
		return "", false
	}
	return r.Data.Attributes.Name, true
}

type namedListRel struct {
	Data []struct {
		Attributes struct {
			Name string `json:"name"`
		} `json:"attributes"`
	} `json:"data"`
}

func (r namedListRel) names() []string {
	names := make([]string, 0, len(r.Data))
	for _, entry := range r.Data {
		names = append(names, entry.Attributes.Name)
	}
	return names
}

type presenceRel struct {
	Data *struct {
		ID int `json:"id"`
	} `json:"data"`
}

func (r presenceRel) present() bool {
	return r.Data != nil
}

type variantsRel struct {
	Data []struct {
		ID         int            `json:"id"`
		Attributes CardAttributes `json:"attributes"`
	} `json:"data"`
}

func (r variantsRel) attributes() []CardAttributes {
	attrs := make([]CardAttributes, 0, len(r.Data))
	for _, entry := range r.Data {
		attrs = append(attrs, entry.Attributes)
	}
	return attrs
}

type imageRel struct {
	Data *struct {
		Attributes struct {
			Formats map[string]ArtFormat `json:"formats"`
		} `json:"attributes"`
	} `json:"data"`
}

func (r imageRel) formats() (map[string]ArtFormat, bool) {
	if r.Data == nil {
		return nil, false
	}
	return r.Data.Attributes.Formats, true
}
