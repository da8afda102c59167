package pokeapi

import "strings"

// Pokemon mirrors the subset of /pokemon/{id or name} that dexter renders.
type Pokemon struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Height  int        `json:"height"`
	Weight  int        `json:"weight"`
	Types   []TypeSlot `json:"types"`
	Sprites Sprites    `json:"sprites"`
}

// TypeSlot is one entry of a record's ordered type associations.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// NamedResource is the API's generic {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Sprites holds the image URLs of a record. Any of them may be null.
type Sprites struct {
	FrontDefault string       `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

// OtherSprites groups the alternative artwork collections.
type OtherSprites struct {
	OfficialArtwork *Artwork `json:"official-artwork"`
}

// Artwork is a single artwork collection.
type Artwork struct {
	FrontDefault string `json:"front_default"`
}

// ListResponse is the part of the paginated listing endpoint dexter reads.
type ListResponse struct {
	Count int `json:"count"`
}

// TypeNames returns the type names in slot order as delivered by the API.
func (p Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, slot := range p.Types {
		name := strings.TrimSpace(slot.Type.Name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// PreferredImage picks the official artwork, then the default sprite.
// It returns an empty string when neither exists.
func (s Sprites) PreferredImage() string {
	if art := s.Other.OfficialArtwork; art != nil {
		if url := strings.TrimSpace(art.FrontDefault); url != "" {
			return url
		}
	}
	return strings.TrimSpace(s.FrontDefault)
}
