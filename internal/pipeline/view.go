package pipeline

import (
	"fmt"
	"strings"

	"github.com/five82/dexter/internal/pokeapi"
)

// Placeholders shown by the display.
const (
	EmptyName      = "—"
	LoadingText    = "Loading..."
	NotFoundText   = "Not found"
	UnavailableAlt = "Unavailable"
	typeLabel      = "Type: "
)

// RecordView is the rendered projection of one fetched record. It is built
// fresh for every successful fetch and replaces the previous view entirely.
type RecordView struct {
	ID          int
	DisplayName string
	Types       []string
	ImageURL    string
	Height      int
	Weight      int
}

// Project maps an API record to its view.
func Project(p pokeapi.Pokemon) RecordView {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = EmptyName
	}
	return RecordView{
		ID:          p.ID,
		DisplayName: name,
		Types:       p.TypeNames(),
		ImageURL:    p.Sprites.PreferredImage(),
		Height:      p.Height,
		Weight:      p.Weight,
	}
}

// TypeSummary renders the labeled type list, using a dash when empty.
func (v RecordView) TypeSummary() string {
	if len(v.Types) == 0 {
		return typeLabel + EmptyName
	}
	return typeLabel + strings.Join(v.Types, ", ")
}

// AltText describes the image for terminals that cannot show it.
func (v RecordView) AltText() string {
	return "Artwork of " + v.DisplayName
}

// IDLabel renders "#<id>"; empty when the record carried no id.
func (v RecordView) IDLabel() string {
	if v.ID <= 0 {
		return ""
	}
	return fmt.Sprintf("#%d", v.ID)
}

// Display is the text currently bound to each display element.
type Display struct {
	Name     string
	Types    string
	ImageURL string
	Alt      string
	ID       string

	// View is the last successfully rendered record; nil while loading or
	// after a failure.
	View *RecordView
}

func (d Display) loading() Display {
	return Display{Name: LoadingText, ID: d.ID}
}

func (d Display) notFound() Display {
	return Display{Name: NotFoundText, Alt: UnavailableAlt, ID: d.ID}
}

func displayFor(v RecordView) Display {
	return Display{
		Name:     v.DisplayName,
		Types:    v.TypeSummary(),
		ImageURL: v.ImageURL,
		Alt:      v.AltText(),
		ID:       v.IDLabel(),
		View:     &v,
	}
}
