package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/dexter/internal/pokeapi"
)

func TestProject_FullRecord(t *testing.T) {
	v := Project(*pikachu())
	assert.Equal(t, 25, v.ID)
	assert.Equal(t, "pikachu", v.DisplayName)
	assert.Equal(t, []string{"electric"}, v.Types)
	assert.Equal(t, "https://img.example/art/25.png", v.ImageURL)
	assert.Equal(t, "Type: electric", v.TypeSummary())
	assert.Equal(t, "#25", v.IDLabel())
	assert.Equal(t, "Artwork of pikachu", v.AltText())
}

func TestProject_Placeholders(t *testing.T) {
	v := Project(pokeapi.Pokemon{})
	assert.Equal(t, EmptyName, v.DisplayName)
	assert.Empty(t, v.Types)
	assert.Equal(t, "Type: —", v.TypeSummary())
	assert.Empty(t, v.ImageURL)
	assert.Empty(t, v.IDLabel())
	assert.Equal(t, "Artwork of —", v.AltText())
}

func TestProject_SpriteFallback(t *testing.T) {
	v := Project(pokeapi.Pokemon{
		ID:   1,
		Name: "bulbasaur",
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "grass"}},
			{Slot: 2, Type: pokeapi.NamedResource{Name: "poison"}},
		},
		Sprites: pokeapi.Sprites{FrontDefault: "s.png"},
	})
	assert.Equal(t, "s.png", v.ImageURL)
	assert.Equal(t, "Type: grass, poison", v.TypeSummary())
}
