//go:build unit

package playstation_test

import (
	"testing"

	"console-rental/internal/domain/playstation"
	"console-rental/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayStation(t *testing.T) {
	gen := ident.NewSequenceGenerator()

	t.Run("empty list starts available", func(t *testing.T) {
		ps := playstation.NewPlayStation(gen.Generate(), nil)
		assert.True(t, ps.IsAvailable())
		assert.NotNil(t, ps.Games())
		assert.Empty(t, ps.Games())
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		games := []ident.ID{gen.Generate()}
		ps := playstation.NewPlayStation(gen.Generate(), games)
		games[0] = gen.Generate()
		assert.NotEqual(t, games[0], ps.Games()[0])
	})
}

func TestPlayStation_Games(t *testing.T) {
	gen := ident.NewSequenceGenerator()
	g1, g2 := gen.Generate(), gen.Generate()

	t.Run("AddGames keeps order and duplicates", func(t *testing.T) {
		ps := playstation.NewPlayStation(gen.Generate(), []ident.ID{g1})
		ps.AddGames([]ident.ID{g2, g1})
		assert.Equal(t, []ident.ID{g1, g2, g1}, ps.Games())
	})

	t.Run("RemoveGame drops every occurrence", func(t *testing.T) {
		ps := playstation.NewPlayStation(gen.Generate(), []ident.ID{g1, g2, g1})
		assert.True(t, ps.RemoveGame(g1))
		assert.Equal(t, []ident.ID{g2}, ps.Games())
		assert.False(t, ps.HasGame(g1))
	})

	t.Run("RemoveGame on a missing id is a no-op", func(t *testing.T) {
		ps := playstation.NewPlayStation(gen.Generate(), []ident.ID{g2})
		assert.False(t, ps.RemoveGame(g1))
		assert.Equal(t, []ident.ID{g2}, ps.Games())
	})

	t.Run("Games returns a copy", func(t *testing.T) {
		ps := playstation.NewPlayStation(gen.Generate(), []ident.ID{g1})
		got := ps.Games()
		got[0] = g2
		assert.Equal(t, []ident.ID{g1}, ps.Games())
	})
}

func TestPlayStation_Availability(t *testing.T) {
	ps := playstation.NewPlayStation(ident.NewSequenceGenerator().Generate(), nil)

	ps.MarkRented()
	assert.False(t, ps.IsAvailable())

	ps.MarkAvailable()
	ps.MarkAvailable()
	assert.True(t, ps.IsAvailable())
}
