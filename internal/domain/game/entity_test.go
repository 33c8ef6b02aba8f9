//go:build unit

package game_test

import (
	"testing"

	"console-rental/internal/pkg/errs"
	"console-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewGameBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, b.Title, actual.Title())
		assert.Equal(t, b.Description, actual.Description())
		assert.Equal(t, b.Developers, actual.Developers())
	})

	t.Run("whitespace fields are stored verbatim", func(t *testing.T) {
		actual, err := builder.NewGameBuilder().With(func(b *builder.GameBuilder) {
			b.Title, b.Developers = "\t", " "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "\t", actual.Title())
		assert.Equal(t, " ", actual.Developers())
	})

	testCases := []struct {
		name   string
		mutate func(*builder.GameBuilder)
	}{
		{name: "empty title", mutate: func(b *builder.GameBuilder) { b.Title = "" }},
		{name: "empty description", mutate: func(b *builder.GameBuilder) { b.Description = "" }},
		{name: "empty developers", mutate: func(b *builder.GameBuilder) { b.Developers = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewGameBuilder().With(tc.mutate).BuildDomain()
			assert.ErrorIs(t, err, errs.ErrInvalidPayload)
			assert.ErrorContains(t, err, errs.MsgGamePayload)
			assert.Nil(t, actual)
		})
	}
}
