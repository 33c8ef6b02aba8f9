//go:build unit

package ident_test

import (
	"strings"
	"testing"

	"console-rental/internal/pkg/ident"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	gen := ident.NewRandomGenerator()

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[ident.ID]struct{}, 1000)
		for range 1000 {
			id := gen.Generate()
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("ids round-trip through Parse", func(t *testing.T) {
		id := gen.Generate()
		parsed, err := ident.Parse(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("ids are grouped lower-case base32", func(t *testing.T) {
		id := gen.Generate().String()
		assert.Equal(t, strings.ToLower(id), id)
		groups := strings.Split(id, "-")
		require.Len(t, groups, 11) // 33 bytes -> 53 chars -> 10 groups of 5 + 3
		for _, g := range groups[:len(groups)-1] {
			assert.Len(t, g, 5)
		}
		assert.Len(t, groups[len(groups)-1], 3)
	})
}

func TestSequenceGenerator(t *testing.T) {
	gen := ident.NewSequenceGenerator()
	a, b := gen.Generate(), gen.Generate()
	assert.NotEqual(t, a, b)

	again := ident.NewSequenceGenerator()
	assert.Equal(t, a, again.Generate(), "sequence must be deterministic")
}

func TestParse(t *testing.T) {
	valid := ident.NewRandomGenerator().Generate().String()

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid id", input: valid},
		{name: "empty", input: "", wantErr: true},
		{name: "upper-case is not canonical", input: strings.ToUpper(valid), wantErr: true},
		{name: "missing dashes", input: strings.ReplaceAll(valid, "-", ""), wantErr: true},
		{name: "not base32", input: "!!!!!-@@@@@", wantErr: true},
		{name: "too short", input: "aaaa", wantErr: true},
		{name: "checksum mismatch", input: flipFirstDataChar(valid), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ident.Parse(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ident.ErrMalformedID)
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, id.String())
		})
	}
}

func TestParseAll(t *testing.T) {
	gen := ident.NewSequenceGenerator()
	a, b := gen.Generate(), gen.Generate()

	ids, err := ident.ParseAll([]string{a.String(), b.String()})
	require.NoError(t, err)
	assert.Equal(t, []ident.ID{a, b}, ids)

	_, err = ident.ParseAll([]string{a.String(), "bogus"})
	assert.ErrorIs(t, err, ident.ErrMalformedID)
}

// flips a character inside the payload so the checksum no longer matches
func flipFirstDataChar(s string) string {
	b := []byte(s)
	i := len(b) - 2
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	return string(b)
}
