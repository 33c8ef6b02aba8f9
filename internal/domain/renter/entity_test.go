//go:build unit

package renter_test

import (
	"testing"

	"console-rental/internal/domain/renter"
	"console-rental/internal/pkg/errs"
	"console-rental/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(renter.Renter{}),
}

type testCase struct {
	name   string
	mutate func(*builder.RenterBuilder)
	errIs  error
}

func TestRenter(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRenterBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		expected := renter.ReconstructRenter(b.ID, b.Name, b.ContactInfo)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Renter mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fields keep caller input", func(t *testing.T) {
		actual, err := builder.NewRenterBuilder().With(func(b *builder.RenterBuilder) {
			b.Name = "  Ada  "
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "  Ada  ", actual.Name())
	})

	t.Run("payload validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", mutate: func(b *builder.RenterBuilder) { b.Name = "" }, errIs: errs.ErrInvalidPayload},
			{name: "whitespace name is accepted", mutate: func(b *builder.RenterBuilder) { b.Name = "   " }},
			{name: "empty contact info", mutate: func(b *builder.RenterBuilder) { b.ContactInfo = "" }, errIs: errs.ErrInvalidPayload},
			{name: "single character fields", mutate: func(b *builder.RenterBuilder) { b.Name, b.ContactInfo = "x", "y" }},
		})
	})
}

func TestRenter_ChangeContactInfo(t *testing.T) {
	r, err := builder.NewRenterBuilder().BuildDomain()
	require.NoError(t, err)
	id, name := r.ID(), r.Name()

	require.NoError(t, r.ChangeContactInfo("new@example.com"))
	assert.Equal(t, "new@example.com", r.ContactInfo())
	assert.Equal(t, id, r.ID())
	assert.Equal(t, name, r.Name())

	require.NoError(t, r.ChangeContactInfo(" "))
	assert.Equal(t, " ", r.ContactInfo())

	require.NoError(t, r.ChangeContactInfo("new@example.com"))
	err = r.ChangeContactInfo("")
	assert.ErrorIs(t, err, errs.ErrInvalidPayload)
	assert.Equal(t, "new@example.com", r.ContactInfo(), "failed change must not mutate")
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewRenterBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
