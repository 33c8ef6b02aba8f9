//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"console-rental/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("disk full")

	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to save renter", cause)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to save renter")
	})

	t.Run("explicit kind", func(t *testing.T) {
		err := infra.WrapRepoErr("corrupt game record", cause, infra.KindDecodeFailure)
		assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("nil cause", func(t *testing.T) {
		err := infra.WrapRepoErr("renter not found", nil, infra.KindNotFound)
		assert.Equal(t, "NOT_FOUND: renter not found", err.Error())
	})

	t.Run("plain errors carry no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(cause, infra.KindNotFound))
	})
}
