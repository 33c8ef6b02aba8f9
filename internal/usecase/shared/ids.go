package shared

import (
	"context"

	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
)

const maxIDAttempts = 3

var ErrIDSpaceExhausted = errs.New("could not generate an unused id")

// NewID draws ids from gen until exists reports a free one.
func NewID(ctx context.Context, gen ident.Generator, exists func(ctx context.Context, id ident.ID) (bool, error)) (ident.ID, error) {
	for range maxIDAttempts {
		id := gen.Generate()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}
