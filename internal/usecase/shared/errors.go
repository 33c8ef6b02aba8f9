package shared

import (
	"console-rental/internal/infra"
	"console-rental/internal/pkg/errs"
)

// NotFoundAs turns a repository not-found into the domain NotFound error with msg.
// Other errors pass through unchanged.
func NotFoundAs(err error, msg string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(msg)
	}
	return err
}
