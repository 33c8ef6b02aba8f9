package api

import (
	"console-rental/internal/handler/httperr"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidID   = "Malformed id"
	msgInvalidBody = "Invalid request body"
)

// pathID parses a path parameter; it aborts with 400 and reports false when malformed.
func pathID(c *gin.Context, name string) (ident.ID, bool) {
	id, err := ident.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithDomainError(c, errs.InvalidPayload(msgInvalidID))
		return "", false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithDomainError(c, errs.InvalidPayload(msgInvalidBody))
		return false
	}
	return true
}
