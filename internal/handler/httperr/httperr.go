package httperr

import (
	"net/http"

	"console-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const KindInternal = "Internal"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

// AbortWithDomainError maps err onto a status by its domain kind. Errors
// without a kind become a 500 with a generic message.
func AbortWithDomainError(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithDomainError: err cannot be nil")
	}
	de, ok := errs.AsDomain(err)
	if !ok {
		abort(c, http.StatusInternalServerError, err, "Internal server error", KindInternal, nil)
		return
	}
	abort(c, StatusFor(de.Kind), err, de.Message, string(de.Kind), nil)
}

func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidPayload:
		return http.StatusBadRequest
	case errs.KindPlayStationNotAvailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, status int, err error, msg, kind string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Kind = kind
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
