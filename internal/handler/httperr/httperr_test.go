//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"console-rental/internal/handler/httperr"
	"console-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        errs.NotFound(errs.MsgRenterNotFound),
			wantStatus: http.StatusNotFound,
			wantKind:   "NotFound",
			wantMsg:    errs.MsgRenterNotFound,
		},
		{
			name:       "invalid payload",
			err:        errs.Wrap(errs.InvalidPayload(errs.MsgGamePayload), "create game"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "InvalidPayload",
			wantMsg:    errs.MsgGamePayload,
		},
		{
			name:       "not available",
			err:        errs.PlayStationNotAvailable(errs.MsgPlayStationNotAvailable),
			wantStatus: http.StatusConflict,
			wantKind:   "PlayStationNotAvailable",
			wantMsg:    errs.MsgPlayStationNotAvailable,
		},
		{
			name:       "infrastructure failure",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   httperr.KindInternal,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			httperr.AbortWithDomainError(c, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.True(t, c.IsAborted())

			var body struct {
				Error struct {
					Message string `json:"message"`
					Kind    string `json:"kind"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantKind, body.Error.Kind)
			assert.Equal(t, tc.wantMsg, body.Error.Message)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}
