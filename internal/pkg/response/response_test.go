package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, 404, KindNotFound, "User not found")

	require.Equal(t, 404, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["error"])
	require.Equal(t, "not_found", body["kind"])
	require.Equal(t, "User not found", body["message"])
}

func TestHelperStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		send   func(c *gin.Context)
		status int
		kind   string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "m") }, 400, KindValidation},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "m") }, 401, KindUnauthorized},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "m") }, 403, KindForbidden},
		{"not found", func(c *gin.Context) { NotFound(c, "m") }, 404, KindNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "m") }, 409, KindConflict},
		{"internal", func(c *gin.Context) { InternalServerError(c, "m") }, 500, KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.send(c)

			require.Equal(t, tc.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tc.kind, body["kind"])
			require.Equal(t, "m", body["message"])
		})
	}
}
