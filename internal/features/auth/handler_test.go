package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

func tokenRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, tokens)
	return r
}

func TestIssueToken(t *testing.T) {
	tokens := token.NewService("test-secret", 6)
	r := tokenRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"_id":"64f1b2c3d4e5f60718293a4b","email":"a@x.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	require.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
}

func TestIssueTokenIgnoresExtraFields(t *testing.T) {
	tokens := token.NewService("test-secret", 6)
	r := tokenRouter(tokens)

	w := httptest.NewRecorder()
	payload := `{"email":"a@x.com","firstName":"A","agreeWithNewslettersReceive":true}`
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	claims, err := tokens.Verify(body.Token)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
	require.Empty(t, claims.UserID)
}

func TestIssueTokenMissingEmail(t *testing.T) {
	r := tokenRouter(token.NewService("test-secret", 6))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"firstName":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "validation", body["kind"])
}
