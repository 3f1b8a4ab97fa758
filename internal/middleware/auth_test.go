package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

func protectedRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(tokens))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"userID": c.GetString("userID"),
			"email":  c.GetString("email"),
		})
	})
	return r
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	r := protectedRouter(token.NewService("test-secret", 6))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["error"])
	require.Equal(t, "unauthorized", body["kind"])
	require.Equal(t, "Unauthorized Access", body["message"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(token.NewService("test-secret", 6))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Unauthorized Access", body["message"])
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewService("test-secret", 6)
	r := protectedRouter(tokens)

	signed, err := tokens.Issue("64f1b2c3d4e5f60718293a4b", "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "64f1b2c3d4e5f60718293a4b", body["userID"])
	require.Equal(t, "a@x.com", body["email"])
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokens := token.NewService("test-secret", 6)
	r := protectedRouter(tokens)

	signed, err := token.NewService("test-secret", -1).Issue("id", "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}

func selfRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/user-name-update/:id", Auth(tokens), RequireSelf(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestRequireSelf_SubjectMismatch(t *testing.T) {
	tokens := token.NewService("test-secret", 6)
	r := selfRouter(tokens)

	signed, err := tokens.Issue("64f1b2c3d4e5f60718293a4b", "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/user-name-update/someone-else", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "forbidden", body["kind"])
}

func TestRequireSelf_SubjectMatches(t *testing.T) {
	tokens := token.NewService("test-secret", 6)
	r := selfRouter(tokens)

	signed, err := tokens.Issue("64f1b2c3d4e5f60718293a4b", "a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/user-name-update/64f1b2c3d4e5f60718293a4b", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
}
