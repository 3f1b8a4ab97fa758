package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

func RegisterRoutes(router *gin.Engine, tokens *token.Service) {
	handler := NewHandler(tokens)

	router.POST("/jwt", handler.IssueToken)
}
