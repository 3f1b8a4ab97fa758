package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakibdev/takealot-server/internal/pkg/response"
	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

type Handler struct {
	tokens *token.Service
}

func NewHandler(tokens *token.Service) *Handler {
	return &Handler{tokens: tokens}
}

// IssueToken godoc
// @Summary Issue a bearer token
// @Description Signs the caller-supplied user identity into a 6-hour JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "User identity to embed"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /jwt [post]
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A valid email is required")
		return
	}

	signed, err := h.tokens.Issue(req.ID, req.Email)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: signed})
}
