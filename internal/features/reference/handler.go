package reference

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakibdev/takealot-server/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Categories godoc
// @Summary List all product categories
// @Tags reference
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /all-category [get]
func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.repo.AllCategories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CountryCodes godoc
// @Summary List all phone country codes
// @Tags reference
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /all-country-code [get]
func (h *Handler) CountryCodes(c *gin.Context) {
	codes, err := h.repo.AllCountryCodes(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch country codes")
		return
	}

	c.JSON(http.StatusOK, codes)
}
