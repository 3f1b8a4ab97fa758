package products

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rakibdev/takealot-server/internal/pkg/pagination"
	"github.com/rakibdev/takealot-server/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Total godoc
// @Summary Get the total product count
// @Tags products
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /total-products [get]
func (h *Handler) Total(c *gin.Context) {
	count, err := h.repo.Count(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to count products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalProduct": count})
}

// List godoc
// @Summary List a page of products
// @Description Returns products at offset page*limit in insertion order; page is zero-based
// @Tags products
// @Produce json
// @Param page query int false "Zero-based page index" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /all-products [get]
func (h *Handler) List(c *gin.Context) {
	page, err := pagination.FromQuery(c.Query("page"), c.Query("limit"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// limit=0 asks for an empty slice; the driver would treat 0 as "no
	// limit", so short-circuit instead
	if page.Limit == 0 {
		c.JSON(http.StatusOK, []bson.M{})
		return
	}

	products, err := h.repo.FindPage(c.Request.Context(), page.Skip(), page.GetLimit())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}
