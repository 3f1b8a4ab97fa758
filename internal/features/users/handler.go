package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibdev/takealot-server/internal/pkg/response"
	apperrors "github.com/rakibdev/takealot-server/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with an unused email; the password is stored as a bcrypt hash
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, BindingErrorMessage(err))
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Email:                       req.Email,
		FirstName:                   req.FirstName,
		LastName:                    req.LastName,
		CountryCode:                 req.CountryCode,
		Phone:                       req.Phone,
		Password:                    hashedPassword,
		AgreeWithNewslettersReceive: req.AgreeWithNewslettersReceive,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			response.Conflict(c, "User already exists")
			return
		}
		response.InternalServerError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID.Hex()})
}

// GetProfile godoc
// @Summary Get a user profile by email
// @Description Fetch the profile matching the email query; the token's email must match
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "Account email"
// @Success 200 {object} User
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user [get]
func (h *Handler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email query parameter is required")
		return
	}

	// The gate proved who the caller is; this proves they are asking about
	// themselves.
	if c.GetString("email") != email {
		response.Forbidden(c, "You can only view your own account")
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), email)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch user")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePassword godoc
// @Summary Update a user's password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body UpdatePasswordRequest true "New password"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user-password-update/{id} [patch]
func (h *Handler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, BindingErrorMessage(err))
		return
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	h.applyUpdate(c, bson.M{"password": hashedPassword})
}

// UpdateEmail godoc
// @Summary Update a user's email
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body UpdateEmailRequest true "New email"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /user-email-update/{id} [patch]
func (h *Handler) UpdateEmail(c *gin.Context) {
	var req UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, BindingErrorMessage(err))
		return
	}

	h.applyUpdate(c, bson.M{"email": req.Email})
}

// UpdateName godoc
// @Summary Update a user's first and last name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body UpdateNameRequest true "New name"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user-name-update/{id} [patch]
func (h *Handler) UpdateName(c *gin.Context) {
	var req UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, BindingErrorMessage(err))
		return
	}

	h.applyUpdate(c, bson.M{"firstName": req.FirstName, "lastName": req.LastName})
}

// UpdatePhoneNumber godoc
// @Summary Update a user's phone number
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body UpdatePhoneRequest true "New phone number"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user-phone-number-update/{id} [patch]
func (h *Handler) UpdatePhoneNumber(c *gin.Context) {
	var req UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, BindingErrorMessage(err))
		return
	}

	h.applyUpdate(c, bson.M{"countryCode": req.CountryCode, "phone": req.Number})
}

// UpdateBusinessDetails godoc
// @Summary Update a user's business details
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body UpdateBusinessDetailsRequest true "Business details"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user-business-details-update/{id} [patch]
func (h *Handler) UpdateBusinessDetails(c *gin.Context) {
	var req UpdateBusinessDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, BindingErrorMessage(err))
		return
	}

	h.applyUpdate(c, bson.M{"businessName": req.BusinessName, "vatNumber": req.VatNumber})
}

// applyUpdate runs a field-scoped $set against the :id user and writes the
// shared success/failure responses.
func (h *Handler) applyUpdate(c *gin.Context, fields bson.M) {
	result, err := h.repo.UpdateFields(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidID):
			response.BadRequest(c, "Invalid user id")
		case errors.Is(err, apperrors.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			response.Conflict(c, "Email already in use")
		default:
			response.InternalServerError(c, "Failed to update user")
		}
		return
	}

	c.JSON(http.StatusOK, updateResultBody(result))
}

func updateResultBody(result *mongo.UpdateResult) gin.H {
	return gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	}
}
