package users

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibdev/takealot-server/internal/middleware"
	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

// RegisterRoutes registers the user routes. Registration is open; everything
// that reads or mutates a specific account sits behind the auth gate, and the
// update routes additionally require the token subject to own the target id.
func RegisterRoutes(router *gin.Engine, db *mongo.Database, tokens *token.Service) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	authRequired := middleware.Auth(tokens)
	self := middleware.RequireSelf()

	router.POST("/users", handler.Register)
	router.GET("/user", authRequired, handler.GetProfile)

	router.PATCH("/user-password-update/:id", authRequired, self, handler.UpdatePassword)
	router.PATCH("/user-email-update/:id", authRequired, self, handler.UpdateEmail)
	router.PATCH("/user-name-update/:id", authRequired, self, handler.UpdateName)
	router.PATCH("/user-phone-number-update/:id", authRequired, self, handler.UpdatePhoneNumber)
	router.PATCH("/user-business-details-update/:id", authRequired, self, handler.UpdateBusinessDetails)
}
