package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibdev/takealot-server/internal/config"
	"github.com/rakibdev/takealot-server/internal/features/auth"
	"github.com/rakibdev/takealot-server/internal/features/products"
	"github.com/rakibdev/takealot-server/internal/features/reference"
	"github.com/rakibdev/takealot-server/internal/features/users"
	"github.com/rakibdev/takealot-server/internal/pkg/token"
)

// SetupRoutes registers every feature at the router root; the flat paths are
// the public contract consumed by the storefront frontend.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpireHours)

	auth.RegisterRoutes(router, tokens)
	products.RegisterRoutes(router, db)
	reference.RegisterRoutes(router, db)
	users.RegisterRoutes(router, db, tokens)
}
