package products

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database) {
	handler := NewHandler(NewRepository(db))

	router.GET("/total-products", handler.Total)
	router.GET("/all-products", handler.List)
}
