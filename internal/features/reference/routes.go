package reference

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database) {
	handler := NewHandler(NewRepository(db))

	router.GET("/all-category", handler.Categories)
	router.GET("/all-country-code", handler.CountryCodes)
}
