package controllers

import (
	"net/http"

	"github.com/defenstration/diet-tracker-app/logger"
	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FoodController struct {
	usda *services.USDAService
}

func NewFoodController(usda *services.USDAService) *FoodController {
	return &FoodController{usda: usda}
}

// GET /food/search?q=peanut+butter
func (fc *FoodController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	foods, err := fc.usda.Search(q)
	if err != nil {
		logger.L().Error("food search failed", zap.String("query", q), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Food lookup failed"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /food/barcode/:code
func (fc *FoodController) Barcode(c *gin.Context) {
	code := c.Param("code")

	food, err := fc.usda.LookupBarcode(code)
	if err != nil {
		logger.L().Error("barcode lookup failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Food lookup failed"})
		return
	}
	if food == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No food found for barcode"})
		return
	}
	c.JSON(http.StatusOK, food)
}
