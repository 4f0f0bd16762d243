package controllers

import (
	"net/http"
	"time"

	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	weights *services.WeightService
}

func NewWeightController(weights *services.WeightService) *WeightController {
	return &WeightController{weights: weights}
}

type WeightInput struct {
	Date   string  `json:"date"` // YYYY-MM-DD, defaults to today
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

// POST /weights
func (wc *WeightController) Record(c *gin.Context) {
	var input WeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	rec, err := wc.weights.Record(c.GetUint("userID"), date, input.Weight, input.Notes)
	if err != nil {
		respondServiceError(c, "recording weight failed", err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GET /weights
func (wc *WeightController) History(c *gin.Context) {
	recs, err := wc.weights.History(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, "fetching weight history failed", err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
