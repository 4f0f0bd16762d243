package controllers

import (
	"errors"
	"net/http"

	"github.com/defenstration/diet-tracker-app/logger"
	"github.com/defenstration/diet-tracker-app/models"
	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FoodLogController struct {
	logs  *services.FoodLogService
	goals *services.DailyGoalService
	rt    *services.RealtimeHub
}

func NewFoodLogController(logs *services.FoodLogService, goals *services.DailyGoalService, rt *services.RealtimeHub) *FoodLogController {
	return &FoodLogController{logs: logs, goals: goals, rt: rt}
}

type LogEntryInput struct {
	Food     services.FoodItem `json:"food" binding:"required"`
	Quantity float64           `json:"quantity" binding:"required,gte=0.25,lte=99"`
	MealType models.MealSlot   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
}

// POST /logs
func (flc *FoodLogController) LogEntry(c *gin.Context) {
	var input LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	entry, err := flc.logs.LogEntry(userID, input.Food, input.Quantity, input.MealType)
	if err != nil {
		respondServiceError(c, "log entry failed", err)
		return
	}

	// push refreshed totals to any open sockets; failure here never fails
	// the request
	if entries, err := flc.logs.TodaysEntries(userID); err == nil {
		flc.rt.BroadcastTotals(userID, services.SumDailyTotals(entries))
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /logs/today
func (flc *FoodLogController) TodaysEntries(c *gin.Context) {
	entries, err := flc.logs.TodaysEntries(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, "fetching today's entries failed", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /logs/today/summary
func (flc *FoodLogController) TodaysSummary(c *gin.Context) {
	summary, err := flc.goals.TodaysSummary(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, "building daily summary failed", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses
// and logs the original cause.
func respondServiceError(c *gin.Context, msg string, err error) {
	logger.L().Error(msg, zap.Error(err))
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrLookup):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Food lookup failed"})
	case errors.Is(err, services.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
