package controllers

import (
	"net/http"

	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type DailyGoalController struct {
	goals *services.DailyGoalService
}

func NewDailyGoalController(goals *services.DailyGoalService) *DailyGoalController {
	return &DailyGoalController{goals: goals}
}

// GET /goals
func (dgc *DailyGoalController) GetGoal(c *gin.Context) {
	goal, err := dgc.goals.GetGoal(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, "fetching goal failed", err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type GoalInput struct {
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

// PUT /goals
func (dgc *DailyGoalController) UpdateGoal(c *gin.Context) {
	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := dgc.goals.UpsertGoal(c.GetUint("userID"), input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		respondServiceError(c, "updating goal failed", err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
