package controllers

import (
	"net/http"

	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{exercises: exercises}
}

type ExerciseInput struct {
	ExerciseType   string  `json:"exercise_type" binding:"required"`
	Duration       float64 `json:"duration" binding:"gte=0"`
	CaloriesBurned float64 `json:"calories_burned" binding:"gte=0"`
	Notes          string  `json:"notes"`
}

// POST /exercises
func (ec *ExerciseController) Log(c *gin.Context) {
	var input ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.exercises.Log(c.GetUint("userID"), input.ExerciseType, input.Duration, input.CaloriesBurned, input.Notes)
	if err != nil {
		respondServiceError(c, "logging exercise failed", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /exercises/today
func (ec *ExerciseController) Today(c *gin.Context) {
	logs, err := ec.exercises.TodaysLogs(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, "fetching exercise logs failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":            logs,
		"calories_burned": services.SumCaloriesBurned(logs),
	})
}
