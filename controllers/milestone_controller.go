package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/defenstration/diet-tracker-app/services"

	"github.com/gin-gonic/gin"
)

type MilestoneController struct {
	milestones *services.MilestoneService
}

func NewMilestoneController(milestones *services.MilestoneService) *MilestoneController {
	return &MilestoneController{milestones: milestones}
}

type MilestoneInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date" binding:"required"` // YYYY-MM-DD
}

// POST /milestones
func (mc *MilestoneController) Create(c *gin.Context) {
	var input MilestoneInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target, err := time.Parse("2006-01-02", input.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_date. Use YYYY-MM-DD"})
		return
	}

	m, err := mc.milestones.Create(c.GetUint("userID"), input.Title, input.Description, target)
	if err != nil {
		respondServiceError(c, "creating milestone failed", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /milestones
func (mc *MilestoneController) List(c *gin.Context) {
	ms, err := mc.milestones.List(c.GetUint("userID"))
	if err != nil {
		respondServiceError(c, "listing milestones failed", err)
		return
	}
	c.JSON(http.StatusOK, ms)
}

// POST /milestones/:id/complete
func (mc *MilestoneController) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone id"})
		return
	}

	m, err := mc.milestones.Complete(c.GetUint("userID"), uint(id))
	if err != nil {
		respondServiceError(c, "completing milestone failed", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /milestones/:id
func (mc *MilestoneController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone id"})
		return
	}

	if err := mc.milestones.Delete(c.GetUint("userID"), uint(id)); err != nil {
		respondServiceError(c, "deleting milestone failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
