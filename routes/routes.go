package routes

import (
	"github.com/defenstration/diet-tracker-app/controllers"
	"github.com/defenstration/diet-tracker-app/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Food      *controllers.FoodController
	FoodLog   *controllers.FoodLogController
	DailyGoal *controllers.DailyGoalController
	Weight    *controllers.WeightController
	Exercise  *controllers.ExerciseController
	Milestone *controllers.MilestoneController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/magic-link", c.Auth.RequestMagicLink)
		auth.POST("/verify", c.Auth.VerifyMagicLink)
	}

	// Everything else requires a signed-in user
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", c.User.GetProfile)
		api.PUT("/user/profile", c.User.UpdateProfile)

		api.GET("/food/search", c.Food.Search)
		api.GET("/food/barcode/:code", c.Food.Barcode)

		api.POST("/logs", c.FoodLog.LogEntry)
		api.GET("/logs/today", c.FoodLog.TodaysEntries)
		api.GET("/logs/today/summary", c.FoodLog.TodaysSummary)

		api.GET("/goals", c.DailyGoal.GetGoal)
		api.PUT("/goals", c.DailyGoal.UpdateGoal)

		api.POST("/weights", c.Weight.Record)
		api.GET("/weights", c.Weight.History)

		api.POST("/exercises", c.Exercise.Log)
		api.GET("/exercises/today", c.Exercise.Today)

		api.POST("/milestones", c.Milestone.Create)
		api.GET("/milestones", c.Milestone.List)
		api.POST("/milestones/:id/complete", c.Milestone.Complete)
		api.DELETE("/milestones/:id", c.Milestone.Delete)

		api.GET("/realtime/totals", c.Realtime.TotalsWS)
	}

	return r
}
