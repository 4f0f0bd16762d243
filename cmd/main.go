package main

import (
	"log"

	"github.com/defenstration/diet-tracker-app/config"
	"github.com/defenstration/diet-tracker-app/controllers"
	"github.com/defenstration/diet-tracker-app/logger"
	"github.com/defenstration/diet-tracker-app/routes"
	"github.com/defenstration/diet-tracker-app/services"
	"github.com/defenstration/diet-tracker-app/utils"
)

func main() {
	logger.InitializeLogger()
	config.InitDB()

	mailer, err := utils.NewSESMailer()
	if err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}

	usdaSvc := services.NewUSDAService()
	logSvc := services.NewFoodLogService(config.DB)
	goalSvc := services.NewDailyGoalService(config.DB, logSvc)
	authSvc := services.NewAuthService(config.DB, mailer)
	weightSvc := services.NewWeightService(config.DB)
	exerciseSvc := services.NewExerciseService(config.DB)
	milestoneSvc := services.NewMilestoneService(config.DB)
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		User:      controllers.NewUserController(config.DB),
		Food:      controllers.NewFoodController(usdaSvc),
		FoodLog:   controllers.NewFoodLogController(logSvc, goalSvc, hub),
		DailyGoal: controllers.NewDailyGoalController(goalSvc),
		Weight:    controllers.NewWeightController(weightSvc),
		Exercise:  controllers.NewExerciseController(exerciseSvc),
		Milestone: controllers.NewMilestoneController(milestoneSvc),
		Realtime:  controllers.NewRealtimeController(hub),
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
