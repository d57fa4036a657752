// @title Voltly API
// @description API for the energy-monitoring app "Voltly"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/voltly/voltly/internal/api"
	"github.com/voltly/voltly/internal/goals"
	"github.com/voltly/voltly/internal/repository"
	"github.com/voltly/voltly/internal/service"
	"github.com/voltly/voltly/pkg/cleanup"
	"github.com/voltly/voltly/pkg/config"
	jwtservice "github.com/voltly/voltly/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	locationsRepo := repository.NewLocationsRepo(&dbCfg)
	goalStateRepo := repository.NewGoalStateRepo(&dbCfg)
	achievementStateRepo := repository.NewAchievementStateRepo(&dbCfg)
	billsRepo := repository.NewBillsRepo(&dbCfg)

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		LocationService:    service.NewLocationService(locationsRepo),
		GoalService:        service.NewGoalService(goalStateRepo, goals.LockedSource{}),
		AchievementService: service.NewAchievementService(achievementStateRepo, locationsRepo, goalStateRepo, billsRepo),
		BillService:        service.NewBillService(billsRepo),
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
