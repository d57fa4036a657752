package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voltly/voltly/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	locationService    service.LocationServiceI
	goalService        service.GoalServiceI
	achievementService service.AchievementServiceI
	billService        service.BillServiceI
	jwtService         JWTServiceI
}

type ServicesList struct {
	UserService        service.UserServiceI
	LocationService    service.LocationServiceI
	GoalService        service.GoalServiceI
	AchievementService service.AchievementServiceI
	BillService        service.BillServiceI
	JwtService         JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		locationService:    servicesOptions.LocationService,
		goalService:        servicesOptions.GoalService,
		achievementService: servicesOptions.AchievementService,
		billService:        servicesOptions.BillService,
		jwtService:         servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(pr chi.Router) {
			pr.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			pr.Route("/locations", func(lr chi.Router) {
				lr.Get("/", s.GetLocations)
				lr.Post("/", s.CreateLocation)
				lr.Get("/{id}", s.GetLocation)
				lr.Delete("/{id}", s.DeleteLocation)
				lr.Put("/{id}/tariffs", s.SetTariffs)
				lr.Get("/{id}/costs", s.GetDeviceCosts)
				lr.Post("/{id}/devices", s.AddDevice)
				lr.Patch("/{id}/devices/{deviceID}", s.UpdateDevice)
				lr.Delete("/{id}/devices/{deviceID}", s.DeleteDevice)
				lr.Post("/{id}/rooms", s.AddRoom)
				lr.Delete("/{id}/rooms/{roomID}", s.DeleteRoom)
			})
			pr.Get("/goals", s.GetGoals)
			pr.Post("/goals/{id}/complete", s.CompleteGoal)
			pr.Get("/achievements", s.GetAchievements)
			pr.Get("/bills", s.GetBills)
			pr.Put("/bills/{month}", s.UpsertBill)
			pr.Get("/savings", s.GetSavings)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
