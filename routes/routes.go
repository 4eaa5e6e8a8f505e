package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rollball/tournament-system/handlers"
	"github.com/rollball/tournament-system/middleware"
	"github.com/rollball/tournament-system/models"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Team      *handlers.TeamHandler
	Player    *handlers.PlayerHandler
	Event     *handlers.EventHandler
	Group     *handlers.GroupHandler
	Match     *handlers.MatchHandler
	Standings *handlers.StandingsHandler
	Knockout  *handlers.KnockoutHandler
	Export    *handlers.ExportHandler
	WebSocket *handlers.WebSocketHandler
}

// InitRoutes wires the full HTTP surface. Reads are public; writes require a
// token, and tournament administration requires the admin role.
func InitRoutes(h Handlers, jwtSecret string, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)
	adminOnly := middleware.Authorize(models.RoleAdmin)
	anyManager := middleware.Authorize(models.RoleAdmin, models.RoleTeamManager)

	router.Handle("/metrics", promhttp.Handler())

	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	router.Get("/ws/events/{eventID}", h.WebSocket.ServeWs)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.List)
		r.Get("/{teamID}", h.Team.GetByID)
		r.Get("/{teamID}/players", h.Team.GetRoster)
		r.Get("/{teamID}/roster.csv", h.Export.TeamRosterCSV)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(anyManager)

			r.Put("/{teamID}", h.Team.Update)
			r.Post("/{teamID}/players", h.Player.Add)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Delete("/{teamID}", h.Team.Delete)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/{playerID}", h.Player.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(anyManager)

			r.Put("/{playerID}", h.Player.Update)
			r.Delete("/{playerID}", h.Player.Delete)
			r.Post("/{playerID}/photo", h.Player.UploadPhoto)
			r.Post("/{playerID}/certificate", h.Player.UploadCertificate)
		})
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/", h.Event.List)
		r.Get("/{eventID}", h.Event.GetByID)
		r.Get("/{eventID}/groups", h.Group.ListByEvent)
		r.Get("/{eventID}/matches", h.Match.ListByEvent)
		r.Get("/{eventID}/standings", h.Standings.EventStandings)
		r.Get("/{eventID}/standings.csv", h.Export.EventStandingsCSV)
		r.Get("/{eventID}/qualifiers", h.Standings.Qualifiers)
		r.Get("/{eventID}/bracket", h.Knockout.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(anyManager)

			r.Post("/{eventID}/register", h.Event.RegisterTeam)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Event.Create)
			r.Put("/{eventID}", h.Event.Update)
			r.Delete("/{eventID}", h.Event.Delete)
			r.Post("/{eventID}/groups", h.Group.Create)
			r.Post("/{eventID}/bracket", h.Knockout.Generate)
			r.Post("/{eventID}/bracket/winner", h.Knockout.RecordWinner)
		})
	})

	router.Route("/groups", func(r chi.Router) {
		r.Get("/{groupID}", h.Group.GetByID)
		r.Get("/{groupID}/standings", h.Standings.GroupStandings)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/{groupID}/teams", h.Group.AssignTeam)
			r.Delete("/{groupID}/teams/{teamID}", h.Group.RemoveTeam)
			r.Delete("/{groupID}", h.Group.Delete)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", h.Match.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Match.Schedule)
			r.Put("/{matchID}/result", h.Match.RecordResult)
			r.Delete("/{matchID}", h.Match.Delete)
		})
	})

	return router
}
