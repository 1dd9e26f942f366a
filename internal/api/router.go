package api

import (
	"net/http"

	"github.com/careernet/careernet/internal/api/handlers"
	"github.com/careernet/careernet/internal/api/middleware"
	"github.com/careernet/careernet/internal/logger"
	"github.com/careernet/careernet/internal/service"
	"github.com/careernet/careernet/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()
	log := logger.New("http")

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	usersHandler := handlers.NewUsersHandler(services.Profile, services.Job)
	jobsHandler := handlers.NewJobsHandler(services.Job, hub)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth, log))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Every other route requires authentication; the guard is applied
		// once here rather than inside individual handlers.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth, log))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Put("/", profileHandler.UpdateProfile)
				r.Post("/skills", profileHandler.AddSkill)
				r.Delete("/skills/{name}", profileHandler.RemoveSkill)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/search", usersHandler.Search)
				r.Get("/me/applications", usersHandler.MyApplications)
			})

			r.Route("/jobs", func(r chi.Router) {
				r.Post("/", jobsHandler.Create)
				r.Get("/", jobsHandler.List)
				r.Get("/{id}", jobsHandler.Get)
				r.Put("/{id}", jobsHandler.Update)
				r.Delete("/{id}", jobsHandler.Delete)
				r.Post("/{id}/apply", jobsHandler.Apply)
				r.Get("/{id}/applications", jobsHandler.Applications)
			})
		})

		// WebSocket endpoint authenticates its own token at upgrade time.
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
