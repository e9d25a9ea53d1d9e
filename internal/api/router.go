package api

import (
	"net/http"

	"github.com/dgarciab/formspace/internal/api/handler"
	customMiddleware "github.com/dgarciab/formspace/internal/api/middleware"
	"github.com/dgarciab/formspace/internal/config"
	"github.com/dgarciab/formspace/internal/domain"
	"github.com/dgarciab/formspace/internal/repository/postgres"
	"github.com/dgarciab/formspace/internal/repository/redis"
	"github.com/dgarciab/formspace/internal/security"
	"github.com/dgarciab/formspace/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client, events domain.EventPublisher) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Initialize repositories
	workspaceRepo := postgres.NewWorkspaceRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	formRepo := postgres.NewFormRepository(db)

	// Initialize rate limiter
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)

	// Initialize services
	workspaceService := service.NewWorkspaceService(workspaceRepo, events, db)
	memberService := service.NewMemberService(workspaceRepo, memberRepo, events, db)
	formService := service.NewFormService(formRepo, workspaceRepo, events, db)

	// Initialize handlers
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	memberHandler := handler.NewMemberHandler(memberService)
	formHandler := handler.NewFormHandler(formService)

	// Auth middleware
	authMiddleware := customMiddleware.NewAuthMiddleware(jwtManager)
	rateLimitMiddleware := customMiddleware.NewRateLimitMiddleware(rateLimiter)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(rateLimitMiddleware.Limit)

			r.Route("/workspaces", func(r chi.Router) {
				r.Get("/", workspaceHandler.List)
				r.Post("/", workspaceHandler.Create)

				r.Route("/{workspaceID}", func(r chi.Router) {
					r.Get("/", workspaceHandler.Get)
					r.Put("/", workspaceHandler.Update)
					r.Post("/archive", workspaceHandler.Archive)
					r.Delete("/", workspaceHandler.Delete)

					// Membership routes
					r.Route("/members", func(r chi.Router) {
						r.Get("/", memberHandler.List)
						r.Post("/", memberHandler.Add)
						r.Get("/count", memberHandler.Count)

						r.Route("/{userID}", func(r chi.Router) {
							r.Put("/role", memberHandler.UpdateRole)
							r.Delete("/", memberHandler.Remove)
						})
					})

					// Form routes scoped to the workspace
					r.Route("/forms", func(r chi.Router) {
						r.Get("/", formHandler.List)
						r.Post("/", formHandler.Create)
					})
				})
			})

			r.Route("/forms/{formID}", func(r chi.Router) {
				r.Get("/", formHandler.Get)
				r.Put("/", formHandler.Update)
				r.Post("/publish", formHandler.Publish)
				r.Post("/archive", formHandler.Archive)

				r.Route("/sections", func(r chi.Router) {
					r.Post("/", formHandler.AddSection)
					r.Post("/{sectionID}/questions", formHandler.AddQuestion)
				})

				r.Post("/questions/{questionID}/options", formHandler.AddOption)
			})
		})
	})

	return r
}
