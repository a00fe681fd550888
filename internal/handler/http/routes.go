package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)

	router.Get("/healthz", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/google", h.googleSignIn)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
		})
	})

	router.Route("/api/tests", func(r chi.Router) {
		r.Get("/", h.listPublicTests)

		r.With(h.optionalAuth).Get("/{testID}", h.getTest)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/mine", h.listMyTests)
			r.Post("/", h.createTest)
			r.Put("/{testID}", h.updateTest)
			r.Delete("/{testID}", h.deleteTest)
			r.Post("/{testID}/resubmit", h.resubmitTest)
			r.Get("/{testID}/runs", h.listRuns)
		})
	})

	router.Route("/api/runs", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.startRun)
		r.Post("/batch", h.runTests)
		r.Get("/{runID}", h.getRun)
		r.Get("/{runID}/wait", h.waitRun)
		r.Post("/{runID}/execute", h.executeRun)
	})

	router.Route("/api/collections", func(r chi.Router) {
		r.With(h.optionalAuth).Get("/{collectionID}", h.getCollection)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listMyCollections)
			r.Post("/", h.createCollection)
			r.Put("/{collectionID}", h.updateCollection)
			r.Delete("/{collectionID}", h.deleteCollection)
			r.Post("/{collectionID}/tests", h.addCollectionTest)
			r.Delete("/{collectionID}/tests/{testID}", h.removeCollectionTest)
			r.Post("/{collectionID}/slug", h.regenerateShareSlug)
		})
	})

	router.Get("/api/shared/{slug}", h.getSharedCollection)

	router.Route("/api/engine", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/usage", h.engineUsage)
		r.Post("/analyse", h.analyse)
	})

	router.Route("/api/admin", func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/tests", h.listTestsByStatus)
			r.Post("/tests", h.createAdminTest)
			r.Post("/tests/{testID}/{action}", h.moderateTest)
			r.Post("/maintenance/prune-memberships", h.pruneMemberships)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireSuperAdmin)
			r.Get("/users", h.listUsers)
			r.Patch("/users/{userID}", h.updateUserFlags)
			r.Get("/banned-accounts", h.listBannedAccounts)
			r.Post("/banned-accounts", h.banAccount)
			r.Delete("/banned-accounts/{googleID}", h.unbanAccount)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.corsAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader, "Retry-After"},
		MaxAge:         300,
	})
}
