package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/waritphon/devconnect-api/internal/auth"
)

// NewRouter assembles the HTTP routes. Protected routes run RequireAuth
// before any handler logic; profile reads and the GitHub proxy are public.
func NewRouter(
	tokens *auth.TokenService,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	postHandler *PostHandler,
	logger *zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	requireAuth := RequireAuth(tokens, logger)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", authHandler.Register)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/", authHandler.Login)
		r.With(requireAuth).Get("/", authHandler.Me)
	})

	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/", profileHandler.List)
		r.Get("/user/{userID}", profileHandler.GetByUserID)
		r.Get("/github/{username}", profileHandler.GithubRepos)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", profileHandler.Me)
			r.Post("/", profileHandler.Upsert)
			r.Delete("/", profileHandler.DeleteAccount)
			r.Patch("/experience", profileHandler.AddExperience)
			r.Delete("/experience/{experienceID}", profileHandler.RemoveExperience)
		})
	})

	r.Route("/api/post", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", postHandler.List)
		r.Post("/", postHandler.Create)
		r.Get("/{postID}", postHandler.GetByID)
		r.Delete("/{postID}", postHandler.Delete)
		r.Put("/like/{postID}", postHandler.Like)
		r.Put("/unlike/{postID}", postHandler.Unlike)
		r.Post("/comment/{postID}", postHandler.AddComment)
		r.Delete("/comment/{postID}/{commentID}", postHandler.RemoveComment)
	})

	return r
}
