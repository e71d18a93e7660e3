package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/handlers"
	"github.com/Ananya01-bliss/new-student-mentor/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	HealthHandler      *handlers.HealthHandler
	UsersHandler       *handlers.UsersHandler
	ProjectsHandler    *handlers.ProjectsHandler
	MilestonesHandler  *handlers.MilestonesHandler
	SuggestionsHandler *handlers.SuggestionsHandler
	MessagesHandler    *handlers.MessagesHandler
	EventsHandler      http.Handler
	RequireJWT         func(http.Handler) http.Handler // JWT auth for everything except /auth, /health, /metrics
	Log                zerolog.Logger
	Secure             func(http.Handler) http.Handler
	CORS               func(http.Handler) http.Handler
	IPRateLimit        func(http.Handler) http.Handler
	UserRateLimit      func(http.Handler) http.Handler
	Uploads            http.Handler // serves locally stored submission files; nil when using GCS
	UploadsPrefix      string
	APIVersion         string
	Metrics            bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.APIVersion != "" {
		r.Use(middleware.APIVersion(cfg.APIVersion))
	}
	r.Use(chimid.AllowContentType("application/json", "multipart/form-data"))
	r.Use(chimid.SetHeader("Content-Type", "application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if cfg.Uploads != nil && cfg.UploadsPrefix != "" {
		prefix := strings.TrimRight(cfg.UploadsPrefix, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", rawContentType(cfg.Uploads)))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(cfg.RequireJWT)
		if cfg.UserRateLimit != nil {
			r.Use(cfg.UserRateLimit)
		}

		r.Get("/users/me", cfg.UsersHandler.Me)
		r.Get("/mentors", cfg.UsersHandler.Mentors)
		r.Get("/mentors/{id}", cfg.UsersHandler.Mentor)

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", cfg.ProjectsHandler.Create)
			r.Get("/", cfg.ProjectsHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.ProjectsHandler.Get)
				r.Patch("/", cfg.ProjectsHandler.Update)
				r.Delete("/", cfg.ProjectsHandler.Delete)
				r.Post("/request", cfg.ProjectsHandler.RequestMentor)
				r.Post("/respond", cfg.ProjectsHandler.Respond)
				r.Post("/complete", cfg.ProjectsHandler.Complete)
				r.Get("/suggested-mentors", cfg.ProjectsHandler.SuggestedMentors)
				r.Post("/milestones", cfg.MilestonesHandler.Add)
				r.Route("/milestones/{mid}", func(r chi.Router) {
					r.Post("/submission", cfg.MilestonesHandler.Submit)
					r.Delete("/submission", cfg.MilestonesHandler.Cancel)
					r.Post("/submission/file", cfg.MilestonesHandler.SubmitFile)
					r.Post("/evaluation", cfg.MilestonesHandler.Evaluate)
				})
			})
		})

		r.Route("/mentor", func(r chi.Router) {
			r.Get("/requests", cfg.ProjectsHandler.MentorRequests)
			r.Get("/mentees", cfg.ProjectsHandler.MentorMentees)
			r.Get("/stats", cfg.ProjectsHandler.MentorStats)
		})

		r.Get("/suggestions", cfg.SuggestionsHandler.Query)
		r.Post("/suggestions", cfg.SuggestionsHandler.Body)

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", cfg.MessagesHandler.Send)
			r.Get("/conversations", cfg.MessagesHandler.Conversations)
			r.Get("/{userID}", cfg.MessagesHandler.Thread)
			r.Post("/{userID}/read", cfg.MessagesHandler.MarkRead)
		})

		if cfg.EventsHandler != nil {
			r.Get("/events", cfg.EventsHandler.ServeHTTP)
		}
	})

	return r
}

// rawContentType clears the JSON default so file responses carry their own type.
func rawContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Del("Content-Type")
		next.ServeHTTP(w, r)
	})
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info().
				Str("request_id", chimid.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
