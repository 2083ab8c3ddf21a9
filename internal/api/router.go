// Package api wires the HTTP surface: routes, middleware, and handler
// construction.
package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/eventure/server/internal/api/handlers"
	"github.com/eventure/server/internal/api/middleware"
	"github.com/eventure/server/internal/auth"
	"github.com/eventure/server/internal/config"
	"github.com/eventure/server/internal/domain/events"
	"github.com/eventure/server/internal/domain/tasks"
	"github.com/eventure/server/internal/domain/users"
	"github.com/eventure/server/internal/metrics"
	"github.com/eventure/server/internal/storage/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewRouter assembles the full handler tree. The pool is owned by the
// caller and must outlive the returned handler.
func NewRouter(cfg config.Config, logger zerolog.Logger, pool *pgxpool.Pool) (http.Handler, error) {
	repo, err := postgres.NewRepository(pool)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL, cfg.Auth.Issuer)

	usersService := users.NewService(repo.Users(), tokens, logger)
	eventsService := events.NewService(repo.Events(), logger)
	tasksService := tasks.NewService(repo.Tasks(), repo.Events(), logger)

	authHandler := handlers.NewAuthHandler(usersService, cfg.Environment)
	eventsHandler := handlers.NewEventsHandler(eventsService, cfg.Environment)
	tasksHandler := handlers.NewTasksHandler(tasksService, cfg.Environment)

	requireAuth := middleware.BearerAuth(tokens, cfg.Environment)
	loginLimit := middleware.LoginRateLimit(cfg.RateLimit)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(pool))
	mux.Handle("/metrics", metrics.Handler())

	route := func(pattern string, methodHandlers map[string]http.Handler) {
		mux.Handle(pattern, middleware.Metrics(pattern)(methodMux(methodHandlers)))
	}

	route("/api/v1/auth/register", map[string]http.Handler{
		http.MethodPost: loginLimit(http.HandlerFunc(authHandler.Register)),
	})
	route("/api/v1/auth/login", map[string]http.Handler{
		http.MethodPost: loginLimit(http.HandlerFunc(authHandler.Login)),
	})
	route("/api/v1/auth/refresh", map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Refresh),
	})
	route("/api/v1/auth/me", map[string]http.Handler{
		http.MethodGet: requireAuth(http.HandlerFunc(authHandler.Me)),
	})

	// Reads are public; only mutations and actor-scoped listings carry
	// the bearer gate.
	route("/api/v1/events", map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: requireAuth(http.HandlerFunc(eventsHandler.Create)),
	})
	route("/api/v1/events/{id}", map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(eventsHandler.Get),
		http.MethodPut:    requireAuth(http.HandlerFunc(eventsHandler.Update)),
		http.MethodDelete: requireAuth(http.HandlerFunc(eventsHandler.Delete)),
	})

	route("/api/v1/tasks", map[string]http.Handler{
		http.MethodPost: requireAuth(http.HandlerFunc(tasksHandler.Create)),
	})
	route("/api/v1/tasks/my-tasks", map[string]http.Handler{
		http.MethodGet: requireAuth(http.HandlerFunc(tasksHandler.MyTasks)),
	})
	route("/api/v1/tasks/event/{event_id}", map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(tasksHandler.ListForEvent),
	})
	route("/api/v1/tasks/{id}", map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(tasksHandler.Get),
		http.MethodPut:    requireAuth(http.HandlerFunc(tasksHandler.Update)),
		http.MethodDelete: requireAuth(http.HandlerFunc(tasksHandler.Delete)),
	})

	var handler http.Handler = mux
	handler = middleware.RequestSize(middleware.DefaultMaxBodySize)(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler, nil
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
