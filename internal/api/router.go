package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bangtable/bangtable/internal/api/handler"
	apimw "github.com/bangtable/bangtable/internal/api/middleware"
	"github.com/bangtable/bangtable/internal/services/auth"
	"github.com/bangtable/bangtable/internal/services/lobby"
	"github.com/bangtable/bangtable/internal/services/match"
	"github.com/bangtable/bangtable/internal/services/session"
	"github.com/bangtable/bangtable/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SessionController *session.Controller
	LobbyController   *lobby.Controller
	MatchController   *match.Controller
	TableController   *table.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	userHandler := handler.NewUserHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.SessionController, cfg.LobbyController, cfg.MatchController)
	tableHandler := handler.NewTableHandler(cfg.TableController, cfg.SessionController)

	// Create middleware
	authMiddleware := apimw.Auth(cfg.AuthService)
	loggingMiddleware := apimw.Logging(cfg.Logger)
	recoveryMiddleware := apimw.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes (no auth required for signup/login)
	api.HandleFunc("/users/signup", userHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)

	// Protected account routes
	userProtected := api.PathPrefix("/users").Subrouter()
	userProtected.Use(authMiddleware)
	userProtected.HandleFunc("/logout", userHandler.Logout).Methods(http.MethodPost)
	userProtected.HandleFunc("/me", userHandler.GetMe).Methods(http.MethodGet)

	// Game routes (all require auth)
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/join", gameHandler.Join).Methods(http.MethodPost)
	games.HandleFunc("/{id}/authorize", gameHandler.Authorize).Methods(http.MethodPost)
	games.HandleFunc("/{id}/members/{name}", gameHandler.RemoveMember).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/start", gameHandler.Start).Methods(http.MethodPost)

	// Table actions on a started game
	games.HandleFunc("/{id}/move", tableHandler.MoveCard).Methods(http.MethodPost)
	games.HandleFunc("/{id}/life", tableHandler.AdjustLife).Methods(http.MethodPost)
	games.HandleFunc("/{id}/reveal", tableHandler.Reveal).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
