package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bangtable/bangtable/internal/api/middleware"
	"github.com/bangtable/bangtable/internal/api/request"
	"github.com/bangtable/bangtable/internal/api/response"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/services/lobby"
	"github.com/bangtable/bangtable/internal/services/match"
	"github.com/bangtable/bangtable/internal/services/session"
)

// GameHandler handles game lifecycle and lobby membership endpoints
type GameHandler struct {
	sessionController *session.Controller
	lobbyController   *lobby.Controller
	matchController   *match.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(sessionController *session.Controller, lobbyController *lobby.Controller, matchController *match.Controller) *GameHandler {
	return &GameHandler{
		sessionController: sessionController,
		lobbyController:   lobbyController,
		matchController:   matchController,
	}
}

// gameIDFromPath parses the {id} path variable
func gameIDFromPath(r *http.Request) (model.GameID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("invalid game id")
	}
	return model.GameID(id), nil
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	game, err := h.sessionController.Create(r.Context(), *user)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.GameFromModel(game))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.GameFromModel(game))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.sessionController.Delete(r.Context(), id, *user); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	ids, err := h.sessionController.ListForUser(r.Context(), *user)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.GameListFromIDs(ids))
}

// Join handles POST /api/v1/games/{id}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.lobbyController.RequestJoin(r.Context(), id, *user); err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.GameFromModel(game))
}

// Authorize handles POST /api/v1/games/{id}/authorize
func (h *GameHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AuthorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.UserID == 0 {
		WriteError(w, NewInvalidRequestError("user_id is required"))
		return
	}

	if err := h.lobbyController.Authorize(r.Context(), id, *user, model.UserID(req.UserID)); err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.GameFromModel(game))
}

// RemoveMember handles DELETE /api/v1/games/{id}/members/{name}
func (h *GameHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	name := mux.Vars(r)["name"]

	if err := h.lobbyController.RemoveMember(r.Context(), id, *user, name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Start handles POST /api/v1/games/{id}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.matchController.Start(r.Context(), id, *user); err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.GameFromModel(game))
}
