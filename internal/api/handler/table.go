package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bangtable/bangtable/internal/api/middleware"
	"github.com/bangtable/bangtable/internal/api/request"
	"github.com/bangtable/bangtable/internal/api/response"
	"github.com/bangtable/bangtable/internal/model"
	"github.com/bangtable/bangtable/internal/services/session"
	"github.com/bangtable/bangtable/internal/services/table"
)

// TableHandler handles in-game table actions
type TableHandler struct {
	tableController   *table.Controller
	sessionController *session.Controller
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableController *table.Controller, sessionController *session.Controller) *TableHandler {
	return &TableHandler{
		tableController:   tableController,
		sessionController: sessionController,
	}
}

// MoveCard handles POST /api/v1/games/{id}/move
func (h *TableHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.MoveCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.CardID == "" {
		WriteError(w, NewInvalidRequestError("card_id is required"))
		return
	}

	sourceZone, err := model.ParseZone(req.SourceZone)
	if err != nil {
		WriteError(w, err)
		return
	}
	targetZone, err := model.ParseZone(req.TargetZone)
	if err != nil {
		WriteError(w, err)
		return
	}

	source := model.ZoneRef{Zone: sourceZone, Owner: req.SourceOwner}
	target := model.ZoneRef{Zone: targetZone, Owner: req.TargetOwner}

	if err := h.tableController.MoveCard(r.Context(), id, *user, model.CardID(req.CardID), source, target, req.TargetIndex); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id)
}

// AdjustLife handles POST /api/v1/games/{id}/life
func (h *TableHandler) AdjustLife(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AdjustLifeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// A zero delta is a legal no-op; it still lands in the audit log
	if err := h.tableController.AdjustLife(r.Context(), id, *user, req.Delta); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id)
}

// Reveal handles POST /api/v1/games/{id}/reveal
func (h *TableHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	id, err := gameIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.tableController.Reveal(r.Context(), id, *user); err != nil {
		WriteError(w, err)
		return
	}

	h.writeGame(w, r, id)
}

func (h *TableHandler) writeGame(w http.ResponseWriter, r *http.Request, id model.GameID) {
	game, err := h.sessionController.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.GameFromModel(game))
}
