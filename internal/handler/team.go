package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// TeamHandler handles team HTTP requests
type TeamHandler struct {
	teams *directory.TeamDirectory
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams *directory.TeamDirectory) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// Create handles POST /v1/teams - create a blank team
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	team, err := h.teams.Create(r.Context(), req.ID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, team)
}

// Get handles GET /v1/teams/{teamId} - get team details
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")
	if teamID == "" {
		WriteError(w, model.NewBadRequestError("team ID required"))
		return
	}

	team, err := h.teams.Get(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, team)
}

// Update handles PATCH /v1/teams/{teamId} - update team fields
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID := r.PathValue("teamId")
	if teamID == "" {
		WriteError(w, model.NewBadRequestError("team ID required"))
		return
	}

	var req model.UpdateTeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if req.Name != nil {
		if err := h.teams.SetName(ctx, teamID, *req.Name); err != nil {
			h.handleError(w, err)
			return
		}
	}

	team, err := h.teams.Get(ctx, teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, team)
}

// Delete handles DELETE /v1/teams/{teamId} - delete an unattached, empty team
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")
	if teamID == "" {
		WriteError(w, model.NewBadRequestError("team ID required"))
		return
	}

	if err := h.teams.Delete(r.Context(), teamID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// AddMember handles POST /v1/teams/{teamId}/members/{userId}
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")
	userID := r.PathValue("userId")
	if teamID == "" || userID == "" {
		WriteError(w, model.NewBadRequestError("team ID and user ID required"))
		return
	}

	if err := h.teams.AddMember(r.Context(), teamID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// RemoveMember handles DELETE /v1/teams/{teamId}/members/{userId}
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("teamId")
	userID := r.PathValue("userId")
	if teamID == "" || userID == "" {
		WriteError(w, model.NewBadRequestError("team ID and user ID required"))
		return
	}

	if err := h.teams.RemoveMember(r.Context(), teamID, userID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// handleError converts directory errors to HTTP responses
func (h *TeamHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directory.ErrTeamNotFound):
		WriteError(w, model.NewNotFoundError("team"))
	case errors.Is(err, directory.ErrUserNotFound):
		WriteError(w, model.NewNotFoundError("user"))
	case errors.Is(err, directory.ErrSessionNotFound):
		WriteError(w, model.NewNotFoundError("session"))
	case errors.Is(err, directory.ErrTeamExists):
		WriteError(w, model.NewAlreadyExistsError("team"))
	case errors.Is(err, directory.ErrTeamAttached):
		WriteError(w, model.NewConflictError("team already belongs to a session"))
	case errors.Is(err, directory.ErrTeamUnattached):
		WriteError(w, model.NewConflictError("team is not in a session"))
	case errors.Is(err, directory.ErrTeamHasMembers):
		WriteError(w, model.NewConflictError("team still has members"))
	case errors.Is(err, directory.ErrNotMember):
		WriteError(w, model.NewConflictError("user has not joined this session"))
	case errors.Is(err, directory.ErrAlreadyOnTeam):
		WriteError(w, model.NewConflictError("user is already on a team"))
	case errors.Is(err, directory.ErrNotOnTeam):
		WriteError(w, model.NewConflictError("user is not on this team"))
	case errors.Is(err, store.ErrConnection), errors.Is(err, store.ErrQuery):
		WriteError(w, model.NewDatabaseError(""))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
