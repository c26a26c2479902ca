package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// SessionHandler handles session HTTP requests
type SessionHandler struct {
	sessions *directory.SessionDirectory
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *directory.SessionDirectory) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /v1/sessions - create a blank session
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSessionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Creator == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "creator", Message: "creator is required"},
		}))
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	session, err := h.sessions.Create(r.Context(), req.ID, req.Creator)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, session)
}

// Get handles GET /v1/sessions/{sessionId} - get session details
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	session, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, session)
}

// Update handles PATCH /v1/sessions/{sessionId} - update session fields.
// Start and end times are accepted only as a pair.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	var req model.UpdateSessionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if (req.StartTime == nil) != (req.EndTime == nil) {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "startTime", Message: "startTime and endTime must be supplied together"},
		}))
		return
	}

	if req.Name != nil {
		if err := h.sessions.SetName(ctx, sessionID, *req.Name); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Active != nil {
		if err := h.sessions.SetActive(ctx, sessionID, *req.Active); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.StartTime != nil {
		if err := h.sessions.SetTimes(ctx, sessionID, *req.StartTime, *req.EndTime); err != nil {
			h.handleError(w, err)
			return
		}
	}

	session, err := h.sessions.Get(ctx, sessionID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, session)
}

// Delete handles DELETE /v1/sessions/{sessionId} - delete a session with no
// participants or teams
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// AddTeam handles POST /v1/sessions/{sessionId}/teams/{teamId}
func (h *SessionHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	teamID := r.PathValue("teamId")
	if sessionID == "" || teamID == "" {
		WriteError(w, model.NewBadRequestError("session ID and team ID required"))
		return
	}

	if err := h.sessions.AddTeam(r.Context(), sessionID, teamID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// RemoveTeam handles DELETE /v1/sessions/{sessionId}/teams/{teamId}
func (h *SessionHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	teamID := r.PathValue("teamId")
	if sessionID == "" || teamID == "" {
		WriteError(w, model.NewBadRequestError("session ID and team ID required"))
		return
	}

	if err := h.sessions.RemoveTeam(r.Context(), sessionID, teamID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// AddArtifact handles POST /v1/sessions/{sessionId}/artifacts/{artifactId}
func (h *SessionHandler) AddArtifact(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	artifactID := r.PathValue("artifactId")
	if sessionID == "" || artifactID == "" {
		WriteError(w, model.NewBadRequestError("session ID and artifact ID required"))
		return
	}

	if err := h.sessions.AddArtifact(r.Context(), sessionID, artifactID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// RemoveArtifact handles DELETE /v1/sessions/{sessionId}/artifacts/{artifactId}
func (h *SessionHandler) RemoveArtifact(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")
	artifactID := r.PathValue("artifactId")
	if sessionID == "" || artifactID == "" {
		WriteError(w, model.NewBadRequestError("session ID and artifact ID required"))
		return
	}

	if err := h.sessions.RemoveArtifact(r.Context(), sessionID, artifactID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// handleError converts directory errors to HTTP responses
func (h *SessionHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directory.ErrSessionNotFound):
		WriteError(w, model.NewNotFoundError("session"))
	case errors.Is(err, directory.ErrTeamNotFound):
		WriteError(w, model.NewNotFoundError("team"))
	case errors.Is(err, directory.ErrArtifactNotFound):
		WriteError(w, model.NewNotFoundError("artifact"))
	case errors.Is(err, directory.ErrSessionExists):
		WriteError(w, model.NewAlreadyExistsError("session"))
	case errors.Is(err, directory.ErrInvalidTimeRange):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "endTime", Message: "end time must be after start time"},
		}))
	case errors.Is(err, directory.ErrTeamAttached):
		WriteError(w, model.NewConflictError("team already belongs to a session"))
	case errors.Is(err, directory.ErrTeamHasMembers):
		WriteError(w, model.NewConflictError("team still has members"))
	case errors.Is(err, directory.ErrTeamNotInSession):
		WriteError(w, model.NewConflictError("team does not belong to this session"))
	case errors.Is(err, directory.ErrArtifactOffered):
		WriteError(w, model.NewConflictError("artifact already offered by this session"))
	case errors.Is(err, directory.ErrArtifactNotOffered):
		WriteError(w, model.NewConflictError("artifact is not offered by this session"))
	case errors.Is(err, directory.ErrArtifactFoundByUsers):
		WriteError(w, model.NewConflictError("artifact has been found by participants"))
	case errors.Is(err, directory.ErrSessionHasParticipants):
		WriteError(w, model.NewConflictError("session still has participants"))
	case errors.Is(err, directory.ErrSessionHasTeams):
		WriteError(w, model.NewConflictError("session still has teams"))
	case errors.Is(err, store.ErrConnection), errors.Is(err, store.ErrQuery):
		WriteError(w, model.NewDatabaseError(""))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
