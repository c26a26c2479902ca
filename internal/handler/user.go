package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// UserHandler handles user HTTP requests
type UserHandler struct {
	users *directory.UserDirectory
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *directory.UserDirectory) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /v1/users - create a blank user
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	user, err := h.users.Create(r.Context(), req.ID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, user)
}

// Get handles GET /v1/users/{userId} - get user details
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, user)
}

// Update handles PATCH /v1/users/{userId} - update profile fields
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	var req model.UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if req.DisplayName != nil {
		if err := h.users.SetDisplayName(ctx, userID, *req.DisplayName); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Email != nil {
		if err := h.users.SetEmail(ctx, userID, *req.Email); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.AvatarURL != nil {
		if err := h.users.SetAvatarURL(ctx, userID, *req.AvatarURL); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Admin != nil {
		if err := h.users.SetAdmin(ctx, userID, *req.Admin); err != nil {
			h.handleError(w, err)
			return
		}
	}

	user, err := h.users.Get(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, user)
}

// SetCurrentSession handles PUT /v1/users/{userId}/current-session - point
// the user at a joined session, or clear the pointer with an empty sessionId
func (h *UserHandler) SetCurrentSession(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	var req model.SetCurrentSessionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.users.SetCurrentSession(r.Context(), userID, req.SessionID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// Delete handles DELETE /v1/users/{userId} - delete a user with no memberships
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	if err := h.users.Delete(r.Context(), userID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// Join handles POST /v1/users/{userId}/sessions/{sessionId}/join
func (h *UserHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	if userID == "" || sessionID == "" {
		WriteError(w, model.NewBadRequestError("user ID and session ID required"))
		return
	}

	if err := h.users.JoinSession(r.Context(), userID, sessionID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// Leave handles POST /v1/users/{userId}/sessions/{sessionId}/leave
func (h *UserHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	if userID == "" || sessionID == "" {
		WriteError(w, model.NewBadRequestError("user ID and session ID required"))
		return
	}

	if err := h.users.LeaveSession(r.Context(), userID, sessionID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// AssignTeam handles PUT /v1/users/{userId}/sessions/{sessionId}/team
func (h *UserHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	if userID == "" || sessionID == "" {
		WriteError(w, model.NewBadRequestError("user ID and session ID required"))
		return
	}

	var req model.AssignTeamRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.TeamID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "teamId", Message: "team ID is required"},
		}))
		return
	}

	if err := h.users.AssignTeam(r.Context(), userID, sessionID, req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// UnassignTeam handles DELETE /v1/users/{userId}/sessions/{sessionId}/team
func (h *UserHandler) UnassignTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	if userID == "" || sessionID == "" {
		WriteError(w, model.NewBadRequestError("user ID and session ID required"))
		return
	}

	if err := h.users.UnassignTeam(r.Context(), userID, sessionID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// SetPoints handles PUT /v1/users/{userId}/sessions/{sessionId}/points
func (h *UserHandler) SetPoints(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	if userID == "" || sessionID == "" {
		WriteError(w, model.NewBadRequestError("user ID and session ID required"))
		return
	}

	var req model.SetPointsRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.users.SetPoints(r.Context(), userID, sessionID, req.Points); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// RecordFound handles POST /v1/users/{userId}/sessions/{sessionId}/found
func (h *UserHandler) RecordFound(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	if userID == "" || sessionID == "" {
		WriteError(w, model.NewBadRequestError("user ID and session ID required"))
		return
	}

	var req model.RecordFoundRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.ArtifactID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "artifactId", Message: "artifact ID is required"},
		}))
		return
	}

	if err := h.users.RecordFound(r.Context(), userID, sessionID, req.ArtifactID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// UnrecordFound handles DELETE /v1/users/{userId}/sessions/{sessionId}/found/{artifactId}
func (h *UserHandler) UnrecordFound(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	sessionID := r.PathValue("sessionId")
	artifactID := r.PathValue("artifactId")
	if userID == "" || sessionID == "" || artifactID == "" {
		WriteError(w, model.NewBadRequestError("user ID, session ID, and artifact ID required"))
		return
	}

	if err := h.users.UnrecordFound(r.Context(), userID, sessionID, artifactID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// handleError converts directory errors to HTTP responses
func (h *UserHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directory.ErrUserNotFound):
		WriteError(w, model.NewNotFoundError("user"))
	case errors.Is(err, directory.ErrSessionNotFound):
		WriteError(w, model.NewNotFoundError("session"))
	case errors.Is(err, directory.ErrTeamNotFound):
		WriteError(w, model.NewNotFoundError("team"))
	case errors.Is(err, directory.ErrUserExists):
		WriteError(w, model.NewAlreadyExistsError("user"))
	case errors.Is(err, directory.ErrAlreadyMember):
		WriteError(w, model.NewConflictError("user already joined this session"))
	case errors.Is(err, directory.ErrNotMember):
		WriteError(w, model.NewConflictError("user has not joined this session"))
	case errors.Is(err, directory.ErrStillOnTeam):
		WriteError(w, model.NewConflictError("user must leave their team first"))
	case errors.Is(err, directory.ErrNoTeam):
		WriteError(w, model.NewConflictError("user has no team in this session"))
	case errors.Is(err, directory.ErrTeamNotInSession):
		WriteError(w, model.NewConflictError("team does not belong to this session"))
	case errors.Is(err, directory.ErrCurrentSessionNotJoined):
		WriteError(w, model.NewConflictError("current session must be a joined session"))
	case errors.Is(err, directory.ErrUserHasSessions):
		WriteError(w, model.NewConflictError("user still has joined sessions"))
	case errors.Is(err, directory.ErrArtifactNotOffered):
		WriteError(w, model.NewConflictError("artifact is not offered by this session"))
	case errors.Is(err, directory.ErrAlreadyRecorded):
		WriteError(w, model.NewConflictError("artifact already recorded as found"))
	case errors.Is(err, directory.ErrNotRecorded):
		WriteError(w, model.NewConflictError("artifact not recorded as found"))
	case errors.Is(err, store.ErrConnection), errors.Is(err, store.ErrQuery):
		WriteError(w, model.NewDatabaseError(""))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
