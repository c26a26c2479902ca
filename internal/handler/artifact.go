package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// ArtifactHandler handles artifact HTTP requests
type ArtifactHandler struct {
	artifacts *directory.ArtifactDirectory
}

// NewArtifactHandler creates a new artifact handler
func NewArtifactHandler(artifacts *directory.ArtifactDirectory) *ArtifactHandler {
	return &ArtifactHandler{artifacts: artifacts}
}

// Create handles POST /v1/artifacts - create a blank artifact
func (h *ArtifactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateArtifactRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	artifact, err := h.artifacts.Create(r.Context(), req.ID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, artifact)
}

// Get handles GET /v1/artifacts/{artifactId} - get artifact details
func (h *ArtifactHandler) Get(w http.ResponseWriter, r *http.Request) {
	artifactID := r.PathValue("artifactId")
	if artifactID == "" {
		WriteError(w, model.NewBadRequestError("artifact ID required"))
		return
	}

	artifact, err := h.artifacts.Get(r.Context(), artifactID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, artifact)
}

// Update handles PATCH /v1/artifacts/{artifactId} - update artifact fields.
// Latitude and longitude are accepted only as a pair.
func (h *ArtifactHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	artifactID := r.PathValue("artifactId")
	if artifactID == "" {
		WriteError(w, model.NewBadRequestError("artifact ID required"))
		return
	}

	var req model.UpdateArtifactRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "latitude", Message: "latitude and longitude must be supplied together"},
		}))
		return
	}

	if req.Name != nil {
		if err := h.artifacts.SetName(ctx, artifactID, *req.Name); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Description != nil {
		if err := h.artifacts.SetDescription(ctx, artifactID, *req.Description); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Hint != nil {
		if err := h.artifacts.SetHint(ctx, artifactID, *req.Hint); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Latitude != nil {
		if err := h.artifacts.SetCoordinates(ctx, artifactID, *req.Latitude, *req.Longitude); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.MediaURL != nil {
		if err := h.artifacts.SetMediaURL(ctx, artifactID, *req.MediaURL); err != nil {
			h.handleError(w, err)
			return
		}
	}
	if req.Challenge != nil {
		if err := h.artifacts.SetChallenge(ctx, artifactID, *req.Challenge); err != nil {
			h.handleError(w, err)
			return
		}
	}

	artifact, err := h.artifacts.Get(ctx, artifactID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, artifact)
}

// Delete handles DELETE /v1/artifacts/{artifactId} - delete an artifact not
// offered by any session
func (h *ArtifactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	artifactID := r.PathValue("artifactId")
	if artifactID == "" {
		WriteError(w, model.NewBadRequestError("artifact ID required"))
		return
	}

	if err := h.artifacts.Delete(r.Context(), artifactID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// handleError converts directory errors to HTTP responses
func (h *ArtifactHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directory.ErrArtifactNotFound):
		WriteError(w, model.NewNotFoundError("artifact"))
	case errors.Is(err, directory.ErrArtifactExists):
		WriteError(w, model.NewAlreadyExistsError("artifact"))
	case errors.Is(err, directory.ErrArtifactInUse):
		WriteError(w, model.NewConflictError("artifact is still offered by a session"))
	case errors.Is(err, store.ErrConnection), errors.Is(err, store.ErrQuery):
		WriteError(w, model.NewDatabaseError(""))
	default:
		WriteError(w, model.NewInternalError(""))
	}
}
