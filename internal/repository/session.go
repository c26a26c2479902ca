package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// SessionRepository handles session data access over the path-addressed
// store. Every method issues exactly one store call.
type SessionRepository struct {
	store store.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(s store.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Exists reports whether the session record is present
func (r *SessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	return r.store.Exists(ctx, sessionPath(sessionID))
}

// Get retrieves a session by ID, or nil if absent
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	var session model.Session
	if err := r.store.Read(ctx, sessionPath(sessionID), &session); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// All retrieves every session keyed by id; an empty store yields an empty map
func (r *SessionRepository) All(ctx context.Context) (map[string]model.Session, error) {
	sessions := make(map[string]model.Session)
	if err := r.store.Read(ctx, store.NewPath(sessionsRoot), &sessions); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return map[string]model.Session{}, nil
		}
		return nil, err
	}
	return sessions, nil
}

// Create writes a session record, stamping both timestamps
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	now := time.Now().UTC()
	session.CreatedOn = now
	session.UpdatedOn = now
	return r.store.Write(ctx, sessionPath(session.ID), session)
}

// Delete removes the entire session subtree
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, sessionPath(sessionID))
}

// Touch updates the session's updatedOn timestamp
func (r *SessionRepository) Touch(ctx context.Context, sessionID string) error {
	return r.store.Write(ctx, sessionPath(sessionID, "updatedOn"), time.Now().UTC())
}

// SetName writes the name field
func (r *SessionRepository) SetName(ctx context.Context, sessionID, name string) error {
	return r.store.Write(ctx, sessionPath(sessionID, "name"), name)
}

// SetActive writes the active flag
func (r *SessionRepository) SetActive(ctx context.Context, sessionID string, active bool) error {
	return r.store.Write(ctx, sessionPath(sessionID, "active"), active)
}

// SetStartTime writes the startTime field
func (r *SessionRepository) SetStartTime(ctx context.Context, sessionID string, start time.Time) error {
	return r.store.Write(ctx, sessionPath(sessionID, "startTime"), start)
}

// SetEndTime writes the endTime field
func (r *SessionRepository) SetEndTime(ctx context.Context, sessionID string, end time.Time) error {
	return r.store.Write(ctx, sessionPath(sessionID, "endTime"), end)
}

// AddTeam records the team in the session's team set
func (r *SessionRepository) AddTeam(ctx context.Context, sessionID, teamID string) error {
	return r.store.Write(ctx, sessionPath(sessionID, "teams", teamID), true)
}

// RemoveTeam deletes the team from the session's team set
func (r *SessionRepository) RemoveTeam(ctx context.Context, sessionID, teamID string) error {
	return r.store.Delete(ctx, sessionPath(sessionID, "teams", teamID))
}

// SetParticipant writes the participant-index entry for the user. Pass
// model.NoTeam for a participant without a team.
func (r *SessionRepository) SetParticipant(ctx context.Context, sessionID, userID, teamID string) error {
	return r.store.Write(ctx, sessionPath(sessionID, "participants", userID), teamID)
}

// RemoveParticipant deletes the participant-index entry for the user
func (r *SessionRepository) RemoveParticipant(ctx context.Context, sessionID, userID string) error {
	return r.store.Delete(ctx, sessionPath(sessionID, "participants", userID))
}

// AddArtifact records the artifact in the session's offered set
func (r *SessionRepository) AddArtifact(ctx context.Context, sessionID, artifactID string) error {
	return r.store.Write(ctx, sessionPath(sessionID, "artifacts", artifactID), true)
}

// RemoveArtifact deletes the artifact from the session's offered set
func (r *SessionRepository) RemoveArtifact(ctx context.Context, sessionID, artifactID string) error {
	return r.store.Delete(ctx, sessionPath(sessionID, "artifacts", artifactID))
}

// OffersArtifact reports whether the session offers the artifact
func (r *SessionRepository) OffersArtifact(ctx context.Context, sessionID, artifactID string) (bool, error) {
	return r.store.Exists(ctx, sessionPath(sessionID, "artifacts", artifactID))
}
