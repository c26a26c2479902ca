package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// UserRepository handles user data access over the path-addressed store.
// Every method issues exactly one store call; ordering across calls is the
// caller's responsibility.
type UserRepository struct {
	store store.Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Exists reports whether the user record is present
func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	return r.store.Exists(ctx, userPath(userID))
}

// Get retrieves a user by ID, or nil if absent
func (r *UserRepository) Get(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := r.store.Read(ctx, userPath(userID), &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create writes a user record, stamping both timestamps
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedOn = now
	user.UpdatedOn = now
	return r.store.Write(ctx, userPath(user.ID), user)
}

// Delete removes the entire user subtree
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, userPath(userID))
}

// Touch updates the user's updatedOn timestamp
func (r *UserRepository) Touch(ctx context.Context, userID string) error {
	return r.store.Write(ctx, userPath(userID, "updatedOn"), time.Now().UTC())
}

// SetDisplayName writes the displayName field
func (r *UserRepository) SetDisplayName(ctx context.Context, userID, displayName string) error {
	return r.store.Write(ctx, userPath(userID, "displayName"), displayName)
}

// SetEmail writes the email field
func (r *UserRepository) SetEmail(ctx context.Context, userID, email string) error {
	return r.store.Write(ctx, userPath(userID, "email"), email)
}

// SetAvatarURL writes the avatarUrl field
func (r *UserRepository) SetAvatarURL(ctx context.Context, userID, avatarURL string) error {
	return r.store.Write(ctx, userPath(userID, "avatarUrl"), avatarURL)
}

// SetAdmin writes the admin flag
func (r *UserRepository) SetAdmin(ctx context.Context, userID string, admin bool) error {
	return r.store.Write(ctx, userPath(userID, "admin"), admin)
}

// SetCurrentSession points the user at one of their joined sessions
func (r *UserRepository) SetCurrentSession(ctx context.Context, userID, sessionID string) error {
	return r.store.Write(ctx, userPath(userID, "currentSession"), sessionID)
}

// ClearCurrentSession removes the current-session pointer
func (r *UserRepository) ClearCurrentSession(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, userPath(userID, "currentSession"))
}

// AddMembership writes a fresh membership record for the session: zero
// points, no team, nothing found.
func (r *UserRepository) AddMembership(ctx context.Context, userID, sessionID string) error {
	entry := model.SessionEntry{Points: 0}
	return r.store.Write(ctx, userPath(userID, "sessionsJoined", sessionID), entry)
}

// RemoveMembership deletes the membership record for the session
func (r *UserRepository) RemoveMembership(ctx context.Context, userID, sessionID string) error {
	return r.store.Delete(ctx, userPath(userID, "sessionsJoined", sessionID))
}

// SetTeam writes the user-side team pointer for the session
func (r *UserRepository) SetTeam(ctx context.Context, userID, sessionID, teamID string) error {
	return r.store.Write(ctx, userPath(userID, "sessionsJoined", sessionID, "teamId"), teamID)
}

// ClearTeam removes the user-side team pointer for the session
func (r *UserRepository) ClearTeam(ctx context.Context, userID, sessionID string) error {
	return r.store.Delete(ctx, userPath(userID, "sessionsJoined", sessionID, "teamId"))
}

// SetPoints overwrites the user's score for the session
func (r *UserRepository) SetPoints(ctx context.Context, userID, sessionID string, points int) error {
	return r.store.Write(ctx, userPath(userID, "sessionsJoined", sessionID, "points"), points)
}

// RecordFound marks the artifact found by the user in the session
func (r *UserRepository) RecordFound(ctx context.Context, userID, sessionID, artifactID string) error {
	return r.store.Write(ctx, userPath(userID, "sessionsJoined", sessionID, "foundArtifacts", artifactID), true)
}

// RemoveFound deletes the user's found record for the artifact
func (r *UserRepository) RemoveFound(ctx context.Context, userID, sessionID, artifactID string) error {
	return r.store.Delete(ctx, userPath(userID, "sessionsJoined", sessionID, "foundArtifacts", artifactID))
}

// HasFound reports whether the user has recorded the artifact in the session
func (r *UserRepository) HasFound(ctx context.Context, userID, sessionID, artifactID string) (bool, error) {
	return r.store.Exists(ctx, userPath(userID, "sessionsJoined", sessionID, "foundArtifacts", artifactID))
}
