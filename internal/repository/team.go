package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// TeamRepository handles team data access over the path-addressed store.
// Every method issues exactly one store call.
type TeamRepository struct {
	store store.Store
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(s store.Store) *TeamRepository {
	return &TeamRepository{store: s}
}

// Exists reports whether the team record is present
func (r *TeamRepository) Exists(ctx context.Context, teamID string) (bool, error) {
	return r.store.Exists(ctx, teamPath(teamID))
}

// Get retrieves a team by ID, or nil if absent
func (r *TeamRepository) Get(ctx context.Context, teamID string) (*model.Team, error) {
	var team model.Team
	if err := r.store.Read(ctx, teamPath(teamID), &team); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// Create writes a team record, stamping both timestamps
func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	now := time.Now().UTC()
	team.CreatedOn = now
	team.UpdatedOn = now
	return r.store.Write(ctx, teamPath(team.ID), team)
}

// Delete removes the entire team subtree
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	return r.store.Delete(ctx, teamPath(teamID))
}

// Touch updates the team's updatedOn timestamp
func (r *TeamRepository) Touch(ctx context.Context, teamID string) error {
	return r.store.Write(ctx, teamPath(teamID, "updatedOn"), time.Now().UTC())
}

// SetName writes the name field
func (r *TeamRepository) SetName(ctx context.Context, teamID, name string) error {
	return r.store.Write(ctx, teamPath(teamID, "name"), name)
}

// SetSession writes the team's session pointer
func (r *TeamRepository) SetSession(ctx context.Context, teamID, sessionID string) error {
	return r.store.Write(ctx, teamPath(teamID, "sessionId"), sessionID)
}

// ClearSession removes the team's session pointer
func (r *TeamRepository) ClearSession(ctx context.Context, teamID string) error {
	return r.store.Delete(ctx, teamPath(teamID, "sessionId"))
}

// AddMember records the user in the team's member set
func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	return r.store.Write(ctx, teamPath(teamID, "members", userID), true)
}

// RemoveMember deletes the user from the team's member set
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	return r.store.Delete(ctx, teamPath(teamID, "members", userID))
}
