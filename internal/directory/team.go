package directory

import (
	"context"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// TeamRepository defines the interface for team storage
type TeamRepository interface {
	Exists(ctx context.Context, teamID string) (bool, error)
	Get(ctx context.Context, teamID string) (*model.Team, error)
	Create(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, teamID string) error
	Touch(ctx context.Context, teamID string) error
	SetName(ctx context.Context, teamID, name string) error
	SetSession(ctx context.Context, teamID, sessionID string) error
	ClearSession(ctx context.Context, teamID string) error
	AddMember(ctx context.Context, teamID, userID string) error
	RemoveMember(ctx context.Context, teamID, userID string) error
}

// TeamDirectory owns team lifecycle and team membership. Session
// membership must precede team membership: a user joins the team's
// session first, then the team.
type TeamDirectory struct {
	teams    TeamRepository
	sessions SessionRepository
	users    UserRepository
}

// TeamDirectoryConfig holds configuration for the team directory
type TeamDirectoryConfig struct {
	Teams    TeamRepository
	Sessions SessionRepository
	Users    UserRepository
}

// NewTeamDirectory creates a new team directory
func NewTeamDirectory(cfg TeamDirectoryConfig) *TeamDirectory {
	return &TeamDirectory{
		teams:    cfg.Teams,
		sessions: cfg.Sessions,
		users:    cfg.Users,
	}
}

// Create writes a blank team: unattached, no members.
func (d *TeamDirectory) Create(ctx context.Context, teamID string) (*model.Team, error) {
	exists, err := d.teams.Exists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTeamExists
	}

	team := &model.Team{ID: teamID}
	if err := d.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Get retrieves a team
func (d *TeamDirectory) Get(ctx context.Context, teamID string) (*model.Team, error) {
	team, err := d.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// SetName updates the name and the updatedOn timestamp
func (d *TeamDirectory) SetName(ctx context.Context, teamID, name string) error {
	exists, err := d.teams.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTeamNotFound
	}
	if err := d.teams.SetName(ctx, teamID, name); err != nil {
		return err
	}
	return d.teams.Touch(ctx, teamID)
}

// AddMember puts a user on the team. The team must already be attached to
// a session and the user must already be a teamless participant of that
// session. Writes all three sides: the member set, the participant index,
// and the user's membership record.
func (d *TeamDirectory) AddMember(ctx context.Context, teamID, userID string) error {
	team, err := d.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	exists, err := d.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if team.SessionID == "" {
		return ErrTeamUnattached
	}

	session, err := d.sessions.Get(ctx, team.SessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if !session.HasParticipant(userID) {
		return ErrNotMember
	}
	// The participant index covers this team and every other team in the
	// session; moves go through the user directory's AssignTeam.
	if session.ParticipantTeam(userID) != model.NoTeam {
		return ErrAlreadyOnTeam
	}

	sessionID := team.SessionID
	return store.NewSequence().
		Add("add team member entry", func(ctx context.Context) error {
			return d.teams.AddMember(ctx, teamID, userID)
		}).
		Add("index participant team", func(ctx context.Context) error {
			return d.sessions.SetParticipant(ctx, sessionID, userID, teamID)
		}).
		Add("set user team pointer", func(ctx context.Context) error {
			return d.users.SetTeam(ctx, userID, sessionID, teamID)
		}).
		Execute(ctx)
}

// RemoveMember takes a user off the team, clearing all three sides and
// resetting the participant index to the sentinel.
func (d *TeamDirectory) RemoveMember(ctx context.Context, teamID, userID string) error {
	team, err := d.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}
	if !team.HasMember(userID) {
		return ErrNotOnTeam
	}
	// Members are only ever added to an attached team
	if team.SessionID == "" {
		return ErrTeamUnattached
	}

	sessionID := team.SessionID
	return store.NewSequence().
		Add("remove team member entry", func(ctx context.Context) error {
			return d.teams.RemoveMember(ctx, teamID, userID)
		}).
		Add("clear user team pointer", func(ctx context.Context) error {
			return d.users.ClearTeam(ctx, userID, sessionID)
		}).
		Add("reset participant index", func(ctx context.Context) error {
			return d.sessions.SetParticipant(ctx, sessionID, userID, model.NoTeam)
		}).
		Execute(ctx)
}

// Delete removes the team. Refused while attached to a session or while
// any member remains.
func (d *TeamDirectory) Delete(ctx context.Context, teamID string) error {
	team, err := d.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}
	if team.SessionID != "" {
		return ErrTeamAttached
	}
	if len(team.Members) > 0 {
		return ErrTeamHasMembers
	}

	return d.teams.Delete(ctx, teamID)
}
