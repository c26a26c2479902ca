package directory

import (
	"context"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, userID string) error
	Touch(ctx context.Context, userID string) error
	SetDisplayName(ctx context.Context, userID, displayName string) error
	SetEmail(ctx context.Context, userID, email string) error
	SetAvatarURL(ctx context.Context, userID, avatarURL string) error
	SetAdmin(ctx context.Context, userID string, admin bool) error
	SetCurrentSession(ctx context.Context, userID, sessionID string) error
	ClearCurrentSession(ctx context.Context, userID string) error
	AddMembership(ctx context.Context, userID, sessionID string) error
	RemoveMembership(ctx context.Context, userID, sessionID string) error
	SetTeam(ctx context.Context, userID, sessionID, teamID string) error
	ClearTeam(ctx context.Context, userID, sessionID string) error
	SetPoints(ctx context.Context, userID, sessionID string, points int) error
	RecordFound(ctx context.Context, userID, sessionID, artifactID string) error
	RemoveFound(ctx context.Context, userID, sessionID, artifactID string) error
	HasFound(ctx context.Context, userID, sessionID, artifactID string) (bool, error)
}

// UserDirectory owns user lifecycle and every user-initiated association:
// joining and leaving sessions, team assignment, found artifacts, points.
// Cross-entity writes follow a fixed order and are not rolled back on a
// mid-sequence failure.
type UserDirectory struct {
	users    UserRepository
	sessions SessionRepository
	teams    TeamRepository
}

// UserDirectoryConfig holds configuration for the user directory
type UserDirectoryConfig struct {
	Users    UserRepository
	Sessions SessionRepository
	Teams    TeamRepository
}

// NewUserDirectory creates a new user directory
func NewUserDirectory(cfg UserDirectoryConfig) *UserDirectory {
	return &UserDirectory{
		users:    cfg.Users,
		sessions: cfg.Sessions,
		teams:    cfg.Teams,
	}
}

// Create writes a blank user: no fields set, no sessions joined.
func (d *UserDirectory) Create(ctx context.Context, userID string) (*model.User, error) {
	exists, err := d.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	user := &model.User{ID: userID}
	if err := d.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves a user
func (d *UserDirectory) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetDisplayName updates the display name and the updatedOn timestamp
func (d *UserDirectory) SetDisplayName(ctx context.Context, userID, displayName string) error {
	if err := d.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := d.users.SetDisplayName(ctx, userID, displayName); err != nil {
		return err
	}
	return d.users.Touch(ctx, userID)
}

// SetEmail updates the email and the updatedOn timestamp
func (d *UserDirectory) SetEmail(ctx context.Context, userID, email string) error {
	if err := d.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := d.users.SetEmail(ctx, userID, email); err != nil {
		return err
	}
	return d.users.Touch(ctx, userID)
}

// SetAvatarURL updates the avatar URL and the updatedOn timestamp
func (d *UserDirectory) SetAvatarURL(ctx context.Context, userID, avatarURL string) error {
	if err := d.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := d.users.SetAvatarURL(ctx, userID, avatarURL); err != nil {
		return err
	}
	return d.users.Touch(ctx, userID)
}

// SetAdmin updates the admin flag and the updatedOn timestamp
func (d *UserDirectory) SetAdmin(ctx context.Context, userID string, admin bool) error {
	if err := d.requireUser(ctx, userID); err != nil {
		return err
	}
	if err := d.users.SetAdmin(ctx, userID, admin); err != nil {
		return err
	}
	return d.users.Touch(ctx, userID)
}

// SetCurrentSession points the user at one of their joined sessions; an
// empty sessionID clears the pointer.
func (d *UserDirectory) SetCurrentSession(ctx context.Context, userID, sessionID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if sessionID == "" {
		if err := d.users.ClearCurrentSession(ctx, userID); err != nil {
			return err
		}
		return d.users.Touch(ctx, userID)
	}

	if !user.IsMember(sessionID) {
		return ErrCurrentSessionNotJoined
	}
	if err := d.users.SetCurrentSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return d.users.Touch(ctx, userID)
}

// JoinSession makes the user a participant of the session: a fresh
// membership record on the user, then a sentinel entry in the session's
// participant index.
func (d *UserDirectory) JoinSession(ctx context.Context, userID, sessionID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	exists, err := d.sessions.Exists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSessionNotFound
	}

	// A missing or empty sessionsJoined just means "not a member yet"
	if user.IsMember(sessionID) {
		return ErrAlreadyMember
	}

	return store.NewSequence().
		Add("add membership record", func(ctx context.Context) error {
			return d.users.AddMembership(ctx, userID, sessionID)
		}).
		Add("index participant", func(ctx context.Context) error {
			return d.sessions.SetParticipant(ctx, sessionID, userID, model.NoTeam)
		}).
		Execute(ctx)
}

// LeaveSession removes the user from the session. The user must have left
// their team first. Clears the current-session pointer if it pointed here.
func (d *UserDirectory) LeaveSession(ctx context.Context, userID, sessionID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsMember(sessionID) {
		return ErrNotMember
	}
	if user.TeamIn(sessionID) != model.NoTeam {
		return ErrStillOnTeam
	}

	seq := store.NewSequence().
		Add("remove membership record", func(ctx context.Context) error {
			return d.users.RemoveMembership(ctx, userID, sessionID)
		}).
		Add("drop participant index", func(ctx context.Context) error {
			return d.sessions.RemoveParticipant(ctx, sessionID, userID)
		})
	if user.CurrentSession == sessionID {
		seq.Add("clear current session", func(ctx context.Context) error {
			return d.users.ClearCurrentSession(ctx, userID)
		})
	}
	return seq.Execute(ctx)
}

// AssignTeam puts the user on a team within a session they have joined.
// The team must already belong to that session. A user already on another
// team in the session is moved silently: the old member entry is removed
// first, then all three sides are written pointing at the new team.
func (d *UserDirectory) AssignTeam(ctx context.Context, userID, sessionID, teamID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsMember(sessionID) {
		return ErrNotMember
	}

	team, err := d.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}
	if team.SessionID != sessionID {
		return ErrTeamNotInSession
	}

	seq := store.NewSequence()
	if current := user.TeamIn(sessionID); current != model.NoTeam {
		seq.Add("remove previous team member entry", func(ctx context.Context) error {
			return d.teams.RemoveMember(ctx, current, userID)
		})
	}
	seq.Add("set user team pointer", func(ctx context.Context) error {
		return d.users.SetTeam(ctx, userID, sessionID, teamID)
	}).Add("add team member entry", func(ctx context.Context) error {
		return d.teams.AddMember(ctx, teamID, userID)
	}).Add("index participant team", func(ctx context.Context) error {
		return d.sessions.SetParticipant(ctx, sessionID, userID, teamID)
	})
	return seq.Execute(ctx)
}

// UnassignTeam takes the user off their team in the session, clearing all
// three sides and resetting the participant index to the sentinel.
func (d *UserDirectory) UnassignTeam(ctx context.Context, userID, sessionID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsMember(sessionID) {
		return ErrNotMember
	}
	teamID := user.TeamIn(sessionID)
	if teamID == model.NoTeam {
		return ErrNoTeam
	}

	return store.NewSequence().
		Add("clear user team pointer", func(ctx context.Context) error {
			return d.users.ClearTeam(ctx, userID, sessionID)
		}).
		Add("remove team member entry", func(ctx context.Context) error {
			return d.teams.RemoveMember(ctx, teamID, userID)
		}).
		Add("reset participant index", func(ctx context.Context) error {
			return d.sessions.SetParticipant(ctx, sessionID, userID, model.NoTeam)
		}).
		Execute(ctx)
}

// RecordFound marks an artifact found by the user in the session. The
// session must offer the artifact.
func (d *UserDirectory) RecordFound(ctx context.Context, userID, sessionID, artifactID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsMember(sessionID) {
		return ErrNotMember
	}

	offered, err := d.sessions.OffersArtifact(ctx, sessionID, artifactID)
	if err != nil {
		return err
	}
	if !offered {
		return ErrArtifactNotOffered
	}
	if user.HasFound(sessionID, artifactID) {
		return ErrAlreadyRecorded
	}

	return d.users.RecordFound(ctx, userID, sessionID, artifactID)
}

// UnrecordFound removes the user's found record for the artifact. The
// found ratchet lives a level up: sessions refuse to drop an artifact
// while any participant still holds a record, so unrecording is what
// makes removal possible again.
func (d *UserDirectory) UnrecordFound(ctx context.Context, userID, sessionID, artifactID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsMember(sessionID) {
		return ErrNotMember
	}
	if !user.HasFound(sessionID, artifactID) {
		return ErrNotRecorded
	}

	return d.users.RemoveFound(ctx, userID, sessionID, artifactID)
}

// SetPoints overwrites the user's score for the session. No clamping, no
// delta arithmetic.
func (d *UserDirectory) SetPoints(ctx context.Context, userID, sessionID string, points int) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !user.IsMember(sessionID) {
		return ErrNotMember
	}

	return d.users.SetPoints(ctx, userID, sessionID, points)
}

// Delete removes the user. Refused while any session membership remains.
func (d *UserDirectory) Delete(ctx context.Context, userID string) error {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if len(user.SessionsJoined) > 0 {
		return ErrUserHasSessions
	}

	return d.users.Delete(ctx, userID)
}

func (d *UserDirectory) requireUser(ctx context.Context, userID string) error {
	exists, err := d.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
