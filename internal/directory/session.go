package directory

import (
	"context"
	"sort"
	"time"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	All(ctx context.Context) (map[string]model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, sessionID string) error
	Touch(ctx context.Context, sessionID string) error
	SetName(ctx context.Context, sessionID, name string) error
	SetActive(ctx context.Context, sessionID string, active bool) error
	SetStartTime(ctx context.Context, sessionID string, start time.Time) error
	SetEndTime(ctx context.Context, sessionID string, end time.Time) error
	AddTeam(ctx context.Context, sessionID, teamID string) error
	RemoveTeam(ctx context.Context, sessionID, teamID string) error
	SetParticipant(ctx context.Context, sessionID, userID, teamID string) error
	RemoveParticipant(ctx context.Context, sessionID, userID string) error
	AddArtifact(ctx context.Context, sessionID, artifactID string) error
	RemoveArtifact(ctx context.Context, sessionID, artifactID string) error
	OffersArtifact(ctx context.Context, sessionID, artifactID string) (bool, error)
}

// SessionDirectory owns session lifecycle, the session's team set, and the
// set of offered artifacts. It is the enforcement point for the found
// ratchet: an offered artifact cannot be withdrawn while any participant
// has recorded it.
type SessionDirectory struct {
	sessions  SessionRepository
	teams     TeamRepository
	users     UserRepository
	artifacts ArtifactRepository
}

// SessionDirectoryConfig holds configuration for the session directory
type SessionDirectoryConfig struct {
	Sessions  SessionRepository
	Teams     TeamRepository
	Users     UserRepository
	Artifacts ArtifactRepository
}

// NewSessionDirectory creates a new session directory
func NewSessionDirectory(cfg SessionDirectoryConfig) *SessionDirectory {
	return &SessionDirectory{
		sessions:  cfg.Sessions,
		teams:     cfg.Teams,
		users:     cfg.Users,
		artifacts: cfg.Artifacts,
	}
}

// Create writes a blank session: creator recorded, inactive, no teams,
// participants, or artifacts.
func (d *SessionDirectory) Create(ctx context.Context, sessionID, creatorID string) (*model.Session, error) {
	exists, err := d.sessions.Exists(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSessionExists
	}

	session := &model.Session{ID: sessionID, Creator: creatorID}
	if err := d.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get retrieves a session
func (d *SessionDirectory) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// SetName updates the name and the updatedOn timestamp
func (d *SessionDirectory) SetName(ctx context.Context, sessionID, name string) error {
	if err := d.requireSession(ctx, sessionID); err != nil {
		return err
	}
	if err := d.sessions.SetName(ctx, sessionID, name); err != nil {
		return err
	}
	return d.sessions.Touch(ctx, sessionID)
}

// SetActive updates the active flag and the updatedOn timestamp
func (d *SessionDirectory) SetActive(ctx context.Context, sessionID string, active bool) error {
	if err := d.requireSession(ctx, sessionID); err != nil {
		return err
	}
	if err := d.sessions.SetActive(ctx, sessionID, active); err != nil {
		return err
	}
	return d.sessions.Touch(ctx, sessionID)
}

// SetTimes writes the start and end times. The start must fall strictly
// before the end.
func (d *SessionDirectory) SetTimes(ctx context.Context, sessionID string, start, end time.Time) error {
	if err := d.requireSession(ctx, sessionID); err != nil {
		return err
	}
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}
	if err := d.sessions.SetStartTime(ctx, sessionID, start); err != nil {
		return err
	}
	if err := d.sessions.SetEndTime(ctx, sessionID, end); err != nil {
		return err
	}
	return d.sessions.Touch(ctx, sessionID)
}

// AddTeam attaches a team to the session. The team must arrive empty and
// unattached; its session pointer is set as the second write.
func (d *SessionDirectory) AddTeam(ctx context.Context, sessionID, teamID string) error {
	if err := d.requireSession(ctx, sessionID); err != nil {
		return err
	}

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

	return store.NewSequence().
		Add("add session team entry", func(ctx context.Context) error {
			return d.sessions.AddTeam(ctx, sessionID, teamID)
		}).
		Add("set team session pointer", func(ctx context.Context) error {
			return d.teams.SetSession(ctx, teamID, sessionID)
		}).
		Execute(ctx)
}

// RemoveTeam detaches a team from the session. The team must be empty.
func (d *SessionDirectory) RemoveTeam(ctx context.Context, sessionID, teamID string) error {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	team, err := d.teams.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}
	if !session.HasTeam(teamID) {
		return ErrTeamNotInSession
	}
	if len(team.Members) > 0 {
		return ErrTeamHasMembers
	}

	return store.NewSequence().
		Add("remove session team entry", func(ctx context.Context) error {
			return d.sessions.RemoveTeam(ctx, sessionID, teamID)
		}).
		Add("clear team session pointer", func(ctx context.Context) error {
			return d.teams.ClearSession(ctx, teamID)
		}).
		Execute(ctx)
}

// AddArtifact offers an artifact in the session
func (d *SessionDirectory) AddArtifact(ctx context.Context, sessionID, artifactID string) error {
	if err := d.requireSession(ctx, sessionID); err != nil {
		return err
	}

	exists, err := d.artifacts.Exists(ctx, artifactID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrArtifactNotFound
	}

	offered, err := d.sessions.OffersArtifact(ctx, sessionID, artifactID)
	if err != nil {
		return err
	}
	if offered {
		return ErrArtifactOffered
	}

	return d.sessions.AddArtifact(ctx, sessionID, artifactID)
}

// RemoveArtifact withdraws an artifact from the session. Refused once any
// current participant has recorded it as found: the check is a linear scan
// over the participant index, and it is what makes "found" a ratchet.
func (d *SessionDirectory) RemoveArtifact(ctx context.Context, sessionID, artifactID string) error {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if !session.OffersArtifact(artifactID) {
		return ErrArtifactNotOffered
	}

	for _, userID := range sortedKeys(session.Participants) {
		found, err := d.users.HasFound(ctx, userID, sessionID, artifactID)
		if err != nil {
			return err
		}
		if found {
			return ErrArtifactFoundByUsers
		}
	}

	return d.sessions.RemoveArtifact(ctx, sessionID, artifactID)
}

// Delete removes the session. Refused while any participant or team
// remains; offered artifacts do not block deletion.
func (d *SessionDirectory) Delete(ctx context.Context, sessionID string) error {
	session, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}
	if len(session.Participants) > 0 {
		return ErrSessionHasParticipants
	}
	if len(session.Teams) > 0 {
		return ErrSessionHasTeams
	}

	return d.sessions.Delete(ctx, sessionID)
}

// DeactivateEnded flips off every active session whose end time has
// passed, returning the ids it deactivated in sorted order.
func (d *SessionDirectory) DeactivateEnded(ctx context.Context, at time.Time) ([]string, error) {
	sessions, err := d.sessions.All(ctx)
	if err != nil {
		return nil, err
	}

	var deactivated []string
	for _, sessionID := range sortedKeys(sessions) {
		session := sessions[sessionID]
		if !session.Active || !session.Ended(at) {
			continue
		}
		if err := d.sessions.SetActive(ctx, sessionID, false); err != nil {
			return deactivated, err
		}
		if err := d.sessions.Touch(ctx, sessionID); err != nil {
			return deactivated, err
		}
		deactivated = append(deactivated, sessionID)
	}
	return deactivated, nil
}

func (d *SessionDirectory) requireSession(ctx context.Context, sessionID string) error {
	exists, err := d.sessions.Exists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSessionNotFound
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
