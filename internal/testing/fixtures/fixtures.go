package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/quest/api/internal/directory"
	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/repository"
	"github.com/forgo/quest/api/internal/store"
)

// Factory creates test entities through the directory layer, so every
// fixture carries the same denormalized pointers a live system would.
type Factory struct {
	Users     *directory.UserDirectory
	Sessions  *directory.SessionDirectory
	Teams     *directory.TeamDirectory
	Artifacts *directory.ArtifactDirectory
}

// New creates a new fixture factory over the given store
func New(s store.Store) *Factory {
	userRepo := repository.NewUserRepository(s)
	sessionRepo := repository.NewSessionRepository(s)
	teamRepo := repository.NewTeamRepository(s)
	artifactRepo := repository.NewArtifactRepository(s)

	return &Factory{
		Users: directory.NewUserDirectory(directory.UserDirectoryConfig{
			Users:    userRepo,
			Sessions: sessionRepo,
			Teams:    teamRepo,
		}),
		Sessions: directory.NewSessionDirectory(directory.SessionDirectoryConfig{
			Sessions:  sessionRepo,
			Teams:     teamRepo,
			Users:     userRepo,
			Artifacts: artifactRepo,
		}),
		Teams: directory.NewTeamDirectory(directory.TeamDirectoryConfig{
			Teams:    teamRepo,
			Sessions: sessionRepo,
			Users:    userRepo,
		}),
		Artifacts: directory.NewArtifactDirectory(directory.ArtifactDirectoryConfig{
			Artifacts: artifactRepo,
			Sessions:  sessionRepo,
		}),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	ID          string
	DisplayName string
	Email       string
	Admin       bool
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	id := randomID()
	o := &UserOpts{
		ID:          fmt.Sprintf("user-%s", id),
		DisplayName: fmt.Sprintf("Player %s", id),
		Email:       fmt.Sprintf("player_%s@test.local", id),
	}
	for _, fn := range opts {
		fn(o)
	}

	if _, err := f.Users.Create(ctx(), o.ID); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	if err := f.Users.SetDisplayName(ctx(), o.ID, o.DisplayName); err != nil {
		t.Fatalf("fixtures: failed to set display name: %v", err)
	}
	if err := f.Users.SetEmail(ctx(), o.ID, o.Email); err != nil {
		t.Fatalf("fixtures: failed to set email: %v", err)
	}
	if o.Admin {
		if err := f.Users.SetAdmin(ctx(), o.ID, true); err != nil {
			t.Fatalf("fixtures: failed to set admin: %v", err)
		}
	}

	user, err := f.Users.Get(ctx(), o.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to fetch created user: %v", err)
	}
	return user
}

// CreateAdmin creates an admin user
func (f *Factory) CreateAdmin(t *testing.T) *model.User {
	return f.CreateUser(t, func(o *UserOpts) {
		o.Admin = true
	})
}

// ============================================================================
// Session Fixtures
// ============================================================================

// SessionOpts customizes session creation
type SessionOpts struct {
	ID        string
	Name      string
	Active    bool
	StartTime *time.Time
	EndTime   *time.Time
}

// WithSessionWindow sets the session's start and end times
func WithSessionWindow(start, end time.Time) func(*SessionOpts) {
	return func(o *SessionOpts) {
		o.StartTime = &start
		o.EndTime = &end
	}
}

// WithSessionActive marks the session active
func WithSessionActive() func(*SessionOpts) {
	return func(o *SessionOpts) {
		o.Active = true
	}
}

// CreateSession creates a session with the given user as creator
func (f *Factory) CreateSession(t *testing.T, creator *model.User, opts ...func(*SessionOpts)) *model.Session {
	t.Helper()

	id := randomID()
	o := &SessionOpts{
		ID:   fmt.Sprintf("session-%s", id),
		Name: fmt.Sprintf("Hunt %s", id),
	}
	for _, fn := range opts {
		fn(o)
	}

	if _, err := f.Sessions.Create(ctx(), o.ID, creator.ID); err != nil {
		t.Fatalf("fixtures: failed to create session: %v", err)
	}
	if err := f.Sessions.SetName(ctx(), o.ID, o.Name); err != nil {
		t.Fatalf("fixtures: failed to set session name: %v", err)
	}
	if o.StartTime != nil && o.EndTime != nil {
		if err := f.Sessions.SetTimes(ctx(), o.ID, *o.StartTime, *o.EndTime); err != nil {
			t.Fatalf("fixtures: failed to set session times: %v", err)
		}
	}
	if o.Active {
		if err := f.Sessions.SetActive(ctx(), o.ID, true); err != nil {
			t.Fatalf("fixtures: failed to activate session: %v", err)
		}
	}

	session, err := f.Sessions.Get(ctx(), o.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to fetch created session: %v", err)
	}
	return session
}

// CreateActiveSession creates a session that is already active
func (f *Factory) CreateActiveSession(t *testing.T, creator *model.User) *model.Session {
	return f.CreateSession(t, creator, WithSessionActive())
}

// JoinSession joins a user to a session
func (f *Factory) JoinSession(t *testing.T, user *model.User, session *model.Session) {
	t.Helper()

	if err := f.Users.JoinSession(ctx(), user.ID, session.ID); err != nil {
		t.Fatalf("fixtures: failed to join session: %v", err)
	}
}

// ============================================================================
// Team Fixtures
// ============================================================================

// TeamOpts customizes team creation
type TeamOpts struct {
	ID   string
	Name string
}

// CreateTeam creates an unattached team
func (f *Factory) CreateTeam(t *testing.T, opts ...func(*TeamOpts)) *model.Team {
	t.Helper()

	id := randomID()
	o := &TeamOpts{
		ID:   fmt.Sprintf("team-%s", id),
		Name: fmt.Sprintf("Team %s", id),
	}
	for _, fn := range opts {
		fn(o)
	}

	if _, err := f.Teams.Create(ctx(), o.ID); err != nil {
		t.Fatalf("fixtures: failed to create team: %v", err)
	}
	if err := f.Teams.SetName(ctx(), o.ID, o.Name); err != nil {
		t.Fatalf("fixtures: failed to set team name: %v", err)
	}

	team, err := f.Teams.Get(ctx(), o.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to fetch created team: %v", err)
	}
	return team
}

// CreateTeamInSession creates a team and attaches it to the session
func (f *Factory) CreateTeamInSession(t *testing.T, session *model.Session, opts ...func(*TeamOpts)) *model.Team {
	t.Helper()

	team := f.CreateTeam(t, opts...)
	if err := f.Sessions.AddTeam(ctx(), session.ID, team.ID); err != nil {
		t.Fatalf("fixtures: failed to attach team: %v", err)
	}

	team, err := f.Teams.Get(ctx(), team.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to fetch attached team: %v", err)
	}
	return team
}

// AssignTeam puts a joined user on a team within a session
func (f *Factory) AssignTeam(t *testing.T, user *model.User, session *model.Session, team *model.Team) {
	t.Helper()

	if err := f.Users.AssignTeam(ctx(), user.ID, session.ID, team.ID); err != nil {
		t.Fatalf("fixtures: failed to assign team: %v", err)
	}
}

// ============================================================================
// Artifact Fixtures
// ============================================================================

// ArtifactOpts customizes artifact creation
type ArtifactOpts struct {
	ID        string
	Name      string
	Hint      string
	Latitude  *float64
	Longitude *float64
	Challenge bool
}

// WithArtifactLocation sets the artifact's coordinates
func WithArtifactLocation(lat, lng float64) func(*ArtifactOpts) {
	return func(o *ArtifactOpts) {
		o.Latitude = &lat
		o.Longitude = &lng
	}
}

// CreateArtifact creates an artifact with optional customizations
func (f *Factory) CreateArtifact(t *testing.T, opts ...func(*ArtifactOpts)) *model.Artifact {
	t.Helper()

	id := randomID()
	o := &ArtifactOpts{
		ID:   fmt.Sprintf("artifact-%s", id),
		Name: fmt.Sprintf("Artifact %s", id),
	}
	for _, fn := range opts {
		fn(o)
	}

	if _, err := f.Artifacts.Create(ctx(), o.ID); err != nil {
		t.Fatalf("fixtures: failed to create artifact: %v", err)
	}
	if err := f.Artifacts.SetName(ctx(), o.ID, o.Name); err != nil {
		t.Fatalf("fixtures: failed to set artifact name: %v", err)
	}
	if o.Hint != "" {
		if err := f.Artifacts.SetHint(ctx(), o.ID, o.Hint); err != nil {
			t.Fatalf("fixtures: failed to set artifact hint: %v", err)
		}
	}
	if o.Latitude != nil && o.Longitude != nil {
		if err := f.Artifacts.SetCoordinates(ctx(), o.ID, *o.Latitude, *o.Longitude); err != nil {
			t.Fatalf("fixtures: failed to set artifact coordinates: %v", err)
		}
	}
	if o.Challenge {
		if err := f.Artifacts.SetChallenge(ctx(), o.ID, true); err != nil {
			t.Fatalf("fixtures: failed to set artifact challenge flag: %v", err)
		}
	}

	artifact, err := f.Artifacts.Get(ctx(), o.ID)
	if err != nil {
		t.Fatalf("fixtures: failed to fetch created artifact: %v", err)
	}
	return artifact
}

// CreateOfferedArtifact creates an artifact and offers it in the session
func (f *Factory) CreateOfferedArtifact(t *testing.T, session *model.Session, opts ...func(*ArtifactOpts)) *model.Artifact {
	t.Helper()

	artifact := f.CreateArtifact(t, opts...)
	if err := f.Sessions.AddArtifact(ctx(), session.ID, artifact.ID); err != nil {
		t.Fatalf("fixtures: failed to offer artifact: %v", err)
	}
	return artifact
}

// RecordFound records an offered artifact as found by a joined user
func (f *Factory) RecordFound(t *testing.T, user *model.User, session *model.Session, artifact *model.Artifact) {
	t.Helper()

	if err := f.Users.RecordFound(ctx(), user.ID, session.ID, artifact.ID); err != nil {
		t.Fatalf("fixtures: failed to record found artifact: %v", err)
	}
}
