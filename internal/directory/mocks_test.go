package directory

import (
	"context"
	"time"

	"github.com/forgo/quest/api/internal/model"
)

// ============================================================================
// Fixtures
// ============================================================================

// memberUser builds a user who has joined sessionID. An empty teamID means
// the user is a participant with no team.
func memberUser(userID, sessionID, teamID string) *model.User {
	return &model.User{
		ID: userID,
		SessionsJoined: map[string]model.SessionEntry{
			sessionID: {TeamID: teamID},
		},
	}
}

// ============================================================================
// Mock Repositories
// ============================================================================

type mockUserRepo struct {
	existsFunc              func(ctx context.Context, userID string) (bool, error)
	getFunc                 func(ctx context.Context, userID string) (*model.User, error)
	createFunc              func(ctx context.Context, user *model.User) error
	deleteFunc              func(ctx context.Context, userID string) error
	touchFunc               func(ctx context.Context, userID string) error
	setDisplayNameFunc      func(ctx context.Context, userID, displayName string) error
	setEmailFunc            func(ctx context.Context, userID, email string) error
	setAvatarURLFunc        func(ctx context.Context, userID, avatarURL string) error
	setAdminFunc            func(ctx context.Context, userID string, admin bool) error
	setCurrentSessionFunc   func(ctx context.Context, userID, sessionID string) error
	clearCurrentSessionFunc func(ctx context.Context, userID string) error
	addMembershipFunc       func(ctx context.Context, userID, sessionID string) error
	removeMembershipFunc    func(ctx context.Context, userID, sessionID string) error
	setTeamFunc             func(ctx context.Context, userID, sessionID, teamID string) error
	clearTeamFunc           func(ctx context.Context, userID, sessionID string) error
	setPointsFunc           func(ctx context.Context, userID, sessionID string, points int) error
	recordFoundFunc         func(ctx context.Context, userID, sessionID, artifactID string) error
	removeFoundFunc         func(ctx context.Context, userID, sessionID, artifactID string) error
	hasFoundFunc            func(ctx context.Context, userID, sessionID, artifactID string) (bool, error)
}

func (m *mockUserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, userID)
	}
	return false, nil
}

func (m *mockUserRepo) Get(ctx context.Context, userID string) (*model.User, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, userID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepo) Touch(ctx context.Context, userID string) error {
	if m.touchFunc != nil {
		return m.touchFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepo) SetDisplayName(ctx context.Context, userID, displayName string) error {
	if m.setDisplayNameFunc != nil {
		return m.setDisplayNameFunc(ctx, userID, displayName)
	}
	return nil
}

func (m *mockUserRepo) SetEmail(ctx context.Context, userID, email string) error {
	if m.setEmailFunc != nil {
		return m.setEmailFunc(ctx, userID, email)
	}
	return nil
}

func (m *mockUserRepo) SetAvatarURL(ctx context.Context, userID, avatarURL string) error {
	if m.setAvatarURLFunc != nil {
		return m.setAvatarURLFunc(ctx, userID, avatarURL)
	}
	return nil
}

func (m *mockUserRepo) SetAdmin(ctx context.Context, userID string, admin bool) error {
	if m.setAdminFunc != nil {
		return m.setAdminFunc(ctx, userID, admin)
	}
	return nil
}

func (m *mockUserRepo) SetCurrentSession(ctx context.Context, userID, sessionID string) error {
	if m.setCurrentSessionFunc != nil {
		return m.setCurrentSessionFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *mockUserRepo) ClearCurrentSession(ctx context.Context, userID string) error {
	if m.clearCurrentSessionFunc != nil {
		return m.clearCurrentSessionFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepo) AddMembership(ctx context.Context, userID, sessionID string) error {
	if m.addMembershipFunc != nil {
		return m.addMembershipFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *mockUserRepo) RemoveMembership(ctx context.Context, userID, sessionID string) error {
	if m.removeMembershipFunc != nil {
		return m.removeMembershipFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *mockUserRepo) SetTeam(ctx context.Context, userID, sessionID, teamID string) error {
	if m.setTeamFunc != nil {
		return m.setTeamFunc(ctx, userID, sessionID, teamID)
	}
	return nil
}

func (m *mockUserRepo) ClearTeam(ctx context.Context, userID, sessionID string) error {
	if m.clearTeamFunc != nil {
		return m.clearTeamFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *mockUserRepo) SetPoints(ctx context.Context, userID, sessionID string, points int) error {
	if m.setPointsFunc != nil {
		return m.setPointsFunc(ctx, userID, sessionID, points)
	}
	return nil
}

func (m *mockUserRepo) RecordFound(ctx context.Context, userID, sessionID, artifactID string) error {
	if m.recordFoundFunc != nil {
		return m.recordFoundFunc(ctx, userID, sessionID, artifactID)
	}
	return nil
}

func (m *mockUserRepo) RemoveFound(ctx context.Context, userID, sessionID, artifactID string) error {
	if m.removeFoundFunc != nil {
		return m.removeFoundFunc(ctx, userID, sessionID, artifactID)
	}
	return nil
}

func (m *mockUserRepo) HasFound(ctx context.Context, userID, sessionID, artifactID string) (bool, error) {
	if m.hasFoundFunc != nil {
		return m.hasFoundFunc(ctx, userID, sessionID, artifactID)
	}
	return false, nil
}

type mockSessionRepo struct {
	existsFunc            func(ctx context.Context, sessionID string) (bool, error)
	getFunc               func(ctx context.Context, sessionID string) (*model.Session, error)
	allFunc               func(ctx context.Context) (map[string]model.Session, error)
	createFunc            func(ctx context.Context, session *model.Session) error
	deleteFunc            func(ctx context.Context, sessionID string) error
	touchFunc             func(ctx context.Context, sessionID string) error
	setNameFunc           func(ctx context.Context, sessionID, name string) error
	setActiveFunc         func(ctx context.Context, sessionID string, active bool) error
	setStartTimeFunc      func(ctx context.Context, sessionID string, start time.Time) error
	setEndTimeFunc        func(ctx context.Context, sessionID string, end time.Time) error
	addTeamFunc           func(ctx context.Context, sessionID, teamID string) error
	removeTeamFunc        func(ctx context.Context, sessionID, teamID string) error
	setParticipantFunc    func(ctx context.Context, sessionID, userID, teamID string) error
	removeParticipantFunc func(ctx context.Context, sessionID, userID string) error
	addArtifactFunc       func(ctx context.Context, sessionID, artifactID string) error
	removeArtifactFunc    func(ctx context.Context, sessionID, artifactID string) error
	offersArtifactFunc    func(ctx context.Context, sessionID, artifactID string) (bool, error)
}

func (m *mockSessionRepo) Exists(ctx context.Context, sessionID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, sessionID)
	}
	return false, nil
}

func (m *mockSessionRepo) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepo) All(ctx context.Context) (map[string]model.Session, error) {
	if m.allFunc != nil {
		return m.allFunc(ctx)
	}
	return map[string]model.Session{}, nil
}

func (m *mockSessionRepo) Create(ctx context.Context, session *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepo) Touch(ctx context.Context, sessionID string) error {
	if m.touchFunc != nil {
		return m.touchFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepo) SetName(ctx context.Context, sessionID, name string) error {
	if m.setNameFunc != nil {
		return m.setNameFunc(ctx, sessionID, name)
	}
	return nil
}

func (m *mockSessionRepo) SetActive(ctx context.Context, sessionID string, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, sessionID, active)
	}
	return nil
}

func (m *mockSessionRepo) SetStartTime(ctx context.Context, sessionID string, start time.Time) error {
	if m.setStartTimeFunc != nil {
		return m.setStartTimeFunc(ctx, sessionID, start)
	}
	return nil
}

func (m *mockSessionRepo) SetEndTime(ctx context.Context, sessionID string, end time.Time) error {
	if m.setEndTimeFunc != nil {
		return m.setEndTimeFunc(ctx, sessionID, end)
	}
	return nil
}

func (m *mockSessionRepo) AddTeam(ctx context.Context, sessionID, teamID string) error {
	if m.addTeamFunc != nil {
		return m.addTeamFunc(ctx, sessionID, teamID)
	}
	return nil
}

func (m *mockSessionRepo) RemoveTeam(ctx context.Context, sessionID, teamID string) error {
	if m.removeTeamFunc != nil {
		return m.removeTeamFunc(ctx, sessionID, teamID)
	}
	return nil
}

func (m *mockSessionRepo) SetParticipant(ctx context.Context, sessionID, userID, teamID string) error {
	if m.setParticipantFunc != nil {
		return m.setParticipantFunc(ctx, sessionID, userID, teamID)
	}
	return nil
}

func (m *mockSessionRepo) RemoveParticipant(ctx context.Context, sessionID, userID string) error {
	if m.removeParticipantFunc != nil {
		return m.removeParticipantFunc(ctx, sessionID, userID)
	}
	return nil
}

func (m *mockSessionRepo) AddArtifact(ctx context.Context, sessionID, artifactID string) error {
	if m.addArtifactFunc != nil {
		return m.addArtifactFunc(ctx, sessionID, artifactID)
	}
	return nil
}

func (m *mockSessionRepo) RemoveArtifact(ctx context.Context, sessionID, artifactID string) error {
	if m.removeArtifactFunc != nil {
		return m.removeArtifactFunc(ctx, sessionID, artifactID)
	}
	return nil
}

func (m *mockSessionRepo) OffersArtifact(ctx context.Context, sessionID, artifactID string) (bool, error) {
	if m.offersArtifactFunc != nil {
		return m.offersArtifactFunc(ctx, sessionID, artifactID)
	}
	return false, nil
}

type mockTeamRepo struct {
	existsFunc       func(ctx context.Context, teamID string) (bool, error)
	getFunc          func(ctx context.Context, teamID string) (*model.Team, error)
	createFunc       func(ctx context.Context, team *model.Team) error
	deleteFunc       func(ctx context.Context, teamID string) error
	touchFunc        func(ctx context.Context, teamID string) error
	setNameFunc      func(ctx context.Context, teamID, name string) error
	setSessionFunc   func(ctx context.Context, teamID, sessionID string) error
	clearSessionFunc func(ctx context.Context, teamID string) error
	addMemberFunc    func(ctx context.Context, teamID, userID string) error
	removeMemberFunc func(ctx context.Context, teamID, userID string) error
}

func (m *mockTeamRepo) Exists(ctx context.Context, teamID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, teamID)
	}
	return false, nil
}

func (m *mockTeamRepo) Get(ctx context.Context, teamID string) (*model.Team, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *mockTeamRepo) Create(ctx context.Context, team *model.Team) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, team)
	}
	return nil
}

func (m *mockTeamRepo) Delete(ctx context.Context, teamID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, teamID)
	}
	return nil
}

func (m *mockTeamRepo) Touch(ctx context.Context, teamID string) error {
	if m.touchFunc != nil {
		return m.touchFunc(ctx, teamID)
	}
	return nil
}

func (m *mockTeamRepo) SetName(ctx context.Context, teamID, name string) error {
	if m.setNameFunc != nil {
		return m.setNameFunc(ctx, teamID, name)
	}
	return nil
}

func (m *mockTeamRepo) SetSession(ctx context.Context, teamID, sessionID string) error {
	if m.setSessionFunc != nil {
		return m.setSessionFunc(ctx, teamID, sessionID)
	}
	return nil
}

func (m *mockTeamRepo) ClearSession(ctx context.Context, teamID string) error {
	if m.clearSessionFunc != nil {
		return m.clearSessionFunc(ctx, teamID)
	}
	return nil
}

func (m *mockTeamRepo) AddMember(ctx context.Context, teamID, userID string) error {
	if m.addMemberFunc != nil {
		return m.addMemberFunc(ctx, teamID, userID)
	}
	return nil
}

func (m *mockTeamRepo) RemoveMember(ctx context.Context, teamID, userID string) error {
	if m.removeMemberFunc != nil {
		return m.removeMemberFunc(ctx, teamID, userID)
	}
	return nil
}

type mockArtifactRepo struct {
	existsFunc         func(ctx context.Context, artifactID string) (bool, error)
	getFunc            func(ctx context.Context, artifactID string) (*model.Artifact, error)
	createFunc         func(ctx context.Context, artifact *model.Artifact) error
	deleteFunc         func(ctx context.Context, artifactID string) error
	touchFunc          func(ctx context.Context, artifactID string) error
	setNameFunc        func(ctx context.Context, artifactID, name string) error
	setDescriptionFunc func(ctx context.Context, artifactID, description string) error
	setHintFunc        func(ctx context.Context, artifactID, hint string) error
	setLatitudeFunc    func(ctx context.Context, artifactID string, latitude float64) error
	setLongitudeFunc   func(ctx context.Context, artifactID string, longitude float64) error
	setMediaURLFunc    func(ctx context.Context, artifactID, mediaURL string) error
	setChallengeFunc   func(ctx context.Context, artifactID string, challenge bool) error
}

func (m *mockArtifactRepo) Exists(ctx context.Context, artifactID string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, artifactID)
	}
	return false, nil
}

func (m *mockArtifactRepo) Get(ctx context.Context, artifactID string) (*model.Artifact, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, artifactID)
	}
	return nil, nil
}

func (m *mockArtifactRepo) Create(ctx context.Context, artifact *model.Artifact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, artifact)
	}
	return nil
}

func (m *mockArtifactRepo) Delete(ctx context.Context, artifactID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, artifactID)
	}
	return nil
}

func (m *mockArtifactRepo) Touch(ctx context.Context, artifactID string) error {
	if m.touchFunc != nil {
		return m.touchFunc(ctx, artifactID)
	}
	return nil
}

func (m *mockArtifactRepo) SetName(ctx context.Context, artifactID, name string) error {
	if m.setNameFunc != nil {
		return m.setNameFunc(ctx, artifactID, name)
	}
	return nil
}

func (m *mockArtifactRepo) SetDescription(ctx context.Context, artifactID, description string) error {
	if m.setDescriptionFunc != nil {
		return m.setDescriptionFunc(ctx, artifactID, description)
	}
	return nil
}

func (m *mockArtifactRepo) SetHint(ctx context.Context, artifactID, hint string) error {
	if m.setHintFunc != nil {
		return m.setHintFunc(ctx, artifactID, hint)
	}
	return nil
}

func (m *mockArtifactRepo) SetLatitude(ctx context.Context, artifactID string, latitude float64) error {
	if m.setLatitudeFunc != nil {
		return m.setLatitudeFunc(ctx, artifactID, latitude)
	}
	return nil
}

func (m *mockArtifactRepo) SetLongitude(ctx context.Context, artifactID string, longitude float64) error {
	if m.setLongitudeFunc != nil {
		return m.setLongitudeFunc(ctx, artifactID, longitude)
	}
	return nil
}

func (m *mockArtifactRepo) SetMediaURL(ctx context.Context, artifactID, mediaURL string) error {
	if m.setMediaURLFunc != nil {
		return m.setMediaURLFunc(ctx, artifactID, mediaURL)
	}
	return nil
}

func (m *mockArtifactRepo) SetChallenge(ctx context.Context, artifactID string, challenge bool) error {
	if m.setChallengeFunc != nil {
		return m.setChallengeFunc(ctx, artifactID, challenge)
	}
	return nil
}
