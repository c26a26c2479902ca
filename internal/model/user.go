package model

import "time"

// User represents a player.
//
// SessionsJoined is keyed by session id; each entry carries the player's
// team pointer, score, and found artifacts for that session. CurrentSession,
// when set, must name a key present in SessionsJoined.
type User struct {
	ID             string                  `json:"id"`
	DisplayName    string                  `json:"displayName,omitempty"`
	Email          string                  `json:"email,omitempty"`
	AvatarURL      string                  `json:"avatarUrl,omitempty"`
	Admin          bool                    `json:"admin,omitempty"`
	CurrentSession string                  `json:"currentSession,omitempty"`
	SessionsJoined map[string]SessionEntry `json:"sessionsJoined,omitempty"`
	CreatedOn      time.Time               `json:"createdOn"`
	UpdatedOn      time.Time               `json:"updatedOn"`
}

// SessionEntry is one player's membership record for one session.
// Points is always present so a fresh record survives as a non-empty
// subtree in the store; FoundArtifacts is an id set stored as {id: true}.
type SessionEntry struct {
	TeamID         string          `json:"teamId,omitempty"`
	Points         int             `json:"points"`
	FoundArtifacts map[string]bool `json:"foundArtifacts,omitempty"`
}

// IsMember returns true if the user has joined the session.
func (u *User) IsMember(sessionID string) bool {
	_, ok := u.SessionsJoined[sessionID]
	return ok
}

// TeamIn returns the user's team id within the session, or "" if the user
// has no team there (or is not a member at all).
func (u *User) TeamIn(sessionID string) string {
	return u.SessionsJoined[sessionID].TeamID
}

// HasFound returns true if the user has recorded the artifact in the session.
func (u *User) HasFound(sessionID, artifactID string) bool {
	return u.SessionsJoined[sessionID].FoundArtifacts[artifactID]
}

// CreateUserRequest represents a request to create a user.
// ID is optional; the server generates one when omitted.
type CreateUserRequest struct {
	ID string `json:"id,omitempty"`
}

// UpdateUserRequest represents a request to update user fields
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Email       *string `json:"email,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Admin       *bool   `json:"admin,omitempty"`
}

// SetCurrentSessionRequest represents a request to point a user at one of
// their joined sessions; an empty SessionID clears the pointer.
type SetCurrentSessionRequest struct {
	SessionID string `json:"sessionId"`
}

// AssignTeamRequest represents a request to put a user on a team within a session
type AssignTeamRequest struct {
	TeamID string `json:"teamId"`
}

// SetPointsRequest represents a request to overwrite a user's score in a session
type SetPointsRequest struct {
	Points int `json:"points"`
}

// RecordFoundRequest represents a request to record a found artifact
type RecordFoundRequest struct {
	ArtifactID string `json:"artifactId"`
}
