package model

import "time"

// NoTeam is the participant-index sentinel for "joined the session, not on
// a team yet".
const NoTeam = ""

// Session represents one game instance.
//
// Teams and Artifacts are id sets stored as {id: true}. Participants maps
// user id to team id, with NoTeam marking a participant without a team.
type Session struct {
	ID           string            `json:"id"`
	Name         string            `json:"name,omitempty"`
	Creator      string            `json:"creator,omitempty"`
	StartTime    *time.Time        `json:"startTime,omitempty"`
	EndTime      *time.Time        `json:"endTime,omitempty"`
	Active       bool              `json:"active"`
	Teams        map[string]bool   `json:"teams,omitempty"`
	Participants map[string]string `json:"participants,omitempty"`
	Artifacts    map[string]bool   `json:"artifacts,omitempty"`
	CreatedOn    time.Time         `json:"createdOn"`
	UpdatedOn    time.Time         `json:"updatedOn"`
}

// HasTeam returns true if the team is attached to the session.
func (s *Session) HasTeam(teamID string) bool {
	return s.Teams[teamID]
}

// HasParticipant returns true if the user has joined the session.
func (s *Session) HasParticipant(userID string) bool {
	_, ok := s.Participants[userID]
	return ok
}

// ParticipantTeam returns the team recorded for the user in the participant
// index, or NoTeam when the user has no team or is not a participant.
func (s *Session) ParticipantTeam(userID string) string {
	return s.Participants[userID]
}

// OffersArtifact returns true if the artifact is offered by the session.
func (s *Session) OffersArtifact(artifactID string) bool {
	return s.Artifacts[artifactID]
}

// Ended returns true if the session has an end time at or before the given
// instant.
func (s *Session) Ended(at time.Time) bool {
	return s.EndTime != nil && !at.Before(*s.EndTime)
}

// CreateSessionRequest represents a request to create a session.
// ID is optional; the server generates one when omitted.
type CreateSessionRequest struct {
	ID      string `json:"id,omitempty"`
	Creator string `json:"creator"`
}

// UpdateSessionRequest represents a request to update session fields.
// StartTime and EndTime must be supplied together and are validated as a
// pair (start strictly before end).
type UpdateSessionRequest struct {
	Name      *string    `json:"name,omitempty"`
	Active    *bool      `json:"active,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}
