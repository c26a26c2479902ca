package model

import "time"

// Team represents a group of players within a single session.
//
// SessionID is set at most once: a team joins one session empty and is
// never reattached after leaving it. Members is an id set stored as
// {id: true}.
type Team struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Members   map[string]bool `json:"members,omitempty"`
	CreatedOn time.Time       `json:"createdOn"`
	UpdatedOn time.Time       `json:"updatedOn"`
}

// HasMember returns true if the user is on the team.
func (t *Team) HasMember(userID string) bool {
	return t.Members[userID]
}

// CreateTeamRequest represents a request to create a team.
// ID is optional; the server generates one when omitted.
type CreateTeamRequest struct {
	ID string `json:"id,omitempty"`
}

// UpdateTeamRequest represents a request to update team fields
type UpdateTeamRequest struct {
	Name *string `json:"name,omitempty"`
}
