package directory

import "errors"

// Centralized directory errors.
// All errors returned by directory operations are defined here; handlers
// branch on them with errors.Is. Each group corresponds to one error kind:
// absent referents, duplicate creates, precondition or invariant
// violations, and input validation.

// ===== Not Found Errors =====
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrArtifactNotFound = errors.New("artifact not found")
)

// ===== Already Exists Errors =====
var (
	ErrUserExists     = errors.New("user already exists")
	ErrSessionExists  = errors.New("session already exists")
	ErrTeamExists     = errors.New("team already exists")
	ErrArtifactExists = errors.New("artifact already exists")
)

// ===== Invalid State Errors =====
var (
	ErrNotMember               = errors.New("user has not joined this session")
	ErrAlreadyMember           = errors.New("user already joined this session")
	ErrStillOnTeam             = errors.New("user must leave their team first")
	ErrNoTeam                  = errors.New("user has no team in this session")
	ErrNotOnTeam               = errors.New("user is not on this team")
	ErrAlreadyOnTeam           = errors.New("user is already on a team in this session")
	ErrCurrentSessionNotJoined = errors.New("current session must be a joined session")
	ErrUserHasSessions         = errors.New("user still has joined sessions")

	ErrTeamAttached     = errors.New("team already belongs to a session")
	ErrTeamUnattached   = errors.New("team is not in a session")
	ErrTeamHasMembers   = errors.New("team still has members")
	ErrTeamNotInSession = errors.New("team does not belong to this session")

	ErrSessionHasParticipants = errors.New("session still has participants")
	ErrSessionHasTeams        = errors.New("session still has teams")

	ErrArtifactOffered      = errors.New("artifact already offered by this session")
	ErrArtifactNotOffered   = errors.New("artifact not offered by this session")
	ErrArtifactFoundByUsers = errors.New("artifact already found by users")
	ErrArtifactInUse        = errors.New("artifact still offered by a session")
	ErrAlreadyRecorded      = errors.New("artifact already recorded as found")
	ErrNotRecorded          = errors.New("artifact not recorded as found")
)

// ===== Validation Errors =====
var (
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)
