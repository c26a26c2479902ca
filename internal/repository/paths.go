package repository

import "github.com/forgo/quest/api/internal/store"

// Collection roots in the path-addressed tree.
const (
	usersRoot     = "users"
	sessionsRoot  = "sessions"
	teamsRoot     = "teams"
	artifactsRoot = "artifacts"
)

func userPath(userID string, fields ...string) store.Path {
	return entityPath(usersRoot, userID, fields)
}

func sessionPath(sessionID string, fields ...string) store.Path {
	return entityPath(sessionsRoot, sessionID, fields)
}

func teamPath(teamID string, fields ...string) store.Path {
	return entityPath(teamsRoot, teamID, fields)
}

func artifactPath(artifactID string, fields ...string) store.Path {
	return entityPath(artifactsRoot, artifactID, fields)
}

func entityPath(root, id string, fields []string) store.Path {
	segs := make([]string, 0, 2+len(fields))
	segs = append(segs, root, id)
	segs = append(segs, fields...)
	return store.NewPath(segs...)
}
