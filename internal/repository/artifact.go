package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/quest/api/internal/model"
	"github.com/forgo/quest/api/internal/store"
)

// ArtifactRepository handles artifact data access over the path-addressed
// store. Every method issues exactly one store call.
type ArtifactRepository struct {
	store store.Store
}

// NewArtifactRepository creates a new artifact repository
func NewArtifactRepository(s store.Store) *ArtifactRepository {
	return &ArtifactRepository{store: s}
}

// Exists reports whether the artifact record is present
func (r *ArtifactRepository) Exists(ctx context.Context, artifactID string) (bool, error) {
	return r.store.Exists(ctx, artifactPath(artifactID))
}

// Get retrieves an artifact by ID, or nil if absent
func (r *ArtifactRepository) Get(ctx context.Context, artifactID string) (*model.Artifact, error) {
	var artifact model.Artifact
	if err := r.store.Read(ctx, artifactPath(artifactID), &artifact); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artifact, nil
}

// Create writes an artifact record, stamping both timestamps
func (r *ArtifactRepository) Create(ctx context.Context, artifact *model.Artifact) error {
	now := time.Now().UTC()
	artifact.CreatedOn = now
	artifact.UpdatedOn = now
	return r.store.Write(ctx, artifactPath(artifact.ID), artifact)
}

// Delete removes the entire artifact subtree
func (r *ArtifactRepository) Delete(ctx context.Context, artifactID string) error {
	return r.store.Delete(ctx, artifactPath(artifactID))
}

// Touch updates the artifact's updatedOn timestamp
func (r *ArtifactRepository) Touch(ctx context.Context, artifactID string) error {
	return r.store.Write(ctx, artifactPath(artifactID, "updatedOn"), time.Now().UTC())
}

// SetName writes the name field
func (r *ArtifactRepository) SetName(ctx context.Context, artifactID, name string) error {
	return r.store.Write(ctx, artifactPath(artifactID, "name"), name)
}

// SetDescription writes the description field
func (r *ArtifactRepository) SetDescription(ctx context.Context, artifactID, description string) error {
	return r.store.Write(ctx, artifactPath(artifactID, "description"), description)
}

// SetHint writes the hint field
func (r *ArtifactRepository) SetHint(ctx context.Context, artifactID, hint string) error {
	return r.store.Write(ctx, artifactPath(artifactID, "hint"), hint)
}

// SetLatitude writes the latitude field
func (r *ArtifactRepository) SetLatitude(ctx context.Context, artifactID string, latitude float64) error {
	return r.store.Write(ctx, artifactPath(artifactID, "latitude"), latitude)
}

// SetLongitude writes the longitude field
func (r *ArtifactRepository) SetLongitude(ctx context.Context, artifactID string, longitude float64) error {
	return r.store.Write(ctx, artifactPath(artifactID, "longitude"), longitude)
}

// SetMediaURL writes the mediaUrl field
func (r *ArtifactRepository) SetMediaURL(ctx context.Context, artifactID, mediaURL string) error {
	return r.store.Write(ctx, artifactPath(artifactID, "mediaUrl"), mediaURL)
}

// SetChallenge writes the challenge flag
func (r *ArtifactRepository) SetChallenge(ctx context.Context, artifactID string, challenge bool) error {
	return r.store.Write(ctx, artifactPath(artifactID, "challenge"), challenge)
}
