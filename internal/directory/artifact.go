package directory

import (
	"context"

	"github.com/forgo/quest/api/internal/model"
)

// ArtifactRepository defines the interface for artifact storage
type ArtifactRepository interface {
	Exists(ctx context.Context, artifactID string) (bool, error)
	Get(ctx context.Context, artifactID string) (*model.Artifact, error)
	Create(ctx context.Context, artifact *model.Artifact) error
	Delete(ctx context.Context, artifactID string) error
	Touch(ctx context.Context, artifactID string) error
	SetName(ctx context.Context, artifactID, name string) error
	SetDescription(ctx context.Context, artifactID, description string) error
	SetHint(ctx context.Context, artifactID, hint string) error
	SetLatitude(ctx context.Context, artifactID string, latitude float64) error
	SetLongitude(ctx context.Context, artifactID string, longitude float64) error
	SetMediaURL(ctx context.Context, artifactID, mediaURL string) error
	SetChallenge(ctx context.Context, artifactID string, challenge bool) error
}

// ArtifactDirectory owns artifact lifecycle and discoverable metadata.
// Artifacts have no owning session; sessions reference them by id, so
// deletion scans every session for a remaining reference.
type ArtifactDirectory struct {
	artifacts ArtifactRepository
	sessions  SessionRepository
}

// ArtifactDirectoryConfig holds configuration for the artifact directory
type ArtifactDirectoryConfig struct {
	Artifacts ArtifactRepository
	Sessions  SessionRepository
}

// NewArtifactDirectory creates a new artifact directory
func NewArtifactDirectory(cfg ArtifactDirectoryConfig) *ArtifactDirectory {
	return &ArtifactDirectory{
		artifacts: cfg.Artifacts,
		sessions:  cfg.Sessions,
	}
}

// Create writes a blank artifact: no metadata set.
func (d *ArtifactDirectory) Create(ctx context.Context, artifactID string) (*model.Artifact, error) {
	exists, err := d.artifacts.Exists(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrArtifactExists
	}

	artifact := &model.Artifact{ID: artifactID}
	if err := d.artifacts.Create(ctx, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// Get retrieves an artifact
func (d *ArtifactDirectory) Get(ctx context.Context, artifactID string) (*model.Artifact, error) {
	artifact, err := d.artifacts.Get(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	if artifact == nil {
		return nil, ErrArtifactNotFound
	}
	return artifact, nil
}

// SetName updates the name and the updatedOn timestamp
func (d *ArtifactDirectory) SetName(ctx context.Context, artifactID, name string) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}
	if err := d.artifacts.SetName(ctx, artifactID, name); err != nil {
		return err
	}
	return d.artifacts.Touch(ctx, artifactID)
}

// SetDescription updates the description and the updatedOn timestamp
func (d *ArtifactDirectory) SetDescription(ctx context.Context, artifactID, description string) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}
	if err := d.artifacts.SetDescription(ctx, artifactID, description); err != nil {
		return err
	}
	return d.artifacts.Touch(ctx, artifactID)
}

// SetHint updates the hint and the updatedOn timestamp
func (d *ArtifactDirectory) SetHint(ctx context.Context, artifactID, hint string) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}
	if err := d.artifacts.SetHint(ctx, artifactID, hint); err != nil {
		return err
	}
	return d.artifacts.Touch(ctx, artifactID)
}

// SetCoordinates updates both coordinates and the updatedOn timestamp.
// The values are opaque payload data; nothing here interprets them.
func (d *ArtifactDirectory) SetCoordinates(ctx context.Context, artifactID string, latitude, longitude float64) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}
	if err := d.artifacts.SetLatitude(ctx, artifactID, latitude); err != nil {
		return err
	}
	if err := d.artifacts.SetLongitude(ctx, artifactID, longitude); err != nil {
		return err
	}
	return d.artifacts.Touch(ctx, artifactID)
}

// SetMediaURL updates the media reference and the updatedOn timestamp
func (d *ArtifactDirectory) SetMediaURL(ctx context.Context, artifactID, mediaURL string) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}
	if err := d.artifacts.SetMediaURL(ctx, artifactID, mediaURL); err != nil {
		return err
	}
	return d.artifacts.Touch(ctx, artifactID)
}

// SetChallenge updates the challenge flag and the updatedOn timestamp
func (d *ArtifactDirectory) SetChallenge(ctx context.Context, artifactID string, challenge bool) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}
	if err := d.artifacts.SetChallenge(ctx, artifactID, challenge); err != nil {
		return err
	}
	return d.artifacts.Touch(ctx, artifactID)
}

// Delete removes the artifact. Refused while any session still offers it,
// which requires scanning every session's offered set.
func (d *ArtifactDirectory) Delete(ctx context.Context, artifactID string) error {
	if err := d.requireArtifact(ctx, artifactID); err != nil {
		return err
	}

	sessions, err := d.sessions.All(ctx)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		if session.OffersArtifact(artifactID) {
			return ErrArtifactInUse
		}
	}

	return d.artifacts.Delete(ctx, artifactID)
}

func (d *ArtifactDirectory) requireArtifact(ctx context.Context, artifactID string) error {
	exists, err := d.artifacts.Exists(ctx, artifactID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrArtifactNotFound
	}
	return nil
}
