package model

import "time"

// Artifact represents a collectible definition: discoverable metadata only,
// with no owning session. Sessions reference artifacts by id in a set.
// Coordinates and media are opaque payload data to this API.
type Artifact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Hint        string    `json:"hint,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	Challenge   bool      `json:"challenge,omitempty"`
	CreatedOn   time.Time `json:"createdOn"`
	UpdatedOn   time.Time `json:"updatedOn"`
}

// CreateArtifactRequest represents a request to create an artifact.
// ID is optional; the server generates one when omitted.
type CreateArtifactRequest struct {
	ID string `json:"id,omitempty"`
}

// UpdateArtifactRequest represents a request to update artifact fields.
// Latitude and Longitude must be supplied together.
type UpdateArtifactRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Hint        *string  `json:"hint,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	MediaURL    *string  `json:"mediaUrl,omitempty"`
	Challenge   *bool    `json:"challenge,omitempty"`
}
