// Package presets provides repository interface and types for weapon
// preset storage
package presets

import (
	"context"

	"github.com/sptforge/questforge/internal/entities/spt"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=presetsmock github.com/sptforge/questforge/internal/repositories/presets Repository

// GetInput contains parameters for retrieving a preset
type GetInput struct {
	PresetID string
}

// GetOutput contains the result of retrieving a preset
type GetOutput struct {
	Preset *spt.WeaponPreset
}

// ListInput contains parameters for listing presets
type ListInput struct{}

// ListOutput contains the full preset collection keyed by id
type ListOutput struct {
	Presets spt.PresetFile
}

// SaveInput contains parameters for upserting a preset
type SaveInput struct {
	Preset *spt.WeaponPreset
}

// SaveOutput contains the result of upserting a preset
type SaveOutput struct{}

// DeleteInput contains parameters for deleting a preset
type DeleteInput struct {
	PresetID string
}

// DeleteOutput contains the result of deleting a preset
type DeleteOutput struct{}

// ReplaceAllInput contains the collection that replaces the stored one
type ReplaceAllInput struct {
	Presets spt.PresetFile
}

// ReplaceAllOutput contains the result of replacing the collection
type ReplaceAllOutput struct{}

// Repository defines the interface for weapon preset storage operations
type Repository interface {
	// Get retrieves a preset by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves the full preset collection
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save upserts a preset keyed by its id
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a preset by id
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ReplaceAll swaps the stored collection for the given one
	ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error)
}
