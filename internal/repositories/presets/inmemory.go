package presets

import (
	"context"
	"sync"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Used
// when no Redis endpoint is configured and in tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	presets spt.PresetFile
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		presets: spt.PresetFile{},
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a preset by id
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PresetID == "" {
		return nil, errors.InvalidArgument(errPresetIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	preset, ok := r.presets[input.PresetID]
	if !ok {
		return nil, errors.NotFoundf("preset %s not found", input.PresetID)
	}

	return &GetOutput{Preset: preset}, nil
}

// List retrieves the full preset collection
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(spt.PresetFile, len(r.presets))
	for id, preset := range r.presets {
		out[id] = preset
	}

	return &ListOutput{Presets: out}, nil
}

// Save upserts a preset keyed by its id
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Preset == nil {
		return nil, errors.InvalidArgument(errPresetNil)
	}
	if input.Preset.ID == "" {
		return nil, errors.InvalidArgument(errPresetIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.presets[input.Preset.ID] = input.Preset

	return &SaveOutput{}, nil
}

// Delete removes a preset by id
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PresetID == "" {
		return nil, errors.InvalidArgument(errPresetIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.presets[input.PresetID]; !ok {
		return nil, errors.NotFoundf("preset %s not found", input.PresetID)
	}

	delete(r.presets, input.PresetID)

	return &DeleteOutput{}, nil
}

// ReplaceAll swaps the stored collection for the given one
func (r *InMemoryRepository) ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.presets = spt.PresetFile{}
	for id, preset := range input.Presets {
		r.presets[id] = preset
	}

	return &ReplaceAllOutput{}, nil
}
