package presets

import (
	"context"
	"encoding/json"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	redisclient "github.com/sptforge/questforge/internal/redis"
)

const (
	presetsKey = "questforge:presets"

	errPresetNil     = "preset cannot be nil"
	errPresetIDEmpty = "preset ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for weapon presets
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) load(ctx context.Context) (spt.PresetFile, error) {
	data, err := r.client.Get(ctx, presetsKey).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return spt.PresetFile{}, nil
		}
		return nil, errors.Wrap(err, "failed to read presets from Redis")
	}

	var presets spt.PresetFile
	if err := json.Unmarshal([]byte(data), &presets); err != nil {
		return spt.PresetFile{}, nil
	}
	if presets == nil {
		presets = spt.PresetFile{}
	}
	return presets, nil
}

func (r *redisRepository) store(ctx context.Context, presets spt.PresetFile) error {
	data, err := json.Marshal(presets)
	if err != nil {
		return errors.Wrap(err, "failed to marshal presets")
	}
	if err := r.client.Set(ctx, presetsKey, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to write presets to Redis")
	}
	return nil
}

// Get retrieves a preset by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PresetID == "" {
		return nil, errors.InvalidArgument(errPresetIDEmpty)
	}

	presets, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	preset, ok := presets[input.PresetID]
	if !ok {
		return nil, errors.NotFoundf("preset %s not found", input.PresetID)
	}

	return &GetOutput{Preset: preset}, nil
}

// List retrieves the full preset collection
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	presets, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Presets: presets}, nil
}

// Save upserts a preset keyed by its id
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Preset == nil {
		return nil, errors.InvalidArgument(errPresetNil)
	}
	if input.Preset.ID == "" {
		return nil, errors.InvalidArgument(errPresetIDEmpty)
	}

	presets, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	presets[input.Preset.ID] = input.Preset
	if err := r.store(ctx, presets); err != nil {
		return nil, err
	}

	return &SaveOutput{}, nil
}

// Delete removes a preset by id
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PresetID == "" {
		return nil, errors.InvalidArgument(errPresetIDEmpty)
	}

	presets, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := presets[input.PresetID]; !ok {
		return nil, errors.NotFoundf("preset %s not found", input.PresetID)
	}

	delete(presets, input.PresetID)
	if err := r.store(ctx, presets); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

// ReplaceAll swaps the stored collection for the given one
func (r *redisRepository) ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error) {
	presets := input.Presets
	if presets == nil {
		presets = spt.PresetFile{}
	}

	if err := r.store(ctx, presets); err != nil {
		return nil, err
	}

	return &ReplaceAllOutput{}, nil
}
