package quests

import (
	"context"
	"encoding/json"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	redisclient "github.com/sptforge/questforge/internal/redis"
)

const (
	// The whole collection lives in one key; editing sessions touch a
	// handful of quests and always want the full set anyway.
	questsKey = "questforge:quests"

	errQuestNil     = "quest cannot be nil"
	errQuestIDEmpty = "quest ID cannot be empty"
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

// NewRedisRepository creates a new Redis repository for quests
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

// load reads the stored collection. A missing or unreadable blob yields an
// empty collection rather than an error so a fresh or damaged store is
// usable immediately.
func (r *redisRepository) load(ctx context.Context) (spt.QuestFile, error) {
	data, err := r.client.Get(ctx, questsKey).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return spt.QuestFile{}, nil
		}
		return nil, errors.Wrap(err, "failed to read quests from Redis")
	}

	var quests spt.QuestFile
	if err := json.Unmarshal([]byte(data), &quests); err != nil {
		return spt.QuestFile{}, nil
	}
	if quests == nil {
		quests = spt.QuestFile{}
	}
	return quests, nil
}

func (r *redisRepository) store(ctx context.Context, quests spt.QuestFile) error {
	data, err := json.Marshal(quests)
	if err != nil {
		return errors.Wrap(err, "failed to marshal quests")
	}
	if err := r.client.Set(ctx, questsKey, data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to write quests to Redis")
	}
	return nil
}

// Get retrieves a quest by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	quests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	quest, ok := quests[input.QuestID]
	if !ok {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}

	return &GetOutput{Quest: quest}, nil
}

// List retrieves the full quest collection
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	quests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Quests: quests}, nil
}

// Save upserts a quest keyed by its id
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Quest == nil {
		return nil, errors.InvalidArgument(errQuestNil)
	}
	if input.Quest.ID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	quests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	quests[input.Quest.ID] = input.Quest
	if err := r.store(ctx, quests); err != nil {
		return nil, err
	}

	return &SaveOutput{}, nil
}

// Delete removes a quest by id
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	quests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if _, ok := quests[input.QuestID]; !ok {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}

	delete(quests, input.QuestID)
	if err := r.store(ctx, quests); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

// ReplaceAll swaps the stored collection for the given one
func (r *redisRepository) ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error) {
	quests := input.Quests
	if quests == nil {
		quests = spt.QuestFile{}
	}

	if err := r.store(ctx, quests); err != nil {
		return nil, err
	}

	return &ReplaceAllOutput{}, nil
}
