package quests

import (
	"context"
	"sync"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Used
// when no Redis endpoint is configured and in tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	quests spt.QuestFile
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		quests: spt.QuestFile{},
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a quest by id
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	quest, ok := r.quests[input.QuestID]
	if !ok {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}

	return &GetOutput{Quest: quest}, nil
}

// List retrieves the full quest collection
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(spt.QuestFile, len(r.quests))
	for id, quest := range r.quests {
		out[id] = quest
	}

	return &ListOutput{Quests: out}, nil
}

// Save upserts a quest keyed by its id
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Quest == nil {
		return nil, errors.InvalidArgument(errQuestNil)
	}
	if input.Quest.ID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.quests[input.Quest.ID] = input.Quest

	return &SaveOutput{}, nil
}

// Delete removes a quest by id
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.QuestID == "" {
		return nil, errors.InvalidArgument(errQuestIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quests[input.QuestID]; !ok {
		return nil, errors.NotFoundf("quest %s not found", input.QuestID)
	}

	delete(r.quests, input.QuestID)

	return &DeleteOutput{}, nil
}

// ReplaceAll swaps the stored collection for the given one
func (r *InMemoryRepository) ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.quests = spt.QuestFile{}
	for id, quest := range input.Quests {
		r.quests[id] = quest
	}

	return &ReplaceAllOutput{}, nil
}
