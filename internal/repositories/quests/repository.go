// Package quests provides repository interface and types for quest storage
package quests

import (
	"context"

	"github.com/sptforge/questforge/internal/entities/spt"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=questsmock github.com/sptforge/questforge/internal/repositories/quests Repository

// GetInput contains parameters for retrieving a quest
type GetInput struct {
	QuestID string
}

// GetOutput contains the result of retrieving a quest
type GetOutput struct {
	Quest *spt.Quest
}

// ListInput contains parameters for listing quests
type ListInput struct{}

// ListOutput contains the full quest collection keyed by id
type ListOutput struct {
	Quests spt.QuestFile
}

// SaveInput contains parameters for upserting a quest
type SaveInput struct {
	Quest *spt.Quest
}

// SaveOutput contains the result of upserting a quest
type SaveOutput struct{}

// DeleteInput contains parameters for deleting a quest
type DeleteInput struct {
	QuestID string
}

// DeleteOutput contains the result of deleting a quest
type DeleteOutput struct{}

// ReplaceAllInput contains the collection that replaces the stored one
type ReplaceAllInput struct {
	Quests spt.QuestFile
}

// ReplaceAllOutput contains the result of replacing the collection
type ReplaceAllOutput struct{}

// Repository defines the interface for quest storage operations
type Repository interface {
	// Get retrieves a quest by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves the full quest collection
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save upserts a quest keyed by its id
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a quest by id
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ReplaceAll swaps the stored collection for the given one
	ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error)
}
