// Package quest implements the quest editing workflow: creation with
// placeholder locale text, scalar form saves, condition and reward
// mutations, and collection export/import.
package quest

import (
	"context"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/services/conversion"
)

//go:generate mockgen -destination=mock/mock_service.go -package=questmock github.com/sptforge/questforge/internal/services/quest Service

// CreateQuestInput contains parameters for creating a quest
type CreateQuestInput struct{}

// CreateQuestOutput contains the newly created quest
type CreateQuestOutput struct {
	Quest *spt.Quest
}

// GetQuestInput contains parameters for retrieving a quest
type GetQuestInput struct {
	QuestID string
}

// GetQuestOutput contains the retrieved quest
type GetQuestOutput struct {
	Quest *spt.Quest
}

// ListQuestsInput contains parameters for listing quests
type ListQuestsInput struct{}

// ListQuestsOutput contains the full quest collection
type ListQuestsOutput struct {
	Quests spt.QuestFile
}

// UpdateQuestInput carries the scalar quest attributes of a form save.
// Conditions and rewards are never touched by a top-level save; they have
// their own operations.
type UpdateQuestInput struct {
	QuestID string

	QuestName   string
	Trader      string
	Location    string
	Type        string
	Side        string
	Description string
	Image       string

	InstantComplete            bool
	Restartable                bool
	SecretQuest                bool
	IsKey                      bool
	CanShowNotificationsInGame bool

	// Locale fields; an empty value keeps the quest's previous text.
	AcceptPlayerMessage    string
	ChangeQuestMessageText string
	CompletePlayerMessage  string
	DeclinePlayerMessage   string
	FailMessageText        string
	Note                   string
	StartedMessageText     string
	SuccessMessageText     string
}

// UpdateQuestOutput contains the updated quest
type UpdateQuestOutput struct {
	Quest *spt.Quest
}

// DeleteQuestInput contains parameters for deleting a quest
type DeleteQuestInput struct {
	QuestID string
}

// DeleteQuestOutput contains the result of deleting a quest
type DeleteQuestOutput struct{}

// AddConditionInput adds a condition built from the form to the category
// the form names
type AddConditionInput struct {
	QuestID string
	Form    conversion.ConditionForm
}

// AddConditionOutput contains the stored condition
type AddConditionOutput struct {
	Condition spt.Condition
}

// UpdateConditionInput replaces the condition with the form's id. When the
// form's category differs from the condition's current one the condition
// moves: removed from the old list, appended to the new.
type UpdateConditionInput struct {
	QuestID     string
	ConditionID string
	Form        conversion.ConditionForm
}

// UpdateConditionOutput contains the stored condition
type UpdateConditionOutput struct {
	Condition spt.Condition
}

// DeleteConditionInput contains parameters for deleting a condition
type DeleteConditionInput struct {
	QuestID     string
	Category    string
	ConditionID string
}

// DeleteConditionOutput contains the result of deleting a condition
type DeleteConditionOutput struct{}

// AddRewardInput adds a reward built from the form to the timing the form
// names
type AddRewardInput struct {
	QuestID string
	Form    conversion.RewardForm
}

// AddRewardOutput contains the stored reward
type AddRewardOutput struct {
	Reward spt.Reward
}

// UpdateRewardInput replaces the reward with the form's id, moving it when
// the form's timing differs from the current one
type UpdateRewardInput struct {
	QuestID  string
	RewardID string
	Form     conversion.RewardForm
}

// UpdateRewardOutput contains the stored reward
type UpdateRewardOutput struct {
	Reward spt.Reward
}

// DeleteRewardInput contains parameters for deleting a reward
type DeleteRewardInput struct {
	QuestID  string
	Timing   string
	RewardID string
}

// DeleteRewardOutput contains the result of deleting a reward
type DeleteRewardOutput struct{}

// ExportQuestsInput contains parameters for exporting the collection
type ExportQuestsInput struct{}

// ExportQuestsOutput contains the serialized collection and the download
// filename
type ExportQuestsOutput struct {
	Data     []byte
	Filename string
}

// ExportQuestInput contains parameters for exporting a single quest
type ExportQuestInput struct {
	QuestID string
}

// ExportQuestOutput contains a single-quest file keyed by the quest id
type ExportQuestOutput struct {
	Data     []byte
	Filename string
}

// ImportQuestsInput contains the raw file content to import
type ImportQuestsInput struct {
	Data []byte
}

// ImportQuestsOutput reports how many quests were merged in
type ImportQuestsOutput struct {
	Imported int
}

// Service defines the quest editing operations
type Service interface {
	// CreateQuest creates a quest with generated id and editor defaults
	CreateQuest(ctx context.Context, input *CreateQuestInput) (*CreateQuestOutput, error)

	// GetQuest retrieves a quest by id
	GetQuest(ctx context.Context, input *GetQuestInput) (*GetQuestOutput, error)

	// ListQuests retrieves the full quest collection
	ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)

	// UpdateQuest replaces a quest's scalar attributes
	UpdateQuest(ctx context.Context, input *UpdateQuestInput) (*UpdateQuestOutput, error)

	// DeleteQuest removes a quest
	DeleteQuest(ctx context.Context, input *DeleteQuestInput) (*DeleteQuestOutput, error)

	// AddCondition builds a condition from the form and appends it
	AddCondition(ctx context.Context, input *AddConditionInput) (*AddConditionOutput, error)

	// UpdateCondition rebuilds a condition from the form, moving it across
	// categories when needed
	UpdateCondition(ctx context.Context, input *UpdateConditionInput) (*UpdateConditionOutput, error)

	// DeleteCondition removes a condition from a category
	DeleteCondition(ctx context.Context, input *DeleteConditionInput) (*DeleteConditionOutput, error)

	// AddReward builds a reward from the form and appends it
	AddReward(ctx context.Context, input *AddRewardInput) (*AddRewardOutput, error)

	// UpdateReward rebuilds a reward from the form, moving it across
	// timings when needed
	UpdateReward(ctx context.Context, input *UpdateRewardInput) (*UpdateRewardOutput, error)

	// DeleteReward removes a reward from a timing
	DeleteReward(ctx context.Context, input *DeleteRewardInput) (*DeleteRewardOutput, error)

	// ExportQuests serializes the whole collection
	ExportQuests(ctx context.Context, input *ExportQuestsInput) (*ExportQuestsOutput, error)

	// ExportQuest serializes a single quest keyed by its id
	ExportQuest(ctx context.Context, input *ExportQuestInput) (*ExportQuestOutput, error)

	// ImportQuests merges a quest file into the collection by id
	ImportQuests(ctx context.Context, input *ImportQuestsInput) (*ImportQuestsOutput, error)
}
