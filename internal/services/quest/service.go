package quest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/pkg/idgen"
	"github.com/sptforge/questforge/internal/repositories/quests"
	"github.com/sptforge/questforge/internal/services/conversion"
)

// DefaultQuestImage is the icon path stamped onto new quests.
const DefaultQuestImage = "/files/quest/icon/quest.png"

// QuestsFilename is the download name for a full collection export.
const QuestsFilename = "quests.json"

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Config holds the dependencies for the quest service
type Config struct {
	Repository quests.Repository
	Conditions conversion.ConditionConverter
	Rewards    conversion.RewardConverter
	IDGen      idgen.Generator
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Conditions == nil {
		return fmt.Errorf("condition converter is required")
	}
	if c.Rewards == nil {
		return fmt.Errorf("reward converter is required")
	}
	if c.IDGen == nil {
		return fmt.Errorf("id generator is required")
	}
	return nil
}

type service struct {
	repo       quests.Repository
	conditions conversion.ConditionConverter
	rewards    conversion.RewardConverter
	idGen      idgen.Generator
	log        *slog.Logger
}

// NewService creates a new quest service instance
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &service{
		repo:       cfg.Repository,
		conditions: cfg.Conditions,
		rewards:    cfg.Rewards,
		idGen:      cfg.IDGen,
		log:        log,
	}, nil
}

// Ensure service implements Service
var _ Service = (*service)(nil)

// persist writes a quest back to storage. Write failures are logged and
// swallowed; the mutated quest is still returned to the caller.
func (s *service) persist(ctx context.Context, quest *spt.Quest) {
	if _, err := s.repo.Save(ctx, quests.SaveInput{Quest: quest}); err != nil {
		s.log.Error("failed to persist quest", "quest_id", quest.ID, "error", err)
	}
}

func (s *service) CreateQuest(ctx context.Context, input *CreateQuestInput) (*CreateQuestOutput, error) {
	id := s.idGen.Generate()
	messages := spt.DefaultMessages(id)

	quest := &spt.Quest{
		ID:                         id,
		QuestName:                  "New Quest",
		AcceptPlayerMessage:        messages.AcceptPlayerMessage,
		ChangeQuestMessageText:     messages.ChangeQuestMessageText,
		CompletePlayerMessage:      messages.CompletePlayerMessage,
		DeclinePlayerMessage:       messages.DeclinePlayerMessage,
		Description:                messages.Description,
		FailMessageText:            messages.FailMessageText,
		Name:                       messages.Name,
		Note:                       messages.Note,
		StartedMessageText:         messages.StartedMessageText,
		SuccessMessageText:         messages.SuccessMessageText,
		CanShowNotificationsInGame: true,
		Conditions:                 spt.NewQuestConditions(),
		Rewards:                    spt.NewQuestRewards(),
		Image:                      DefaultQuestImage,
		Location:                   "any",
		Side:                       "pmc",
		TraderID:                   spt.Traders[spt.DefaultTrader],
		Type:                       "PickUp",
	}

	s.persist(ctx, quest)
	s.log.Info("created quest", "quest_id", id)

	return &CreateQuestOutput{Quest: quest}, nil
}

func (s *service) GetQuest(ctx context.Context, input *GetQuestInput) (*GetQuestOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}

	return &GetQuestOutput{Quest: out.Quest}, nil
}

func (s *service) ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error) {
	out, err := s.repo.List(ctx, quests.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListQuestsOutput{Quests: out.Quests}, nil
}

func (s *service) UpdateQuest(ctx context.Context, input *UpdateQuestInput) (*UpdateQuestOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	quest.QuestName = input.QuestName
	quest.TraderID = spt.TraderID(input.Trader)
	quest.Location = input.Location
	quest.Type = input.Type
	quest.Side = input.Side
	quest.Description = input.Description
	quest.Image = orPrevious(input.Image, DefaultQuestImage)

	quest.InstantComplete = input.InstantComplete
	quest.Restartable = input.Restartable
	quest.SecretQuest = input.SecretQuest
	quest.IsKey = input.IsKey
	quest.CanShowNotificationsInGame = input.CanShowNotificationsInGame

	// Locale fields keep their previous text when the form leaves them
	// empty.
	quest.AcceptPlayerMessage = orPrevious(input.AcceptPlayerMessage, quest.AcceptPlayerMessage)
	quest.ChangeQuestMessageText = orPrevious(input.ChangeQuestMessageText, quest.ChangeQuestMessageText)
	quest.CompletePlayerMessage = orPrevious(input.CompletePlayerMessage, quest.CompletePlayerMessage)
	quest.DeclinePlayerMessage = orPrevious(input.DeclinePlayerMessage, quest.DeclinePlayerMessage)
	quest.FailMessageText = orPrevious(input.FailMessageText, quest.FailMessageText)
	quest.Note = orPrevious(input.Note, quest.Note)
	quest.StartedMessageText = orPrevious(input.StartedMessageText, quest.StartedMessageText)
	quest.SuccessMessageText = orPrevious(input.SuccessMessageText, quest.SuccessMessageText)

	s.persist(ctx, quest)
	s.log.Info("updated quest", "quest_id", quest.ID)

	return &UpdateQuestOutput{Quest: quest}, nil
}

func (s *service) DeleteQuest(ctx context.Context, input *DeleteQuestInput) (*DeleteQuestOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	if _, err := s.repo.Delete(ctx, quests.DeleteInput{QuestID: input.QuestID}); err != nil {
		return nil, err
	}

	s.log.Info("deleted quest", "quest_id", input.QuestID)
	return &DeleteQuestOutput{}, nil
}

func (s *service) AddCondition(ctx context.Context, input *AddConditionInput) (*AddConditionOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	list := quest.Conditions.List(input.Form.Category)
	if list == nil {
		return nil, errors.InvalidArgumentf("unknown condition category %q", input.Form.Category)
	}

	cond, err := s.conditions.FromForm(&input.Form)
	if err != nil {
		return nil, err
	}

	*list = append(*list, cond)
	s.persist(ctx, quest)
	s.log.Info("added condition", "quest_id", quest.ID, "condition_type", cond.Kind())

	return &AddConditionOutput{Condition: cond}, nil
}

func (s *service) UpdateCondition(ctx context.Context, input *UpdateConditionInput) (*UpdateConditionOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}
	if input.ConditionID == "" {
		return nil, errors.InvalidArgument("condition ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	newList := quest.Conditions.List(input.Form.Category)
	if newList == nil {
		return nil, errors.InvalidArgumentf("unknown condition category %q", input.Form.Category)
	}

	oldCategory, index := findCondition(&quest.Conditions, input.ConditionID)
	if oldCategory == "" {
		return nil, errors.NotFoundf("condition %s not found", input.ConditionID)
	}

	form := input.Form
	form.ID = input.ConditionID
	cond, err := s.conditions.FromForm(&form)
	if err != nil {
		return nil, err
	}

	if oldCategory == input.Form.Category {
		(*newList)[index] = cond
	} else {
		oldList := quest.Conditions.List(oldCategory)
		*oldList = append((*oldList)[:index], (*oldList)[index+1:]...)
		*newList = append(*newList, cond)
	}

	s.persist(ctx, quest)
	s.log.Info("updated condition", "quest_id", quest.ID, "condition_id", input.ConditionID)

	return &UpdateConditionOutput{Condition: cond}, nil
}

func (s *service) DeleteCondition(ctx context.Context, input *DeleteConditionInput) (*DeleteConditionOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	list := quest.Conditions.List(input.Category)
	if list == nil {
		return nil, errors.InvalidArgumentf("unknown condition category %q", input.Category)
	}

	kept := make(spt.ConditionList, 0, len(*list))
	found := false
	for _, cond := range *list {
		if cond.ConditionID() == input.ConditionID {
			found = true
			continue
		}
		kept = append(kept, cond)
	}
	if !found {
		return nil, errors.NotFoundf("condition %s not found", input.ConditionID)
	}

	*list = kept
	s.persist(ctx, quest)
	s.log.Info("deleted condition", "quest_id", quest.ID, "condition_id", input.ConditionID)

	return &DeleteConditionOutput{}, nil
}

func (s *service) AddReward(ctx context.Context, input *AddRewardInput) (*AddRewardOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	list := quest.Rewards.List(input.Form.Timing)
	if list == nil {
		return nil, errors.InvalidArgumentf("unknown reward timing %q", input.Form.Timing)
	}

	reward, err := s.rewards.FromForm(&input.Form)
	if err != nil {
		return nil, err
	}

	*list = append(*list, reward)
	s.persist(ctx, quest)
	s.log.Info("added reward", "quest_id", quest.ID, "reward_type", reward.Kind())

	return &AddRewardOutput{Reward: reward}, nil
}

func (s *service) UpdateReward(ctx context.Context, input *UpdateRewardInput) (*UpdateRewardOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}
	if input.RewardID == "" {
		return nil, errors.InvalidArgument("reward ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	newList := quest.Rewards.List(input.Form.Timing)
	if newList == nil {
		return nil, errors.InvalidArgumentf("unknown reward timing %q", input.Form.Timing)
	}

	oldTiming, index := findReward(&quest.Rewards, input.RewardID)
	if oldTiming == "" {
		return nil, errors.NotFoundf("reward %s not found", input.RewardID)
	}

	form := input.Form
	form.ID = input.RewardID
	reward, err := s.rewards.FromForm(&form)
	if err != nil {
		return nil, err
	}

	if oldTiming == input.Form.Timing {
		(*newList)[index] = reward
	} else {
		oldList := quest.Rewards.List(oldTiming)
		*oldList = append((*oldList)[:index], (*oldList)[index+1:]...)
		*newList = append(*newList, reward)
	}

	s.persist(ctx, quest)
	s.log.Info("updated reward", "quest_id", quest.ID, "reward_id", input.RewardID)

	return &UpdateRewardOutput{Reward: reward}, nil
}

func (s *service) DeleteReward(ctx context.Context, input *DeleteRewardInput) (*DeleteRewardOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	list := quest.Rewards.List(input.Timing)
	if list == nil {
		return nil, errors.InvalidArgumentf("unknown reward timing %q", input.Timing)
	}

	kept := make(spt.RewardList, 0, len(*list))
	found := false
	for _, reward := range *list {
		if reward.RewardID() == input.RewardID {
			found = true
			continue
		}
		kept = append(kept, reward)
	}
	if !found {
		return nil, errors.NotFoundf("reward %s not found", input.RewardID)
	}

	*list = kept
	s.persist(ctx, quest)
	s.log.Info("deleted reward", "quest_id", quest.ID, "reward_id", input.RewardID)

	return &DeleteRewardOutput{}, nil
}

func (s *service) ExportQuests(ctx context.Context, input *ExportQuestsInput) (*ExportQuestsOutput, error) {
	out, err := s.repo.List(ctx, quests.ListInput{})
	if err != nil {
		return nil, err
	}
	if len(out.Quests) == 0 {
		return nil, errors.FailedPrecondition("no quests to export")
	}

	data, err := json.MarshalIndent(out.Quests, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal quests")
	}

	return &ExportQuestsOutput{Data: data, Filename: QuestsFilename}, nil
}

func (s *service) ExportQuest(ctx context.Context, input *ExportQuestInput) (*ExportQuestOutput, error) {
	if input == nil || input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	out, err := s.repo.Get(ctx, quests.GetInput{QuestID: input.QuestID})
	if err != nil {
		return nil, err
	}
	quest := out.Quest

	data, err := json.MarshalIndent(spt.QuestFile{quest.ID: quest}, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal quest")
	}

	return &ExportQuestOutput{
		Data:     data,
		Filename: SanitizeFilename(quest.QuestName) + "_quest.json",
	}, nil
}

func (s *service) ImportQuests(ctx context.Context, input *ImportQuestsInput) (*ImportQuestsOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("import data is required")
	}

	var imported spt.QuestFile
	if err := json.Unmarshal(input.Data, &imported); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid quest file")
	}

	out, err := s.repo.List(ctx, quests.ListInput{})
	if err != nil {
		return nil, err
	}

	merged := out.Quests
	if merged == nil {
		merged = spt.QuestFile{}
	}
	for id, quest := range imported {
		merged[id] = quest
	}

	if _, err := s.repo.ReplaceAll(ctx, quests.ReplaceAllInput{Quests: merged}); err != nil {
		s.log.Error("failed to persist imported quests", "error", err)
	}
	s.log.Info("imported quests", "count", len(imported))

	return &ImportQuestsOutput{Imported: len(imported)}, nil
}

// findCondition locates a condition by id across all categories.
func findCondition(conditions *spt.QuestConditions, id string) (category string, index int) {
	for _, cat := range []string{
		spt.CategoryAvailableForStart,
		spt.CategoryAvailableForFinish,
		spt.CategoryFail,
	} {
		list := conditions.List(cat)
		for i, cond := range *list {
			if cond.ConditionID() == id {
				return cat, i
			}
		}
	}
	return "", 0
}

// findReward locates a reward by id across all timings.
func findReward(rewards *spt.QuestRewards, id string) (timing string, index int) {
	for _, t := range []string{spt.TimingSuccess, spt.TimingStarted, spt.TimingFail} {
		list := rewards.List(t)
		for i, reward := range *list {
			if reward.RewardID() == id {
				return t, i
			}
		}
	}
	return "", 0
}

// SanitizeFilename replaces every non-alphanumeric character with an
// underscore, matching the download names the game community expects.
func SanitizeFilename(name string) string {
	return filenameSanitizer.ReplaceAllString(name, "_")
}

func orPrevious(value, previous string) string {
	if value == "" {
		return previous
	}
	return value
}
