package conversion

import (
	"fmt"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/pkg/idgen"
)

// rewardConverter is the concrete implementation of RewardConverter
type rewardConverter struct {
	idGen idgen.Generator
}

// RewardConverterConfig holds the configuration for creating a reward
// converter
type RewardConverterConfig struct {
	IDGenerator idgen.Generator
}

// Validate ensures the configuration is valid
func (c *RewardConverterConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.IDGenerator == nil {
		return fmt.Errorf("id generator is required")
	}
	return nil
}

// NewRewardConverter creates a new reward converter instance
func NewRewardConverter(cfg *RewardConverterConfig) (RewardConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &rewardConverter{
		idGen: cfg.IDGenerator,
	}, nil
}

func (c *rewardConverter) FromForm(form *RewardForm) (spt.Reward, error) {
	if form == nil {
		return nil, errors.InvalidArgument("reward form is required")
	}

	id := form.ID
	if id == "" {
		id = c.idGen.Generate()
	}
	// The stored flag means "hidden until revealed", the form checkbox
	// means "show this reward". Polarity flips on the way in only.
	base := spt.NewRewardBase(form.Type, id, form.Index, !form.Unknown)

	switch form.Type {
	case "Achievement":
		return &spt.AchievementReward{
			RewardBase: base,
			Target:     form.AchievementID,
		}, nil

	case "AssortmentUnlock":
		itemID := c.idGen.Generate()
		return &spt.AssortmentUnlockReward{
			RewardBase: base,
			Items: []spt.RewardItem{{
				ID:  itemID,
				Tpl: form.ItemTpl,
			}},
			LoyaltyLevel: intOr(form.LoyaltyLevel, 1),
			Target:       itemID,
			TraderID:     spt.TraderID(form.Trader),
		}, nil

	case "Experience":
		return &spt.ExperienceReward{
			RewardBase: base,
			Value:      int(form.Value),
		}, nil

	case "Item":
		itemID := c.idGen.Generate()
		count := intOr(int(form.Value), 1)
		return &spt.ItemReward{
			RewardBase: base,
			FindInRaid: form.FindInRaid,
			Items: []spt.RewardItem{{
				ID:  itemID,
				Tpl: form.ItemTpl,
				Upd: &spt.RewardItemUpd{StackObjectsCount: &count},
			}},
			Target: itemID,
			Value:  count,
		}, nil

	case "Skill":
		return &spt.SkillReward{
			RewardBase: base,
			Target:     form.Skill,
			Value:      int(form.Value),
		}, nil

	case "StashRows":
		return &spt.StashRowsReward{
			RewardBase: base,
			Value:      intOr(int(form.Value), 1),
		}, nil

	case "TraderStanding":
		return &spt.TraderStandingReward{
			RewardBase: base,
			Target:     spt.TraderID(form.Trader),
			Value:      form.Value,
		}, nil

	case "TraderUnlock":
		return &spt.TraderUnlockReward{
			RewardBase: base,
			Target:     spt.TraderID(form.Trader),
		}, nil

	default:
		return nil, errors.InvalidArgumentf("unknown reward type %q", form.Type)
	}
}

func (c *rewardConverter) ToForm(reward spt.Reward) (*RewardForm, error) {
	if reward == nil {
		return nil, errors.InvalidArgument("reward is required")
	}

	form := &RewardForm{Type: reward.Kind(), ID: reward.RewardID()}

	switch v := reward.(type) {
	case *spt.AchievementReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.AchievementID = v.Target

	case *spt.AssortmentUnlockReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.Trader = spt.TraderName(v.TraderID)
		form.LoyaltyLevel = intOr(v.LoyaltyLevel, 1)
		if len(v.Items) > 0 {
			form.ItemTpl = v.Items[0].Tpl
		}

	case *spt.ExperienceReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.Value = float64(v.Value)

	case *spt.ItemReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.FindInRaid = v.FindInRaid
		form.Value = float64(intOr(v.Value, 1))
		if len(v.Items) > 0 {
			form.ItemTpl = v.Items[0].Tpl
		}

	case *spt.SkillReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.Skill = v.Target
		form.Value = float64(v.Value)

	case *spt.StashRowsReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.Value = float64(v.Value)

	case *spt.TraderStandingReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.Trader = spt.TraderName(v.Target)
		form.Value = v.Value

	case *spt.TraderUnlockReward:
		form.Index = v.Index
		form.Unknown = v.Unknown
		form.Trader = spt.TraderName(v.Target)

	default:
		return nil, errors.InvalidArgumentf("unknown reward type %q", reward.Kind())
	}

	return form, nil
}
