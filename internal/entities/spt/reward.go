package spt

import "encoding/json"

// Reward is implemented by every reward variant. The discriminator lives
// in the serialized document as "type".
type Reward interface {
	Kind() string
	RewardID() string
}

// RewardBase holds the fields shared by every reward variant. Unknown is
// the "hide reward until revealed" flag; note its polarity is inverted
// relative to the editing form's hide-reward checkbox (see conversion).
type RewardBase struct {
	AvailableInGameEditions []string `json:"availableInGameEditions"`
	ID                      string   `json:"id"`
	Index                   int      `json:"index"`
	Type                    string   `json:"type"`
	Unknown                 bool     `json:"unknown"`
}

// Kind returns the reward discriminator.
func (b *RewardBase) Kind() string { return b.Type }

// RewardID returns the reward's document id.
func (b *RewardBase) RewardID() string { return b.ID }

// NewRewardBase builds the common fields for a reward document.
func NewRewardBase(kind, id string, index int, unknown bool) RewardBase {
	return RewardBase{
		AvailableInGameEditions: []string{},
		ID:                      id,
		Index:                   index,
		Type:                    kind,
		Unknown:                 unknown,
	}
}

// RewardItemUpd carries the mutable state of a reward item.
type RewardItemUpd struct {
	SpawnedInSession  *bool `json:"SpawnedInSession,omitempty"`
	StackObjectsCount *int  `json:"StackObjectsCount,omitempty"`
}

// RewardItem is an item document nested inside Item and AssortmentUnlock
// rewards.
type RewardItem struct {
	ID       string         `json:"_id"`
	Tpl      string         `json:"_tpl"`
	ParentID string         `json:"parentId,omitempty"`
	SlotID   string         `json:"slotId,omitempty"`
	Upd      *RewardItemUpd `json:"upd,omitempty"`
}

// AchievementReward grants an achievement.
type AchievementReward struct {
	RewardBase
	Target string `json:"target"`
}

// AssortmentUnlockReward unlocks a trader assort item for purchase.
type AssortmentUnlockReward struct {
	RewardBase
	Items        []RewardItem `json:"items"`
	LoyaltyLevel int          `json:"loyaltyLevel"`
	Target       string       `json:"target"`
	TraderID     string       `json:"traderId"`
}

// ExperienceReward grants experience points.
type ExperienceReward struct {
	RewardBase
	Value int `json:"value"`
}

// ItemReward grants a stack of items.
type ItemReward struct {
	RewardBase
	FindInRaid bool         `json:"findInRaid"`
	Items      []RewardItem `json:"items"`
	Target     string       `json:"target"`
	Value      int          `json:"value"`
}

// SkillReward grants skill points.
type SkillReward struct {
	RewardBase
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// StashRowsReward grants additional stash rows.
type StashRowsReward struct {
	RewardBase
	Value int `json:"value"`
}

// TraderStandingReward shifts standing with a trader; the delta may be
// fractional.
type TraderStandingReward struct {
	RewardBase
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// TraderUnlockReward unlocks a trader.
type TraderUnlockReward struct {
	RewardBase
	Target string `json:"target"`
}

// RawReward preserves reward documents whose discriminator this package
// does not model.
type RawReward map[string]any

// Kind returns the raw document's type, if present.
func (r RawReward) Kind() string {
	s, _ := r["type"].(string)
	return s
}

// RewardID returns the raw document's id, if present.
func (r RawReward) RewardID() string {
	s, _ := r["id"].(string)
	return s
}

// RewardList holds one timing's rewards in document order and unmarshals
// each element into its concrete variant type.
type RewardList []Reward

// UnmarshalJSON dispatches each element on its type field. Elements with
// an unmodeled discriminator are kept as RawReward.
func (l *RewardList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(RewardList, 0, len(raws))
	for _, raw := range raws {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return err
		}

		var (
			reward Reward
			err    error
		)
		switch head.Type {
		case "Achievement":
			v := &AchievementReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "AssortmentUnlock":
			v := &AssortmentUnlockReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "Experience":
			v := &ExperienceReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "Item":
			v := &ItemReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "Skill":
			v := &SkillReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "StashRows":
			v := &StashRowsReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "TraderStanding":
			v := &TraderStandingReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		case "TraderUnlock":
			v := &TraderUnlockReward{}
			err = json.Unmarshal(raw, v)
			reward = v
		default:
			v := RawReward{}
			err = json.Unmarshal(raw, &v)
			reward = v
		}
		if err != nil {
			return err
		}
		out = append(out, reward)
	}

	*l = out
	return nil
}

// QuestRewards groups a quest's rewards by timing.
type QuestRewards struct {
	Fail    RewardList `json:"Fail"`
	Started RewardList `json:"Started"`
	Success RewardList `json:"Success"`
}

// NewQuestRewards returns empty reward lists for all timings.
func NewQuestRewards() QuestRewards {
	return QuestRewards{
		Fail:    RewardList{},
		Started: RewardList{},
		Success: RewardList{},
	}
}

// List returns the reward list for a timing, or nil for an unknown timing.
func (r *QuestRewards) List(timing string) *RewardList {
	switch timing {
	case TimingSuccess:
		return &r.Success
	case TimingStarted:
		return &r.Started
	case TimingFail:
		return &r.Fail
	default:
		return nil
	}
}
