package spt

import (
	"encoding/json"
	"fmt"
)

// Condition is implemented by every quest condition variant. The concrete
// type carries the variant-specific fields; the discriminator lives in the
// serialized document as "conditionType".
type Condition interface {
	Kind() string
	ConditionID() string
}

// ConditionBase holds the fields shared by every condition variant.
type ConditionBase struct {
	ConditionType        string `json:"conditionType"`
	DynamicLocale        bool   `json:"dynamicLocale"`
	GlobalQuestCounterID string `json:"globalQuestCounterId"`
	ID                   string `json:"id"`
	Index                int    `json:"index"`
	ParentID             string `json:"parentId"`
	VisibilityConditions []any  `json:"visibilityConditions"`
}

// Kind returns the condition discriminator.
func (b *ConditionBase) Kind() string { return b.ConditionType }

// ConditionID returns the condition's document id.
func (b *ConditionBase) ConditionID() string { return b.ID }

// NewConditionBase builds the common fields for a condition document.
func NewConditionBase(kind, id string, index int) ConditionBase {
	return ConditionBase{
		ConditionType:        kind,
		ID:                   id,
		Index:                index,
		VisibilityConditions: []any{},
	}
}

// TimeRange bounds a daytime window on elimination conditions.
type TimeRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Comparison pairs a compare method with a threshold value.
type Comparison struct {
	CompareMethod string `json:"compareMethod"`
	Value         int    `json:"value"`
}

// CounterCondition is implemented by the sub-condition variants nested
// inside a CounterCreator counter.
type CounterCondition interface {
	SubKind() string
}

// CounterConditionBase holds the fields shared by counter sub-conditions.
type CounterConditionBase struct {
	ConditionType string `json:"conditionType"`
	DynamicLocale bool   `json:"dynamicLocale"`
	ID            string `json:"id"`
}

// SubKind returns the sub-condition discriminator.
func (b *CounterConditionBase) SubKind() string { return b.ConditionType }

// KillsCondition counts eliminations of a target, optionally restricted by
// body part and weapon.
type KillsCondition struct {
	CounterConditionBase
	BodyPart                []string   `json:"bodyPart,omitempty"`
	Daytime                 TimeRange  `json:"daytime"`
	Distance                Comparison `json:"distance"`
	EnemyEquipmentExclusive []string   `json:"enemyEquipmentExclusive"`
	EnemyEquipmentInclusive []string   `json:"enemyEquipmentInclusive"`
	EnemyHealthEffects      []string   `json:"enemyHealthEffects"`
	ResetOnSessionEnd       bool       `json:"resetOnSessionEnd"`
	SavageRole              []string   `json:"savageRole,omitempty"`
	Target                  string     `json:"target"`
	Weapon                  []string   `json:"weapon"`
	WeaponCaliber           []string   `json:"weaponCaliber"`
	WeaponModsExclusive     []string   `json:"weaponModsExclusive"`
	WeaponModsInclusive     []string   `json:"weaponModsInclusive"`
}

// ExitNameCondition counts raids ended at a named extraction point.
type ExitNameCondition struct {
	CounterConditionBase
	ExitName string `json:"exitName"`
}

// ExitStatusCondition counts raids ended with one of the given outcomes.
type ExitStatusCondition struct {
	CounterConditionBase
	Status []string `json:"status"`
}

// LocationCondition counts raids in the given locations.
type LocationCondition struct {
	CounterConditionBase
	Location []string `json:"location"`
}

// VisitPlaceCounterCondition counts visits to a named place.
type VisitPlaceCounterCondition struct {
	CounterConditionBase
	Target string `json:"target"`
}

// Counter nests exactly one counter sub-condition under its own id.
type Counter struct {
	Conditions CounterConditionList `json:"conditions"`
	ID         string               `json:"id"`
}

// CounterConditionList unmarshals counter sub-conditions into their
// concrete variant types.
type CounterConditionList []CounterCondition

// UnmarshalJSON dispatches each element on its conditionType.
func (l *CounterConditionList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(CounterConditionList, 0, len(raws))
	for _, raw := range raws {
		var head struct {
			ConditionType string `json:"conditionType"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return err
		}

		var (
			cond CounterCondition
			err  error
		)
		switch head.ConditionType {
		case "Kills":
			v := &KillsCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "ExitName":
			v := &ExitNameCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "ExitStatus":
			v := &ExitStatusCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "Location":
			v := &LocationCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "VisitPlace":
			v := &VisitPlaceCounterCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		default:
			return fmt.Errorf("unknown counter condition type %q", head.ConditionType)
		}
		if err != nil {
			return err
		}
		out = append(out, cond)
	}

	*l = out
	return nil
}

// CounterCreatorCondition tracks a counter of sub-condition events. Its
// quest-type field is Completion, Elimination, or Exploration depending
// on the nested sub-condition kind.
type CounterCreatorCondition struct {
	ConditionBase
	Counter        Counter `json:"counter"`
	OneSessionOnly bool    `json:"oneSessionOnly"`
	Type           string  `json:"type"`
	Value          int     `json:"value"`
}

// ItemCondition covers both the FindItem and HandoverItem discriminators;
// the two share an identical field set.
type ItemCondition struct {
	ConditionBase
	CountInRaid     bool     `json:"countInRaid"`
	DogtagLevel     int      `json:"dogtagLevel"`
	IsEncoded       bool     `json:"isEncoded"`
	MaxDurability   int      `json:"maxDurability"`
	MinDurability   int      `json:"minDurability"`
	OnlyFoundInRaid bool     `json:"onlyFoundInRaid"`
	Target          []string `json:"target"`
	Value           int      `json:"value"`
}

// LeaveItemCondition requires leaving items in a zone.
type LeaveItemCondition struct {
	ConditionBase
	OnlyFoundInRaid bool     `json:"onlyFoundInRaid"`
	Target          []string `json:"target"`
	ZoneID          string   `json:"zoneId"`
}

// LevelCondition requires a player level.
type LevelCondition struct {
	ConditionBase
	CompareMethod string `json:"compareMethod"`
	Value         int    `json:"value"`
}

// PlaceBeaconCondition requires planting an item in a zone for a duration.
type PlaceBeaconCondition struct {
	ConditionBase
	OnlyFoundInRaid bool     `json:"onlyFoundInRaid"`
	PlantTime       int      `json:"plantTime"`
	Target          []string `json:"target"`
	Value           int      `json:"value"`
	ZoneID          string   `json:"zoneId"`
}

// QuestPrereqCondition requires another quest to be in a given status.
type QuestPrereqCondition struct {
	ConditionBase
	AvailableAfter int    `json:"availableAfter"`
	Status         []int  `json:"status"`
	Target         string `json:"target"`
}

// SkillCondition requires a skill level.
type SkillCondition struct {
	ConditionBase
	CompareMethod string `json:"compareMethod"`
	Target        string `json:"target"`
	Value         int    `json:"value"`
}

// TraderLoyaltyCondition requires a trader loyalty level.
type TraderLoyaltyCondition struct {
	ConditionBase
	CompareMethod string `json:"compareMethod"`
	Target        string `json:"target"`
	Value         int    `json:"value"`
}

// VisitPlaceCondition requires visiting a named place.
type VisitPlaceCondition struct {
	ConditionBase
	Target string `json:"target"`
}

// RawCondition preserves condition documents whose discriminator this
// package does not model. Imported documents round-trip through it
// untouched.
type RawCondition map[string]any

// Kind returns the raw document's conditionType, if present.
func (r RawCondition) Kind() string {
	s, _ := r["conditionType"].(string)
	return s
}

// ConditionID returns the raw document's id, if present.
func (r RawCondition) ConditionID() string {
	s, _ := r["id"].(string)
	return s
}

// ConditionList holds one category's conditions in document order and
// unmarshals each element into its concrete variant type.
type ConditionList []Condition

// UnmarshalJSON dispatches each element on its conditionType. Elements
// with an unmodeled discriminator are kept as RawCondition so that
// import/export round-trips do not lose data.
func (l *ConditionList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(ConditionList, 0, len(raws))
	for _, raw := range raws {
		var head struct {
			ConditionType string `json:"conditionType"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			return err
		}

		var (
			cond Condition
			err  error
		)
		switch head.ConditionType {
		case "CounterCreator":
			v := &CounterCreatorCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "FindItem", "HandoverItem":
			v := &ItemCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "LeaveItemAtLocation":
			v := &LeaveItemCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "Level":
			v := &LevelCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "PlaceBeacon":
			v := &PlaceBeaconCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "Quest":
			v := &QuestPrereqCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "Skill":
			v := &SkillCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "TraderLoyalty":
			v := &TraderLoyaltyCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		case "VisitPlace":
			v := &VisitPlaceCondition{}
			err = json.Unmarshal(raw, v)
			cond = v
		default:
			v := RawCondition{}
			err = json.Unmarshal(raw, &v)
			cond = v
		}
		if err != nil {
			return err
		}
		out = append(out, cond)
	}

	*l = out
	return nil
}

// QuestConditions groups a quest's conditions by category.
type QuestConditions struct {
	AvailableForFinish ConditionList `json:"AvailableForFinish"`
	AvailableForStart  ConditionList `json:"AvailableForStart"`
	Fail               ConditionList `json:"Fail"`
}

// NewQuestConditions returns empty condition lists for all categories.
func NewQuestConditions() QuestConditions {
	return QuestConditions{
		AvailableForFinish: ConditionList{},
		AvailableForStart:  ConditionList{},
		Fail:               ConditionList{},
	}
}

// List returns the condition list for a category, or nil for an unknown
// category.
func (c *QuestConditions) List(category string) *ConditionList {
	switch category {
	case CategoryAvailableForStart:
		return &c.AvailableForStart
	case CategoryAvailableForFinish:
		return &c.AvailableForFinish
	case CategoryFail:
		return &c.Fail
	default:
		return nil
	}
}
