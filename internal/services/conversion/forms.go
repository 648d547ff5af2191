package conversion

// ConditionForm is the flat, strongly typed editing representation of a
// quest condition. Which fields are read depends on Type (and, for
// CounterCreator, CounterKind); the rest are ignored.
type ConditionForm struct {
	// Type is the condition discriminator (see spt.ConditionTypes).
	Type string `json:"type"`
	// Category places the condition in one of the quest's three lists.
	Category string `json:"category"`
	// ID is empty for new conditions; editing passes the existing id so
	// it is preserved.
	ID string `json:"id"`
	// Index is preserved across edits, 0 for new conditions.
	Index int `json:"index"`

	// CounterKind selects the CounterCreator sub-variant
	// (see spt.CounterConditionTypes). Defaults to Kills.
	CounterKind string `json:"counterKind"`

	// Target is the main subject: item template ids (comma-separated for
	// FindItem/HandoverItem), a quest id, a skill name, a trader id, a
	// zone/place id, or an elimination target.
	Target string `json:"target"`

	ExitName     string   `json:"exitName"`
	ExitStatuses []string `json:"exitStatuses"`
	Locations    []string `json:"locations"`
	BodyPart     string   `json:"bodyPart"`
	// Weapon holds comma-separated weapon template ids for Kills.
	Weapon string `json:"weapon"`
	ZoneID string `json:"zoneId"`

	CompareMethod string `json:"compareMethod"`
	// Status is the required prerequisite-quest status.
	Status    int `json:"status"`
	PlantTime int `json:"plantTime"`
	Value     int `json:"value"`

	OnlyFoundInRaid bool `json:"onlyFoundInRaid"`
	CountInRaid     bool `json:"countInRaid"`
}

// RewardForm is the flat, strongly typed editing representation of a quest
// reward.
type RewardForm struct {
	// Type is the reward discriminator (see spt.RewardTypes).
	Type string `json:"type"`
	// Timing places the reward in one of the quest's three lists.
	Timing string `json:"timing"`
	// ID is empty for new rewards; editing passes the existing id.
	ID string `json:"id"`
	// Index is preserved across edits, 0 for new rewards.
	Index int `json:"index"`

	AchievementID string `json:"achievementId"`
	// Trader is the trader display name; converted to the trader id on
	// build and resolved back on populate.
	Trader       string `json:"trader"`
	ItemTpl      string `json:"itemTpl"`
	LoyaltyLevel int    `json:"loyaltyLevel"`
	Skill        string `json:"skill"`
	// Value covers every numeric variant; integer variants truncate.
	Value      float64 `json:"value"`
	FindInRaid bool    `json:"findInRaid"`
	// Unknown mirrors the editing form's hide-reward checkbox. The
	// document's unknown flag is the negation of this field on build, but
	// populate copies the flag straight back; the asymmetry is part of
	// the external contract.
	Unknown bool `json:"unknown"`
}

// AssortItemForm is the flat editing representation of one sellable item
// in a trader assort.
type AssortItemForm struct {
	// ID is empty for new items; the converter assigns a generated id.
	ID       string `json:"id"`
	ItemTpl  string `json:"itemTpl"`
	ItemName string `json:"itemName"`

	Count        int    `json:"count"`
	Currency     string `json:"currency"`
	Price        int    `json:"price"`
	LoyaltyLevel int    `json:"loyaltyLevel"`

	Unlimited      bool `json:"unlimited"`
	BuyRestriction int  `json:"buyRestriction"`

	// QuestLock gates the item behind a quest; QuestOutcome selects which
	// outcome map it lands in (default success).
	QuestLock    string `json:"questLock"`
	QuestOutcome string `json:"questOutcome"`
}

// AssortPartForm is a weapon part attached to a sellable assort item.
type AssortPartForm struct {
	ID       string `json:"id"`
	ItemTpl  string `json:"itemTpl"`
	ParentID string `json:"parentId"`
	ModSlot  string `json:"modSlot"`
}
