package spt

// RootSlot is the parent/slot marker for sellable root items in a trader
// assort.
const RootSlot = "hideout"

// AssortItemUpd carries stock state for a sellable assort item.
type AssortItemUpd struct {
	BuyRestrictionCurrent *int `json:"BuyRestrictionCurrent,omitempty"`
	BuyRestrictionMax     *int `json:"BuyRestrictionMax,omitempty"`
	StackObjectsCount     int  `json:"StackObjectsCount"`
	UnlimitedCount        bool `json:"UnlimitedCount"`
}

// AssortItem is one entry in a trader's item array: either a root sellable
// item (parent/slot "hideout") or a weapon part attached to a root item.
type AssortItem struct {
	ID       string         `json:"_id"`
	Tpl      string         `json:"_tpl"`
	ParentID string         `json:"parentId,omitempty"`
	SlotID   string         `json:"slotId,omitempty"`
	Upd      *AssortItemUpd `json:"upd,omitempty"`
}

// IsRoot reports whether the item is a sellable root item rather than an
// attached part.
func (i *AssortItem) IsRoot() bool {
	return i.ParentID == "" || i.ParentID == RootSlot
}

// BarterSchemeEntry is one cost line: a currency (or barter item) template
// id and an amount.
type BarterSchemeEntry struct {
	Tpl   string `json:"_tpl"`
	Count int    `json:"count"`
}

// BarterScheme lists purchase options for an item; each option lists its
// cost lines. The editor always emits one option with one cost line.
type BarterScheme [][]BarterSchemeEntry

// QuestAssort gates item visibility behind quest outcomes; each outcome
// maps quest id to item id.
type QuestAssort struct {
	Fail    map[string]string `json:"fail"`
	Started map[string]string `json:"started"`
	Success map[string]string `json:"success"`
}

// NewQuestAssort returns empty outcome maps.
func NewQuestAssort() *QuestAssort {
	return &QuestAssort{
		Fail:    map[string]string{},
		Started: map[string]string{},
		Success: map[string]string{},
	}
}

// TraderAssort is one trader's sellable catalog.
type TraderAssort struct {
	BarterScheme    map[string]BarterScheme `json:"barter_scheme"`
	Items           []AssortItem            `json:"items"`
	LoyalLevelItems map[string]int          `json:"loyal_level_items"`
	QuestAssort     *QuestAssort            `json:"questassort,omitempty"`
}

// NewTraderAssort returns an empty assort with all maps initialized.
func NewTraderAssort() *TraderAssort {
	return &TraderAssort{
		BarterScheme:    map[string]BarterScheme{},
		Items:           []AssortItem{},
		LoyalLevelItems: map[string]int{},
		QuestAssort:     NewQuestAssort(),
	}
}
