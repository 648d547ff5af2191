package spt

// DefaultBaseWeaponTpl seeds new presets: the M4A1 lower receiver.
const DefaultBaseWeaponTpl = "5447a9cd4bdc2dbd208b4567"

// DefaultPresetName is the display name given to newly created presets.
const DefaultPresetName = "New Weapon Preset"

// WeaponPresetItem is one item in a preset's tree. The first item is the
// base weapon and carries neither parent nor slot; every other item
// attaches to its parent through a mod slot.
type WeaponPresetItem struct {
	ID       string `json:"_id"`
	Tpl      string `json:"_tpl"`
	ParentID string `json:"parentId,omitempty"`
	SlotID   string `json:"slotId,omitempty"`
}

// WeaponPreset is a named tree of an assembled weapon and its attached
// modifications. Parent is the base weapon's template id and must equal
// Items[0].Tpl whenever the item list is non-empty.
type WeaponPreset struct {
	ChangeWeaponName bool               `json:"_changeWeaponName"`
	Encyclopedia     string             `json:"_encyclopedia,omitempty"`
	ID               string             `json:"_id"`
	Items            []WeaponPresetItem `json:"_items"`
	Name             string             `json:"_name"`
	Parent           string             `json:"_parent"`
	Type             string             `json:"_type"`
}

// PresetFile is the export/import format: presets keyed by id.
type PresetFile map[string]*WeaponPreset

// NewWeaponPreset builds a preset with editor defaults and no parts.
func NewWeaponPreset(id string) *WeaponPreset {
	return &WeaponPreset{
		ChangeWeaponName: true,
		ID:               id,
		Items:            []WeaponPresetItem{},
		Name:             DefaultPresetName,
		Parent:           DefaultBaseWeaponTpl,
		Type:             "Preset",
	}
}
