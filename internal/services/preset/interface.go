// Package preset implements the weapon preset editor: named trees of a
// base weapon and its attached parts, exported in the server's preset
// file format.
package preset

import (
	"context"

	"github.com/sptforge/questforge/internal/entities/spt"
)

//go:generate mockgen -destination=mock/mock_service.go -package=presetmock github.com/sptforge/questforge/internal/services/preset Service

// PartForm is the flat editing representation of one preset item. A base
// weapon carries neither parent nor slot; every other part needs both.
type PartForm struct {
	ItemTpl  string
	ParentID string
	ModSlot  string
}

// CreatePresetInput contains parameters for creating a preset
type CreatePresetInput struct{}

// CreatePresetOutput contains the newly created preset
type CreatePresetOutput struct {
	Preset *spt.WeaponPreset
}

// GetPresetInput contains parameters for retrieving a preset
type GetPresetInput struct {
	PresetID string
}

// GetPresetOutput contains the retrieved preset
type GetPresetOutput struct {
	Preset *spt.WeaponPreset
}

// ListPresetsInput contains parameters for listing presets
type ListPresetsInput struct{}

// ListPresetsOutput contains the full preset collection
type ListPresetsOutput struct {
	Presets spt.PresetFile
}

// DeletePresetInput contains parameters for deleting a preset
type DeletePresetInput struct {
	PresetID string
}

// DeletePresetOutput contains the result of deleting a preset
type DeletePresetOutput struct{}

// UpdateNameInput renames a preset; blank names fall back to the default
type UpdateNameInput struct {
	PresetID string
	Name     string
}

// UpdateNameOutput contains the renamed preset
type UpdateNameOutput struct {
	Preset *spt.WeaponPreset
}

// SetBaseWeaponInput changes the preset's base weapon template
type SetBaseWeaponInput struct {
	PresetID  string
	WeaponTpl string
}

// SetBaseWeaponOutput contains the updated preset
type SetBaseWeaponOutput struct {
	Preset *spt.WeaponPreset
}

// AddPartInput appends an item to the preset's tree
type AddPartInput struct {
	PresetID string
	Part     PartForm
}

// AddPartOutput contains the stored item
type AddPartOutput struct {
	Item spt.WeaponPresetItem
}

// UpdatePartInput replaces an item's template, parent, and slot
type UpdatePartInput struct {
	PresetID string
	PartID   string
	Part     PartForm
}

// UpdatePartOutput contains the stored item
type UpdatePartOutput struct {
	Item spt.WeaponPresetItem
}

// DeletePartInput removes an item from the preset's tree
type DeletePartInput struct {
	PresetID string
	PartID   string
}

// DeletePartOutput contains the result of removing an item
type DeletePartOutput struct{}

// ExportPresetInput contains parameters for exporting a single preset
type ExportPresetInput struct {
	PresetID string
}

// ExportPresetOutput contains a single-preset file keyed by the preset id
type ExportPresetOutput struct {
	Data     []byte
	Filename string
}

// ExportPresetsInput contains parameters for exporting the collection
type ExportPresetsInput struct{}

// ExportPresetsOutput contains the serialized collection
type ExportPresetsOutput struct {
	Data     []byte
	Filename string
}

// ImportPresetsInput contains the raw file content to import
type ImportPresetsInput struct {
	Data []byte
}

// ImportPresetsOutput reports how many presets the collection now holds
type ImportPresetsOutput struct {
	Imported int
}

// Service defines the weapon preset editing operations
type Service interface {
	// CreatePreset creates a preset with generated id and editor defaults
	CreatePreset(ctx context.Context, input *CreatePresetInput) (*CreatePresetOutput, error)

	// GetPreset retrieves a preset by id
	GetPreset(ctx context.Context, input *GetPresetInput) (*GetPresetOutput, error)

	// ListPresets retrieves the full preset collection
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)

	// DeletePreset removes a preset
	DeletePreset(ctx context.Context, input *DeletePresetInput) (*DeletePresetOutput, error)

	// UpdateName renames a preset
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)

	// SetBaseWeapon changes the base weapon template, keeping the parent
	// reference and the first item's template in sync
	SetBaseWeapon(ctx context.Context, input *SetBaseWeaponInput) (*SetBaseWeaponOutput, error)

	// AddPart appends an item to the preset's tree
	AddPart(ctx context.Context, input *AddPartInput) (*AddPartOutput, error)

	// UpdatePart replaces an item's template, parent, and slot
	UpdatePart(ctx context.Context, input *UpdatePartInput) (*UpdatePartOutput, error)

	// DeletePart removes an item from the preset's tree
	DeletePart(ctx context.Context, input *DeletePartInput) (*DeletePartOutput, error)

	// ExportPreset serializes a single preset keyed by its id
	ExportPreset(ctx context.Context, input *ExportPresetInput) (*ExportPresetOutput, error)

	// ExportPresets serializes the whole collection
	ExportPresets(ctx context.Context, input *ExportPresetsInput) (*ExportPresetsOutput, error)

	// ImportPresets replaces the collection wholesale
	ImportPresets(ctx context.Context, input *ImportPresetsInput) (*ImportPresetsOutput, error)
}
