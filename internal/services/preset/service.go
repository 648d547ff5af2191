package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/pkg/idgen"
	"github.com/sptforge/questforge/internal/repositories/presets"
)

// PresetsFilename is the download name for a full collection export.
const PresetsFilename = "weaponpresets.json"

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Config holds the dependencies for the preset service
type Config struct {
	Repository presets.Repository
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
	if c.IDGen == nil {
		return fmt.Errorf("id generator is required")
	}
	return nil
}

type service struct {
	repo  presets.Repository
	idGen idgen.Generator
	log   *slog.Logger
}

// NewService creates a new preset service instance
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &service{
		repo:  cfg.Repository,
		idGen: cfg.IDGen,
		log:   log,
	}, nil
}

// Ensure service implements Service
var _ Service = (*service)(nil)

func (s *service) persist(ctx context.Context, preset *spt.WeaponPreset) {
	if _, err := s.repo.Save(ctx, presets.SaveInput{Preset: preset}); err != nil {
		s.log.Error("failed to persist preset", "preset_id", preset.ID, "error", err)
	}
}

func (s *service) CreatePreset(ctx context.Context, input *CreatePresetInput) (*CreatePresetOutput, error) {
	preset := spt.NewWeaponPreset(s.idGen.Generate())

	s.persist(ctx, preset)
	s.log.Info("created preset", "preset_id", preset.ID)

	return &CreatePresetOutput{Preset: preset}, nil
}

func (s *service) GetPreset(ctx context.Context, input *GetPresetInput) (*GetPresetOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}

	return &GetPresetOutput{Preset: out.Preset}, nil
}

func (s *service) ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error) {
	out, err := s.repo.List(ctx, presets.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListPresetsOutput{Presets: out.Presets}, nil
}

func (s *service) DeletePreset(ctx context.Context, input *DeletePresetInput) (*DeletePresetOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	if _, err := s.repo.Delete(ctx, presets.DeleteInput{PresetID: input.PresetID}); err != nil {
		return nil, err
	}

	s.log.Info("deleted preset", "preset_id", input.PresetID)
	return &DeletePresetOutput{}, nil
}

func (s *service) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}
	preset := out.Preset

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = spt.DefaultPresetName
	}
	preset.Name = name

	s.persist(ctx, preset)
	return &UpdateNameOutput{Preset: preset}, nil
}

func (s *service) SetBaseWeapon(ctx context.Context, input *SetBaseWeaponInput) (*SetBaseWeaponOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}
	tpl := strings.TrimSpace(input.WeaponTpl)
	if tpl == "" {
		return nil, errors.InvalidArgument("weapon template ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}
	preset := out.Preset

	// The parent reference and the base item's template describe the same
	// weapon; they change together.
	preset.Parent = tpl
	if len(preset.Items) > 0 {
		preset.Items[0].Tpl = tpl
	}

	s.persist(ctx, preset)
	s.log.Info("set base weapon", "preset_id", preset.ID, "tpl", tpl)

	return &SetBaseWeaponOutput{Preset: preset}, nil
}

func (s *service) AddPart(ctx context.Context, input *AddPartInput) (*AddPartOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}
	if input.Part.ItemTpl == "" {
		return nil, errors.InvalidArgument("item template ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}
	preset := out.Preset

	item := spt.WeaponPresetItem{
		ID:       s.idGen.Generate(),
		Tpl:      input.Part.ItemTpl,
		ParentID: input.Part.ParentID,
		SlotID:   input.Part.ModSlot,
	}
	preset.Items = append(preset.Items, item)

	s.persist(ctx, preset)
	s.log.Info("added part", "preset_id", preset.ID, "part_id", item.ID)

	return &AddPartOutput{Item: item}, nil
}

func (s *service) UpdatePart(ctx context.Context, input *UpdatePartInput) (*UpdatePartOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}
	if input.PartID == "" {
		return nil, errors.InvalidArgument("part ID is required")
	}
	if input.Part.ItemTpl == "" {
		return nil, errors.InvalidArgument("item template ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}
	preset := out.Preset

	index := -1
	for i := range preset.Items {
		if preset.Items[i].ID == input.PartID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, errors.NotFoundf("part %s not found", input.PartID)
	}

	preset.Items[index].Tpl = input.Part.ItemTpl
	preset.Items[index].ParentID = input.Part.ParentID
	preset.Items[index].SlotID = input.Part.ModSlot

	s.persist(ctx, preset)
	return &UpdatePartOutput{Item: preset.Items[index]}, nil
}

func (s *service) DeletePart(ctx context.Context, input *DeletePartInput) (*DeletePartOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}
	preset := out.Preset

	kept := make([]spt.WeaponPresetItem, 0, len(preset.Items))
	found := false
	for _, item := range preset.Items {
		if item.ID == input.PartID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, errors.NotFoundf("part %s not found", input.PartID)
	}

	preset.Items = kept
	s.persist(ctx, preset)

	return &DeletePartOutput{}, nil
}

func (s *service) ExportPreset(ctx context.Context, input *ExportPresetInput) (*ExportPresetOutput, error) {
	if input == nil || input.PresetID == "" {
		return nil, errors.InvalidArgument("preset ID is required")
	}

	out, err := s.repo.Get(ctx, presets.GetInput{PresetID: input.PresetID})
	if err != nil {
		return nil, err
	}
	preset := out.Preset

	data, err := json.MarshalIndent(spt.PresetFile{preset.ID: preset}, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal preset")
	}

	return &ExportPresetOutput{
		Data:     data,
		Filename: filenameSanitizer.ReplaceAllString(preset.Name, "_") + "_preset.json",
	}, nil
}

func (s *service) ExportPresets(ctx context.Context, input *ExportPresetsInput) (*ExportPresetsOutput, error) {
	out, err := s.repo.List(ctx, presets.ListInput{})
	if err != nil {
		return nil, err
	}
	if len(out.Presets) == 0 {
		return nil, errors.FailedPrecondition("no presets to export")
	}

	data, err := json.MarshalIndent(out.Presets, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal presets")
	}

	return &ExportPresetsOutput{Data: data, Filename: PresetsFilename}, nil
}

func (s *service) ImportPresets(ctx context.Context, input *ImportPresetsInput) (*ImportPresetsOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("import data is required")
	}

	var imported spt.PresetFile
	if err := json.Unmarshal(input.Data, &imported); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid preset file")
	}

	// Unlike quest import, presets replace the collection wholesale.
	if _, err := s.repo.ReplaceAll(ctx, presets.ReplaceAllInput{Presets: imported}); err != nil {
		s.log.Error("failed to persist imported presets", "error", err)
	}
	s.log.Info("imported presets", "count", len(imported))

	return &ImportPresetsOutput{Imported: len(imported)}, nil
}
