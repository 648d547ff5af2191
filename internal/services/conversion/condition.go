package conversion

import (
	"fmt"
	"strings"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/pkg/idgen"
)

// conditionConverter is the concrete implementation of ConditionConverter
type conditionConverter struct {
	idGen idgen.Generator
}

// ConditionConverterConfig holds the configuration for creating a
// condition converter
type ConditionConverterConfig struct {
	IDGenerator idgen.Generator
}

// Validate ensures the configuration is valid
func (c *ConditionConverterConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.IDGenerator == nil {
		return fmt.Errorf("id generator is required")
	}
	return nil
}

// NewConditionConverter creates a new condition converter instance
func NewConditionConverter(cfg *ConditionConverterConfig) (ConditionConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &conditionConverter{
		idGen: cfg.IDGenerator,
	}, nil
}

func (c *conditionConverter) FromForm(form *ConditionForm) (spt.Condition, error) {
	if form == nil {
		return nil, errors.InvalidArgument("condition form is required")
	}

	id := form.ID
	if id == "" {
		id = c.idGen.Generate()
	}
	base := spt.NewConditionBase(form.Type, id, form.Index)

	switch form.Type {
	case "CounterCreator":
		return c.buildCounterCreator(form, base)

	case "FindItem", "HandoverItem":
		return &spt.ItemCondition{
			ConditionBase:   base,
			CountInRaid:     form.CountInRaid,
			DogtagLevel:     0,
			IsEncoded:       false,
			MaxDurability:   100,
			MinDurability:   0,
			OnlyFoundInRaid: form.OnlyFoundInRaid,
			Target:          splitList(form.Target),
			Value:           intOr(form.Value, 1),
		}, nil

	case "LeaveItemAtLocation":
		return &spt.LeaveItemCondition{
			ConditionBase:   base,
			OnlyFoundInRaid: form.OnlyFoundInRaid,
			Target:          []string{form.Target},
			ZoneID:          form.ZoneID,
		}, nil

	case "Level":
		return &spt.LevelCondition{
			ConditionBase: base,
			CompareMethod: compareOr(form.CompareMethod),
			Value:         intOr(form.Value, 1),
		}, nil

	case "PlaceBeacon":
		return &spt.PlaceBeaconCondition{
			ConditionBase:   base,
			OnlyFoundInRaid: form.OnlyFoundInRaid,
			PlantTime:       form.PlantTime,
			Target:          []string{form.Target},
			Value:           intOr(form.Value, 1),
			ZoneID:          form.ZoneID,
		}, nil

	case "Quest":
		status := form.Status
		if status == 0 {
			status = spt.QuestStatusSuccess
		}
		return &spt.QuestPrereqCondition{
			ConditionBase:  base,
			AvailableAfter: 0,
			Status:         []int{status},
			Target:         form.Target,
		}, nil

	case "Skill":
		return &spt.SkillCondition{
			ConditionBase: base,
			CompareMethod: compareOr(form.CompareMethod),
			Target:        form.Target,
			Value:         form.Value,
		}, nil

	case "TraderLoyalty":
		return &spt.TraderLoyaltyCondition{
			ConditionBase: base,
			CompareMethod: compareOr(form.CompareMethod),
			Target:        form.Target,
			Value:         intOr(form.Value, 1),
		}, nil

	case "VisitPlace":
		return &spt.VisitPlaceCondition{
			ConditionBase: base,
			Target:        form.Target,
		}, nil

	default:
		return nil, errors.InvalidArgumentf("unknown condition type %q", form.Type)
	}
}

// buildCounterCreator assembles the counter variant: the sub-condition
// kind decides both the nested document shape and the quest-type field.
func (c *conditionConverter) buildCounterCreator(form *ConditionForm, base spt.ConditionBase) (spt.Condition, error) {
	counterID := c.idGen.Generate()
	subBase := spt.CounterConditionBase{
		DynamicLocale: false,
		ID:            c.idGen.Generate(),
	}

	kind := form.CounterKind
	if kind == "" {
		kind = "Kills"
	}

	var (
		sub       spt.CounterCondition
		questType string
		value     int
	)

	switch kind {
	case "ExitName":
		subBase.ConditionType = "ExitName"
		sub = &spt.ExitNameCondition{
			CounterConditionBase: subBase,
			ExitName:             form.ExitName,
		}
		questType = "Completion"
		value = intOr(form.Value, 1)

	case "ExitStatus":
		subBase.ConditionType = "ExitStatus"
		statuses := form.ExitStatuses
		if len(statuses) == 0 {
			statuses = []string{"Survived"}
		}
		sub = &spt.ExitStatusCondition{
			CounterConditionBase: subBase,
			Status:               statuses,
		}
		questType = "Completion"
		value = intOr(form.Value, 1)

	case "Location":
		subBase.ConditionType = "Location"
		locations := form.Locations
		if len(locations) == 0 {
			locations = []string{"any"}
		}
		sub = &spt.LocationCondition{
			CounterConditionBase: subBase,
			Location:             locations,
		}
		questType = "Completion"
		value = intOr(form.Value, 1)

	case "VisitPlace":
		subBase.ConditionType = "VisitPlace"
		sub = &spt.VisitPlaceCounterCondition{
			CounterConditionBase: subBase,
			Target:               form.ZoneID,
		}
		questType = "Exploration"
		value = 1

	case "Kills":
		subBase.ConditionType = "Kills"
		kills := &spt.KillsCondition{
			CounterConditionBase:    subBase,
			Daytime:                 spt.TimeRange{From: 0, To: 0},
			Distance:                spt.Comparison{CompareMethod: ">=", Value: 0},
			EnemyEquipmentExclusive: []string{},
			EnemyEquipmentInclusive: []string{},
			EnemyHealthEffects:      []string{},
			ResetOnSessionEnd:       false,
			Target:                  form.Target,
			Weapon:                  splitList(form.Weapon),
			WeaponCaliber:           []string{},
			WeaponModsExclusive:     []string{},
			WeaponModsInclusive:     []string{},
		}
		if form.BodyPart != "" && form.BodyPart != "Any" {
			kills.BodyPart = []string{form.BodyPart}
		}
		if form.Target != "" && form.Target != "Any" {
			kills.SavageRole = []string{form.Target}
		}
		sub = kills
		questType = "Elimination"
		value = intOr(form.Value, 1)

	default:
		return nil, errors.InvalidArgumentf("unknown counter condition type %q", kind)
	}

	return &spt.CounterCreatorCondition{
		ConditionBase: base,
		Counter: spt.Counter{
			Conditions: spt.CounterConditionList{sub},
			ID:         counterID,
		},
		OneSessionOnly: false,
		Type:           questType,
		Value:          value,
	}, nil
}

func (c *conditionConverter) ToForm(cond spt.Condition) (*ConditionForm, error) {
	if cond == nil {
		return nil, errors.InvalidArgument("condition is required")
	}

	form := &ConditionForm{Type: cond.Kind(), ID: cond.ConditionID()}

	switch v := cond.(type) {
	case *spt.CounterCreatorCondition:
		form.Index = v.Index
		form.Value = intOr(v.Value, 1)
		if len(v.Counter.Conditions) > 0 {
			if err := populateCounterForm(form, v.Counter.Conditions[0]); err != nil {
				return nil, err
			}
		}

	case *spt.ItemCondition:
		form.Index = v.Index
		form.Target = strings.Join(v.Target, ", ")
		form.Value = intOr(v.Value, 1)
		form.OnlyFoundInRaid = v.OnlyFoundInRaid
		form.CountInRaid = v.CountInRaid

	case *spt.LeaveItemCondition:
		form.Index = v.Index
		form.Target = firstOf(v.Target)
		form.ZoneID = v.ZoneID
		form.OnlyFoundInRaid = v.OnlyFoundInRaid

	case *spt.LevelCondition:
		form.Index = v.Index
		form.CompareMethod = compareOr(v.CompareMethod)
		form.Value = intOr(v.Value, 1)

	case *spt.PlaceBeaconCondition:
		form.Index = v.Index
		form.Target = firstOf(v.Target)
		form.ZoneID = v.ZoneID
		form.PlantTime = v.PlantTime
		form.Value = intOr(v.Value, 1)
		form.OnlyFoundInRaid = v.OnlyFoundInRaid

	case *spt.QuestPrereqCondition:
		form.Index = v.Index
		form.Target = v.Target
		form.Status = spt.QuestStatusSuccess
		if len(v.Status) > 0 && v.Status[0] != 0 {
			form.Status = v.Status[0]
		}

	case *spt.SkillCondition:
		form.Index = v.Index
		form.Target = v.Target
		form.CompareMethod = compareOr(v.CompareMethod)
		form.Value = v.Value

	case *spt.TraderLoyaltyCondition:
		form.Index = v.Index
		form.Target = v.Target
		form.CompareMethod = compareOr(v.CompareMethod)
		form.Value = intOr(v.Value, 1)

	case *spt.VisitPlaceCondition:
		form.Index = v.Index
		form.Target = v.Target

	default:
		return nil, errors.InvalidArgumentf("unknown condition type %q", cond.Kind())
	}

	return form, nil
}

func populateCounterForm(form *ConditionForm, sub spt.CounterCondition) error {
	switch s := sub.(type) {
	case *spt.KillsCondition:
		form.CounterKind = "Kills"
		form.Target = s.Target
		if form.Target == "" && len(s.SavageRole) > 0 {
			form.Target = s.SavageRole[0]
		}
		if form.Target == "" {
			form.Target = "Any"
		}
		form.BodyPart = "Any"
		if len(s.BodyPart) > 0 {
			form.BodyPart = s.BodyPart[0]
		}
		form.Weapon = strings.Join(s.Weapon, ", ")

	case *spt.ExitNameCondition:
		form.CounterKind = "ExitName"
		form.ExitName = s.ExitName

	case *spt.ExitStatusCondition:
		form.CounterKind = "ExitStatus"
		form.ExitStatuses = s.Status

	case *spt.LocationCondition:
		form.CounterKind = "Location"
		form.Locations = s.Location

	case *spt.VisitPlaceCounterCondition:
		form.CounterKind = "VisitPlace"
		form.ZoneID = s.Target

	default:
		return errors.InvalidArgumentf("unknown counter condition type %q", sub.SubKind())
	}

	return nil
}

// splitList parses a comma-separated input into trimmed entries, dropping
// blanks.
func splitList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func intOr(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func compareOr(method string) string {
	if method == "" {
		return spt.DefaultCompareMethod
	}
	return method
}
