package conversion_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/pkg/idgen"
	"github.com/sptforge/questforge/internal/services/conversion"
)

type ConditionConverterTestSuite struct {
	suite.Suite
	converter conversion.ConditionConverter
}

func (s *ConditionConverterTestSuite) SetupTest() {
	converter, err := conversion.NewConditionConverter(&conversion.ConditionConverterConfig{
		IDGenerator: idgen.NewSequential(),
	})
	s.Require().NoError(err)
	s.converter = converter
}

func (s *ConditionConverterTestSuite) TestFromFormRequiresForm() {
	_, err := s.converter.FromForm(nil)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConditionConverterTestSuite) TestFromFormGeneratesID() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:  "Level",
		Value: 15,
	})
	s.Require().NoError(err)
	s.Len(cond.ConditionID(), 24)
}

func (s *ConditionConverterTestSuite) TestFromFormPreservesID() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type: "Level",
		ID:   "5d25e2ee86f77443e35162ea",
	})
	s.Require().NoError(err)
	s.Equal("5d25e2ee86f77443e35162ea", cond.ConditionID())
}

func (s *ConditionConverterTestSuite) TestFromFormUnknownType() {
	_, err := s.converter.FromForm(&conversion.ConditionForm{Type: "WinTheGame"})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConditionConverterTestSuite) TestHandoverItemSplitsTargets() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:            "HandoverItem",
		Target:          "5449016a4bdc2d6f028b456f, 5696686a4bdc2da3298b456a,569668774bdc2da2298b4568",
		OnlyFoundInRaid: true,
	})
	s.Require().NoError(err)

	item, ok := cond.(*spt.ItemCondition)
	s.Require().True(ok)
	s.Equal("HandoverItem", item.Kind())
	s.Equal([]string{
		"5449016a4bdc2d6f028b456f",
		"5696686a4bdc2da3298b456a",
		"569668774bdc2da2298b4568",
	}, item.Target)
	s.Equal(1, item.Value, "zero count falls back to 1")
	s.Equal(100, item.MaxDurability)
	s.True(item.OnlyFoundInRaid)
}

func (s *ConditionConverterTestSuite) TestKillsOmitsAnyFilters() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "Kills",
		Target:      "Any",
		BodyPart:    "Any",
		Value:       5,
	})
	s.Require().NoError(err)

	counter, ok := cond.(*spt.CounterCreatorCondition)
	s.Require().True(ok)
	s.Equal("Elimination", counter.Type)
	s.Equal(5, counter.Value)
	s.Require().Len(counter.Counter.Conditions, 1)

	kills, ok := counter.Counter.Conditions[0].(*spt.KillsCondition)
	s.Require().True(ok)
	s.Nil(kills.BodyPart)
	s.Nil(kills.SavageRole)
	s.Equal("Any", kills.Target)
	s.Equal(spt.TimeRange{From: 0, To: 0}, kills.Daytime)
	s.Equal(spt.Comparison{CompareMethod: ">=", Value: 0}, kills.Distance)
}

func (s *ConditionConverterTestSuite) TestKillsKeepsSpecificFilters() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "Kills",
		Target:      "Savage",
		BodyPart:    "Head",
		Weapon:      "5447a9cd4bdc2dbd208b4567",
	})
	s.Require().NoError(err)

	counter := cond.(*spt.CounterCreatorCondition)
	kills := counter.Counter.Conditions[0].(*spt.KillsCondition)
	s.Equal([]string{"Head"}, kills.BodyPart)
	s.Equal([]string{"Savage"}, kills.SavageRole)
	s.Equal([]string{"5447a9cd4bdc2dbd208b4567"}, kills.Weapon)
	s.Equal(1, counter.Value)
}

func (s *ConditionConverterTestSuite) TestExitStatusDefaultsToSurvived() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "ExitStatus",
	})
	s.Require().NoError(err)

	counter := cond.(*spt.CounterCreatorCondition)
	s.Equal("Completion", counter.Type)
	status := counter.Counter.Conditions[0].(*spt.ExitStatusCondition)
	s.Equal([]string{"Survived"}, status.Status)
}

func (s *ConditionConverterTestSuite) TestLocationDefaultsToAny() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "Location",
	})
	s.Require().NoError(err)

	counter := cond.(*spt.CounterCreatorCondition)
	loc := counter.Counter.Conditions[0].(*spt.LocationCondition)
	s.Equal([]string{"any"}, loc.Location)
}

func (s *ConditionConverterTestSuite) TestVisitPlaceCounterIsExploration() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "VisitPlace",
		ZoneID:      "gazel",
		Value:       99,
	})
	s.Require().NoError(err)

	counter := cond.(*spt.CounterCreatorCondition)
	s.Equal("Exploration", counter.Type)
	s.Equal(1, counter.Value, "exploration counters always need one visit")
	visit := counter.Counter.Conditions[0].(*spt.VisitPlaceCounterCondition)
	s.Equal("gazel", visit.Target)
}

func (s *ConditionConverterTestSuite) TestUnknownCounterKind() {
	_, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "Dance",
	})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConditionConverterTestSuite) TestQuestPrereqDefaultsToSuccess() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:   "Quest",
		Target: "5d25e2ee86f77443e35162ea",
	})
	s.Require().NoError(err)

	prereq := cond.(*spt.QuestPrereqCondition)
	s.Equal([]int{spt.QuestStatusSuccess}, prereq.Status)
	s.Equal(0, prereq.AvailableAfter)
}

func (s *ConditionConverterTestSuite) TestLevelDefaultsCompareMethod() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{Type: "Level"})
	s.Require().NoError(err)

	level := cond.(*spt.LevelCondition)
	s.Equal(">=", level.CompareMethod)
	s.Equal(1, level.Value)
}

func (s *ConditionConverterTestSuite) TestSkillKeepsZeroValue() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:   "Skill",
		Target: "Endurance",
	})
	s.Require().NoError(err)

	skill := cond.(*spt.SkillCondition)
	s.Equal("Endurance", skill.Target)
	s.Equal(0, skill.Value)
}

func (s *ConditionConverterTestSuite) TestToFormUnknownVariant() {
	_, err := s.converter.ToForm(spt.RawCondition{"conditionType": "WinTheGame"})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConditionConverterTestSuite) TestRoundTripHandoverItem() {
	original := &conversion.ConditionForm{
		Type:            "HandoverItem",
		Target:          "5449016a4bdc2d6f028b456f, 5696686a4bdc2da3298b456a",
		Value:           3,
		OnlyFoundInRaid: true,
		CountInRaid:     true,
	}

	cond, err := s.converter.FromForm(original)
	s.Require().NoError(err)
	form, err := s.converter.ToForm(cond)
	s.Require().NoError(err)

	s.Equal(original.Type, form.Type)
	s.Equal(original.Target, form.Target)
	s.Equal(original.Value, form.Value)
	s.Equal(original.OnlyFoundInRaid, form.OnlyFoundInRaid)
	s.Equal(original.CountInRaid, form.CountInRaid)
	s.Equal(cond.ConditionID(), form.ID)
}

func (s *ConditionConverterTestSuite) TestRoundTripKills() {
	original := &conversion.ConditionForm{
		Type:        "CounterCreator",
		CounterKind: "Kills",
		Target:      "Savage",
		BodyPart:    "Head",
		Weapon:      "5447a9cd4bdc2dbd208b4567",
		Value:       10,
	}

	cond, err := s.converter.FromForm(original)
	s.Require().NoError(err)
	form, err := s.converter.ToForm(cond)
	s.Require().NoError(err)

	s.Equal("Kills", form.CounterKind)
	s.Equal("Savage", form.Target)
	s.Equal("Head", form.BodyPart)
	s.Equal("5447a9cd4bdc2dbd208b4567", form.Weapon)
	s.Equal(10, form.Value)
}

func (s *ConditionConverterTestSuite) TestRoundTripStableID() {
	cond, err := s.converter.FromForm(&conversion.ConditionForm{
		Type:   "TraderLoyalty",
		Target: spt.Traders["Therapist"],
		Value:  2,
	})
	s.Require().NoError(err)

	form, err := s.converter.ToForm(cond)
	s.Require().NoError(err)

	again, err := s.converter.FromForm(form)
	s.Require().NoError(err)
	s.Equal(cond.ConditionID(), again.ConditionID())
}

func (s *ConditionConverterTestSuite) TestRoundTripPlaceBeacon() {
	original := &conversion.ConditionForm{
		Type:            "PlaceBeacon",
		Target:          "5991b51486f77447b112d44f",
		ZoneID:          "place_SADOVOD_01",
		PlantTime:       60,
		Value:           1,
		OnlyFoundInRaid: false,
	}

	cond, err := s.converter.FromForm(original)
	s.Require().NoError(err)

	beacon := cond.(*spt.PlaceBeaconCondition)
	s.Equal([]string{"5991b51486f77447b112d44f"}, beacon.Target)

	form, err := s.converter.ToForm(cond)
	s.Require().NoError(err)
	s.Equal(original.Target, form.Target)
	s.Equal(original.ZoneID, form.ZoneID)
	s.Equal(original.PlantTime, form.PlantTime)
}

func TestConditionConverterSuite(t *testing.T) {
	suite.Run(t, new(ConditionConverterTestSuite))
}
