package quests_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/repositories/quests"
	"github.com/sptforge/questforge/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    quests.Repository
	mr      *miniredis.Miniredis
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClientWithContext(s.T(), func(mr *miniredis.Miniredis) {
		s.mr = mr
	})
	s.cleanup = cleanup

	repo, err := quests.NewRedisRepository(&quests.Config{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) newQuest(id string) *spt.Quest {
	return &spt.Quest{
		ID:         id,
		Name:       "Test Quest",
		QuestName:  "Test Quest",
		TraderID:   spt.Traders["Prapor"],
		Location:   "any",
		Side:       "pmc",
		Type:       "PickUp",
		Conditions: spt.NewQuestConditions(),
		Rewards:    spt.NewQuestRewards(),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	quest := s.newQuest("5d25e2ee86f77443e35162ea")

	_, err := s.repo.Save(s.ctx, quests.SaveInput{Quest: quest})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, quests.GetInput{QuestID: quest.ID})
	s.Require().NoError(err)
	s.Equal(quest.ID, got.Quest.ID)
	s.Equal("Test Quest", got.Quest.Name)
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, quests.SaveInput{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, quests.SaveInput{Quest: &spt.Quest{}})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, quests.GetInput{QuestID: "missing"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListEmptyStore() {
	out, err := s.repo.List(s.ctx, quests.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Quests)
}

func (s *RedisRepositoryTestSuite) TestListCorruptBlobYieldsEmpty() {
	s.mr.Set("questforge:quests", "{not json")

	out, err := s.repo.List(s.ctx, quests.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Quests)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	quest := s.newQuest("5d25e2ee86f77443e35162ea")
	_, err := s.repo.Save(s.ctx, quests.SaveInput{Quest: quest})
	s.Require().NoError(err)

	quest.Name = "Renamed"
	_, err = s.repo.Save(s.ctx, quests.SaveInput{Quest: quest})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, quests.GetInput{QuestID: quest.ID})
	s.Require().NoError(err)
	s.Equal("Renamed", got.Quest.Name)

	out, err := s.repo.List(s.ctx, quests.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Quests, 1)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	quest := s.newQuest("5d25e2ee86f77443e35162ea")
	_, err := s.repo.Save(s.ctx, quests.SaveInput{Quest: quest})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, quests.DeleteInput{QuestID: quest.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, quests.GetInput{QuestID: quest.ID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDeleteMissing() {
	_, err := s.repo.Delete(s.ctx, quests.DeleteInput{QuestID: "missing"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestReplaceAll() {
	_, err := s.repo.Save(s.ctx, quests.SaveInput{Quest: s.newQuest("old")})
	s.Require().NoError(err)

	replacement := spt.QuestFile{
		"new-1": s.newQuest("new-1"),
		"new-2": s.newQuest("new-2"),
	}
	_, err = s.repo.ReplaceAll(s.ctx, quests.ReplaceAllInput{Quests: replacement})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, quests.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Quests, 2)
	s.Contains(out.Quests, "new-1")
	s.NotContains(out.Quests, "old")
}

func (s *RedisRepositoryTestSuite) TestRoundTripKeepsConditionVariants() {
	quest := s.newQuest("5d25e2ee86f77443e35162ea")
	quest.Conditions.AvailableForFinish = spt.ConditionList{
		&spt.LevelCondition{
			ConditionBase: spt.NewConditionBase("Level", "000000000000000000000001", 0),
			CompareMethod: ">=",
			Value:         15,
		},
	}

	_, err := s.repo.Save(s.ctx, quests.SaveInput{Quest: quest})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, quests.GetInput{QuestID: quest.ID})
	s.Require().NoError(err)
	s.Require().Len(got.Quest.Conditions.AvailableForFinish, 1)

	level, ok := got.Quest.Conditions.AvailableForFinish[0].(*spt.LevelCondition)
	s.Require().True(ok, "unmarshals back into the concrete variant")
	s.Equal(15, level.Value)
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
