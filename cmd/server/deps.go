package main

import (
	"fmt"
	"log/slog"

	"github.com/sptforge/questforge/internal/config"
	"github.com/sptforge/questforge/internal/pkg/clock"
	"github.com/sptforge/questforge/internal/pkg/idgen"
	redisclient "github.com/sptforge/questforge/internal/redis"
	presetrepo "github.com/sptforge/questforge/internal/repositories/presets"
	questrepo "github.com/sptforge/questforge/internal/repositories/quests"
	"github.com/sptforge/questforge/internal/services/assort"
	"github.com/sptforge/questforge/internal/services/conversion"
	"github.com/sptforge/questforge/internal/services/preset"
	"github.com/sptforge/questforge/internal/services/quest"
)

// services bundles the wired service layer for the commands.
type services struct {
	Quests  quest.Service
	Assorts assort.Service
	Presets preset.Service
}

// buildServices wires repositories, converters, and services from the
// configuration. Without a Redis endpoint the collections live in memory
// for the lifetime of the process.
func buildServices(cfg *config.Config, log *slog.Logger) (*services, error) {
	var (
		questRepository  questrepo.Repository
		presetRepository presetrepo.Repository
	)

	if cfg.Redis.Endpoint != "" {
		client, err := redisclient.NewClient(cfg.Redis.Endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}

		questRepository, err = questrepo.NewRedisRepository(&questrepo.Config{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create quest repository: %w", err)
		}
		presetRepository, err = presetrepo.NewRedisRepository(&presetrepo.Config{Client: client})
		if err != nil {
			return nil, fmt.Errorf("failed to create preset repository: %w", err)
		}

		log.Info("using redis storage", "endpoint", cfg.Redis.Endpoint)
	} else {
		questRepository = questrepo.NewInMemory()
		presetRepository = presetrepo.NewInMemory()

		log.Warn("no redis endpoint configured, collections are held in memory")
	}

	idGen := idgen.NewObjectID(clock.New())

	conditions, err := conversion.NewConditionConverter(&conversion.ConditionConverterConfig{
		IDGenerator: idGen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create condition converter: %w", err)
	}
	rewards, err := conversion.NewRewardConverter(&conversion.RewardConverterConfig{
		IDGenerator: idGen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reward converter: %w", err)
	}
	assortConverter, err := conversion.NewAssortConverter(&conversion.AssortConverterConfig{
		IDGenerator: idGen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assort converter: %w", err)
	}

	questService, err := quest.NewService(&quest.Config{
		Repository: questRepository,
		Conditions: conditions,
		Rewards:    rewards,
		IDGen:      idGen,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quest service: %w", err)
	}
	assortService, err := assort.NewService(&assort.Config{
		Converter: assortConverter,
		Logger:    log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assort service: %w", err)
	}
	presetService, err := preset.NewService(&preset.Config{
		Repository: presetRepository,
		IDGen:      idGen,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create preset service: %w", err)
	}

	return &services{
		Quests:  questService,
		Assorts: assortService,
		Presets: presetService,
	}, nil
}
