package assort

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/services/conversion"
)

// Config holds the dependencies for the assort service
type Config struct {
	Converter conversion.AssortConverter
	Logger    *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.Converter == nil {
		return fmt.Errorf("assort converter is required")
	}
	return nil
}

type service struct {
	converter conversion.AssortConverter
	log       *slog.Logger
}

// NewService creates a new assort service instance
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &service{
		converter: cfg.Converter,
		log:       log,
	}, nil
}

// Ensure service implements Service
var _ Service = (*service)(nil)

func (s *service) Build(ctx context.Context, input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	trader := input.Trader
	if trader == "" {
		trader = spt.DefaultTrader
	}
	if _, ok := spt.Traders[trader]; !ok {
		return nil, errors.InvalidArgumentf("unknown trader %q", trader)
	}

	vb := errors.NewValidationBuilder()
	for i, item := range input.Items {
		if item.ItemTpl == "" {
			vb.Fieldf(fmt.Sprintf("items[%d].itemTpl", i), "is required")
		}
	}
	for i, part := range input.Parts {
		if part.ItemTpl == "" {
			vb.Fieldf(fmt.Sprintf("parts[%d].itemTpl", i), "is required")
		}
		if part.ParentID == "" {
			vb.Fieldf(fmt.Sprintf("parts[%d].parentId", i), "is required")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	assort := s.converter.Build(input.Items, input.Parts)

	data, err := json.MarshalIndent(assort, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal assort")
	}

	s.log.Info("built assort", "trader", trader, "items", len(input.Items), "parts", len(input.Parts))

	return &BuildOutput{
		Assort:   assort,
		Data:     data,
		Filename: strings.ToLower(trader) + "_assort.json",
	}, nil
}

func (s *service) Parse(ctx context.Context, input *ParseInput) (*ParseOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("assort data is required")
	}

	var assort spt.TraderAssort
	if err := json.Unmarshal(input.Data, &assort); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid assort file")
	}

	items, parts, err := s.converter.Parse(&assort)
	if err != nil {
		return nil, err
	}

	s.log.Info("parsed assort", "items", len(items), "parts", len(parts))

	return &ParseOutput{Items: items, Parts: parts}, nil
}
