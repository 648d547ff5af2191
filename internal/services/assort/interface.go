// Package assort implements trader assort generation: flat editing forms
// in, the trader catalog document out, and the reverse parse on import.
package assort

import (
	"context"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/services/conversion"
)

//go:generate mockgen -destination=mock/mock_service.go -package=assortmock github.com/sptforge/questforge/internal/services/assort Service

// BuildInput contains the editing forms and the trader the catalog is for
type BuildInput struct {
	Trader string
	Items  []conversion.AssortItemForm
	Parts  []conversion.AssortPartForm
}

// BuildOutput contains the generated catalog, its serialized form, and the
// download filename
type BuildOutput struct {
	Assort   *spt.TraderAssort
	Data     []byte
	Filename string
}

// ParseInput contains a raw assort file to convert back to editing forms
type ParseInput struct {
	Data []byte
}

// ParseOutput contains the recovered editing forms
type ParseOutput struct {
	Items []conversion.AssortItemForm
	Parts []conversion.AssortPartForm
}

// Service defines the trader assort operations
type Service interface {
	// Build generates a trader catalog document from editing forms
	Build(ctx context.Context, input *BuildInput) (*BuildOutput, error)

	// Parse converts an assort document back into editing forms
	Parse(ctx context.Context, input *ParseInput) (*ParseOutput, error)
}
