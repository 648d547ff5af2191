// Package conversion provides the bidirectional mapping between flat
// editing forms and the nested SPT document shapes. Forward mapping builds
// the exact JSON structure the game server expects; reverse mapping
// repopulates a form from an existing document so edits can round-trip.
package conversion

import (
	"github.com/sptforge/questforge/internal/entities/spt"
)

//go:generate mockgen -destination=mock/mock_converter.go -package=conversionmock github.com/sptforge/questforge/internal/services/conversion ConditionConverter,RewardConverter,AssortConverter

// ConditionConverter maps condition forms to condition documents and back.
type ConditionConverter interface {
	// FromForm builds the condition variant selected by the form's Type.
	// An unrecognized discriminator is a caller contract violation and
	// returns an InvalidArgument error.
	FromForm(form *ConditionForm) (spt.Condition, error)

	// ToForm populates a form from an existing condition, applying the
	// documented defaults for absent optional fields.
	ToForm(cond spt.Condition) (*ConditionForm, error)
}

// RewardConverter maps reward forms to reward documents and back.
type RewardConverter interface {
	// FromForm builds the reward variant selected by the form's Type.
	FromForm(form *RewardForm) (spt.Reward, error)

	// ToForm populates a form from an existing reward. Trader ids are
	// resolved back to display names; unresolved ids fall back to the
	// default trader.
	ToForm(reward spt.Reward) (*RewardForm, error)
}

// AssortConverter maps between flat sellable-item/part lists and the
// nested trader assort document.
type AssortConverter interface {
	// Build assembles the full assort document. Forms without an id get
	// a generated one; ids already present are kept.
	Build(items []AssortItemForm, parts []AssortPartForm) *spt.TraderAssort

	// Parse rebuilds the flat lists from an assort document: root items
	// (parent absent or "hideout") become item forms, everything else
	// becomes part forms.
	Parse(assort *spt.TraderAssort) ([]AssortItemForm, []AssortPartForm, error)
}
