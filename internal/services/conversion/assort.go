package conversion

import (
	"fmt"

	"github.com/sptforge/questforge/internal/entities/spt"
	"github.com/sptforge/questforge/internal/errors"
	"github.com/sptforge/questforge/internal/pkg/idgen"
)

// assortConverter is the concrete implementation of AssortConverter
type assortConverter struct {
	idGen idgen.Generator
}

// AssortConverterConfig holds the configuration for creating an assort
// converter
type AssortConverterConfig struct {
	IDGenerator idgen.Generator
}

// Validate ensures the configuration is valid
func (c *AssortConverterConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	if c.IDGenerator == nil {
		return fmt.Errorf("id generator is required")
	}
	return nil
}

// NewAssortConverter creates a new assort converter instance
func NewAssortConverter(cfg *AssortConverterConfig) (AssortConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &assortConverter{
		idGen: cfg.IDGenerator,
	}, nil
}

func (c *assortConverter) Build(items []AssortItemForm, parts []AssortPartForm) *spt.TraderAssort {
	assort := spt.NewTraderAssort()

	for _, item := range items {
		id := item.ID
		if id == "" {
			id = c.idGen.Generate()
		}

		upd := &spt.AssortItemUpd{
			StackObjectsCount: intOr(item.Count, 1),
			UnlimitedCount:    item.Unlimited,
		}
		if item.BuyRestriction > 0 {
			zero := 0
			max := item.BuyRestriction
			upd.BuyRestrictionCurrent = &zero
			upd.BuyRestrictionMax = &max
		}

		assort.Items = append(assort.Items, spt.AssortItem{
			ID:       id,
			Tpl:      item.ItemTpl,
			ParentID: spt.RootSlot,
			SlotID:   spt.RootSlot,
			Upd:      upd,
		})

		assort.BarterScheme[id] = spt.BarterScheme{{{
			Tpl:   spt.CurrencyTpl(item.Currency),
			Count: intOr(item.Price, 1000),
		}}}

		assort.LoyalLevelItems[id] = intOr(item.LoyaltyLevel, 1)

		if item.QuestLock != "" {
			switch item.QuestOutcome {
			case spt.OutcomeStarted:
				assort.QuestAssort.Started[item.QuestLock] = id
			case spt.OutcomeFail:
				assort.QuestAssort.Fail[item.QuestLock] = id
			default:
				assort.QuestAssort.Success[item.QuestLock] = id
			}
		}
	}

	for _, part := range parts {
		id := part.ID
		if id == "" {
			id = c.idGen.Generate()
		}
		assort.Items = append(assort.Items, spt.AssortItem{
			ID:       id,
			Tpl:      part.ItemTpl,
			ParentID: part.ParentID,
			SlotID:   part.ModSlot,
		})
	}

	return assort
}

func (c *assortConverter) Parse(assort *spt.TraderAssort) ([]AssortItemForm, []AssortPartForm, error) {
	if assort == nil {
		return nil, nil, errors.InvalidArgument("assort is required")
	}

	items := make([]AssortItemForm, 0, len(assort.Items))
	parts := make([]AssortPartForm, 0)

	for _, doc := range assort.Items {
		if !doc.IsRoot() {
			parts = append(parts, AssortPartForm{
				ID:       doc.ID,
				ItemTpl:  doc.Tpl,
				ParentID: doc.ParentID,
				ModSlot:  slotOr(doc.SlotID),
			})
			continue
		}

		form := AssortItemForm{
			ID:           doc.ID,
			ItemTpl:      doc.Tpl,
			Count:        1,
			Currency:     spt.CurrencyRoubles,
			Price:        1000,
			LoyaltyLevel: intOr(assort.LoyalLevelItems[doc.ID], 1),
		}

		if doc.Upd != nil {
			form.Count = intOr(doc.Upd.StackObjectsCount, 1)
			form.Unlimited = doc.Upd.UnlimitedCount
			if doc.Upd.BuyRestrictionMax != nil {
				form.BuyRestriction = *doc.Upd.BuyRestrictionMax
			}
		}

		if scheme := assort.BarterScheme[doc.ID]; len(scheme) > 0 && len(scheme[0]) > 0 {
			entry := scheme[0][0]
			form.Currency = spt.CurrencyFromTpl(entry.Tpl)
			form.Price = intOr(entry.Count, 1000)
		}

		form.QuestLock, form.QuestOutcome = questLockFor(assort.QuestAssort, doc.ID)

		items = append(items, form)
	}

	return items, parts, nil
}

// questLockFor resolves the quest lock gating an item. When an item id
// appears under more than one outcome, success wins over started, which
// wins over fail.
func questLockFor(qa *spt.QuestAssort, itemID string) (string, string) {
	if qa == nil {
		return "", ""
	}
	for questID, id := range qa.Success {
		if id == itemID {
			return questID, spt.OutcomeSuccess
		}
	}
	for questID, id := range qa.Started {
		if id == itemID {
			return questID, spt.OutcomeStarted
		}
	}
	for questID, id := range qa.Fail {
		if id == itemID {
			return questID, spt.OutcomeFail
		}
	}
	return "", ""
}

func slotOr(slot string) string {
	if slot == "" {
		return spt.DefaultModSlot
	}
	return slot
}
