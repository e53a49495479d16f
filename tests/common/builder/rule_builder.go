//go:build unit

package builder

import (
	"github.com/shopspring/decimal"

	"rolloff-core/internal/domain/pricing"
	"rolloff-core/internal/pkg/ptr"
)

type RuleBuilder struct {
	BasePrice     int64
	DeliveryFee   int64
	HaulFee       int64
	IncludedDays  int
	ExtraDayFee   int64
	IncludedTons  decimal.Decimal
	OveragePerTon int64
	DumpsterSize  int
	WasteType     string
	PublicNotes   *string
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		BasePrice:     39900,
		DeliveryFee:   7500,
		HaulFee:       12500,
		IncludedDays:  7,
		ExtraDayFee:   1000,
		IncludedTons:  decimal.NewFromInt(2),
		OveragePerTon: 10000,
		DumpsterSize:  20,
		WasteType:     "Household Debris",
		PublicNotes:   ptr.To("Keep the lid closed overnight."),
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) Build() pricing.Rule {
	return pricing.Rule{
		BasePrice:     b.BasePrice,
		DeliveryFee:   b.DeliveryFee,
		HaulFee:       b.HaulFee,
		IncludedDays:  b.IncludedDays,
		ExtraDayFee:   b.ExtraDayFee,
		IncludedTons:  b.IncludedTons,
		OveragePerTon: b.OveragePerTon,
		DumpsterSize:  b.DumpsterSize,
		WasteType:     b.WasteType,
		PublicNotes:   b.PublicNotes,
	}
}

// BuildSnapshot freezes the builder's rule with caller-chosen computed
// fields, for overage tests that start from a persisted snapshot.
func (b *RuleBuilder) BuildSnapshot(rentalDays, extraDays int, subtotal int64) pricing.Snapshot {
	return pricing.Snapshot{
		BasePrice:     b.BasePrice,
		DeliveryFee:   b.DeliveryFee,
		HaulFee:       b.HaulFee,
		IncludedDays:  b.IncludedDays,
		ExtraDayFee:   b.ExtraDayFee,
		IncludedTons:  b.IncludedTons,
		OveragePerTon: b.OveragePerTon,
		DumpsterSize:  b.DumpsterSize,
		WasteType:     b.WasteType,
		PublicNotes:   b.PublicNotes,
		RentalDays:    rentalDays,
		ExtraDays:     extraDays,
		Subtotal:      subtotal,
		Total:         subtotal,
	}
}
