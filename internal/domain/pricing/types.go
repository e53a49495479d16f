package pricing

import (
	"github.com/shopspring/decimal"

	"rolloff-core/internal/pkg/money"
	"rolloff-core/internal/pkg/ptr"
)

// Rule is the externally sourced price card for one dumpster size and waste
// type. Monetary fields are integer minor units (cents). The engine never
// mutates a rule.
type Rule struct {
	BasePrice     int64           `json:"base_price"`
	DeliveryFee   int64           `json:"delivery_fee"`
	HaulFee       int64           `json:"haul_fee"`
	IncludedDays  int             `json:"included_days"`
	ExtraDayFee   int64           `json:"extra_day_fee"`
	IncludedTons  decimal.Decimal `json:"included_tons"`
	OveragePerTon int64           `json:"overage_per_ton"`
	DumpsterSize  int             `json:"dumpster_size"`
	WasteType     string          `json:"waste_type"`
	PublicNotes   *string         `json:"public_notes,omitempty"`
}

// Snapshot freezes the rule a customer was quoted under together with the
// computed totals. Once persisted it is the authoritative record of the
// charge; it must never be recalculated from a later edit of the rule.
type Snapshot struct {
	BasePrice     int64           `json:"base_price"`
	DeliveryFee   int64           `json:"delivery_fee"`
	HaulFee       int64           `json:"haul_fee"`
	IncludedDays  int             `json:"included_days"`
	ExtraDayFee   int64           `json:"extra_day_fee"`
	IncludedTons  decimal.Decimal `json:"included_tons"`
	OveragePerTon int64           `json:"overage_per_ton"`
	DumpsterSize  int             `json:"dumpster_size"`
	WasteType     string          `json:"waste_type"`
	PublicNotes   *string         `json:"public_notes,omitempty"`

	RentalDays int   `json:"rental_days"`
	ExtraDays  int   `json:"extra_days"`
	Subtotal   int64 `json:"subtotal"`
	Total      int64 `json:"total"`
}

// Notes returns the frozen public notes, or "" when the rule carried none.
func (s Snapshot) Notes() string {
	return ptr.Deref(s.PublicNotes)
}

type LineItemType string

const (
	LineItemBase       LineItemType = "base"
	LineItemDelivery   LineItemType = "delivery"
	LineItemHaul       LineItemType = "haul"
	LineItemExtraDays  LineItemType = "extra_days"
	LineItemTax        LineItemType = "tax"
	LineItemDiscount   LineItemType = "discount"
	LineItemAdjustment LineItemType = "adjustment"
)

func (t LineItemType) String() string {
	return string(t)
}

func (t LineItemType) IsValid() bool {
	switch t {
	case LineItemBase, LineItemDelivery, LineItemHaul, LineItemExtraDays,
		LineItemTax, LineItemDiscount, LineItemAdjustment:
		return true
	default:
		return false
	}
}

// isCharge reports whether the type is one of the rows the engine itself
// emits; those rows must sum to the snapshot subtotal.
func (t LineItemType) isCharge() bool {
	switch t {
	case LineItemBase, LineItemDelivery, LineItemHaul, LineItemExtraDays:
		return true
	default:
		return false
	}
}

// LineItem is a denormalized display row derived from a snapshot. Amount may
// be negative for discounts and adjustments.
type LineItem struct {
	Label     string       `json:"label"`
	Amount    int64        `json:"amount"`
	Type      LineItemType `json:"type"`
	SortOrder int          `json:"sort_order"`
}

// FormattedAmount renders the row amount for display, e.g. "$399.00" or
// "-$25.00" for a discount.
func (li LineItem) FormattedAmount() string {
	return money.New(li.Amount).String()
}

// Quote bundles the snapshot with its display line items; callers persist
// both verbatim.
type Quote struct {
	Snapshot  Snapshot   `json:"snapshot"`
	LineItems []LineItem `json:"line_items"`
}

// LineItemSubtotal sums the engine-emitted charge rows. It always equals
// Snapshot.Subtotal.
func (q Quote) LineItemSubtotal() int64 {
	sum := money.New(0)
	for _, li := range q.LineItems {
		if li.Type.isCharge() {
			sum = sum.Add(money.New(li.Amount))
		}
	}
	return sum.Cents()
}

// DiscountLineItem builds a caller-applied discount row. The amount off is
// recorded negative so rows still sum to the amount charged.
func DiscountLineItem(label string, amountOff int64, sortOrder int) LineItem {
	if amountOff > 0 {
		amountOff = -amountOff
	}
	return LineItem{Label: label, Amount: amountOff, Type: LineItemDiscount, SortOrder: sortOrder}
}

// AdjustmentLineItem builds a caller-applied manual adjustment row; the
// amount keeps its sign.
func AdjustmentLineItem(label string, amount int64, sortOrder int) LineItem {
	return LineItem{Label: label, Amount: amount, Type: LineItemAdjustment, SortOrder: sortOrder}
}
