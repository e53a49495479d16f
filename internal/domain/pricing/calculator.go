package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"rolloff-core/internal/pkg/dateutil"
	"rolloff-core/internal/pkg/errs"
	"rolloff-core/internal/pkg/money"
)

var ErrInvalidDateRange = errors.New("pickup must not be before dropoff")

// CalculateRentalDays returns the whole calendar days between dropoff and
// pickup. Both instants normalize to midnight UTC on their own calendar
// date first, so time of day and zone offsets never shift the count. Pickup
// on or before the dropoff date yields 0.
func CalculateRentalDays(dropoff, pickup time.Time) int {
	return dateutil.DaysBetween(dropoff, pickup)
}

// CalculatePricing computes the full cost breakdown for a rental window
// under the given rule. The raw pickup instant preceding the raw dropoff
// instant is rejected with ErrInvalidDateRange; a pickup later the same
// calendar day is fine and counts as zero rental days.
//
// The result is a pure function of the inputs: same rule and dates, same
// quote.
func CalculatePricing(rule Rule, dropoff, pickup time.Time) (Quote, error) {
	if pickup.Before(dropoff) {
		return Quote{}, errs.Wrapf(ErrInvalidDateRange, "pickup %s precedes dropoff %s",
			pickup.Format(time.RFC3339), dropoff.Format(time.RFC3339))
	}

	rentalDays := CalculateRentalDays(dropoff, pickup)
	extraDays := rentalDays - rule.IncludedDays
	if extraDays < 0 {
		extraDays = 0
	}
	extraDaysCost := int64(extraDays) * rule.ExtraDayFee
	subtotal := rule.BasePrice + rule.DeliveryFee + rule.HaulFee + extraDaysCost

	var snap Snapshot
	if err := copier.Copy(&snap, &rule); err != nil {
		return Quote{}, errs.Wrap(err, "freeze rule into snapshot")
	}
	snap.RentalDays = rentalDays
	snap.ExtraDays = extraDays
	snap.Subtotal = subtotal
	// Tax is a caller-level concern; the base engine charges subtotal.
	snap.Total = subtotal

	return Quote{
		Snapshot:  snap,
		LineItems: buildLineItems(rule, extraDays, extraDaysCost),
	}, nil
}

// buildLineItems emits display rows in fixed order with contiguous sort
// orders. Zero-amount fees are omitted entirely, not emitted as zero rows.
func buildLineItems(rule Rule, extraDays int, extraDaysCost int64) []LineItem {
	items := make([]LineItem, 0, 4)
	add := func(label string, amount int64, typ LineItemType) {
		items = append(items, LineItem{
			Label:     label,
			Amount:    amount,
			Type:      typ,
			SortOrder: len(items),
		})
	}

	add(fmt.Sprintf("%d Yard Dumpster Rental (%s)", rule.DumpsterSize, rule.WasteType),
		rule.BasePrice, LineItemBase)
	if rule.DeliveryFee > 0 {
		add("Delivery Fee", rule.DeliveryFee, LineItemDelivery)
	}
	if rule.HaulFee > 0 {
		add("Haul Fee", rule.HaulFee, LineItemHaul)
	}
	if extraDays > 0 {
		add(fmt.Sprintf("Extra Days (%d @ %s/day)", extraDays, money.FormatCents(rule.ExtraDayFee)),
			extraDaysCost, LineItemExtraDays)
	}
	return items
}

// CalculateOverage returns the minor-unit charge for tonnage beyond the
// snapshot's included allowance. Fractional cents round up so overweight
// loads are never undercharged; at or under the allowance the charge is 0.
func CalculateOverage(snap Snapshot, actualTons float64) int64 {
	overTons := decimal.NewFromFloat(actualTons).Sub(snap.IncludedTons)
	if overTons.Sign() <= 0 {
		return 0
	}
	return overTons.Mul(decimal.NewFromInt(snap.OveragePerTon)).Ceil().IntPart()
}
