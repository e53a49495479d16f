package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"rolloff-core/internal/pkg/config"
	"rolloff-core/internal/pkg/errs"
)

// Money is an integer minor-unit (cent) amount. All pricing math in the core
// runs on this representation; floats appear only at display boundaries.
type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) String() string {
	return usd.Format(m)
}

// Formatter renders cent amounts for one display locale.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, errs.Wrap(err, "parse display locale")
	}
	return Formatter{printer: message.NewPrinter(tag)}, nil
}

// NewDisplayFormatter builds the formatter for the configured display
// locale.
func NewDisplayFormatter(cfg config.PricingConfig) (Formatter, error) {
	return NewFormatter(cfg.Locale)
}

// Format renders a money value as a currency string with grouped thousands,
// e.g. 125000 cents -> "$1,250.00". Presentation only; the output is never
// fed back into a calculation.
func (f Formatter) Format(m Money) string {
	sign := ""
	cents := m.cents
	if m.IsNegative() {
		sign = "-"
		cents = -cents
	}
	return f.printer.Sprintf("%s$%v.%02d", sign, number.Decimal(cents/100), cents%100)
}

// Cents formats a raw minor-unit amount.
func (f Formatter) Cents(cents int64) string {
	return f.Format(New(cents))
}

var usd = Formatter{printer: message.NewPrinter(language.AmericanEnglish)}

// FormatCents renders cents in the default en-US locale.
func FormatCents(cents int64) string {
	return usd.Cents(cents)
}
