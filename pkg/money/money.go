package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is an amount in minor currency units. All settlement arithmetic is
// done on Cents so totals reconcile exactly.
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromDecimal converts a decimal amount in major units to Cents, rounding half up.
// Negative amounts are clamped to zero.
func FromDecimal(d decimal.Decimal) Cents {
	if d.IsNegative() {
		return 0
	}
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// Parse converts user input such as "12.50" to Cents. Blank, non-numeric and
// negative input all yield zero.
func Parse(value string) Cents {
	return FromDecimal(ParseDecimal(value))
}

// ParseDecimal parses a decimal amount, treating anything unparseable as zero.
func ParseDecimal(value string) decimal.Decimal {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Decimal returns the amount in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Abs returns the absolute value
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// String returns the amount with two decimals, e.g. "33.34" or "-0.05".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Format prefixes the amount with a currency symbol, keeping the sign in front.
func (c Cents) Format(symbol string) string {
	if c < 0 {
		return "-" + symbol + (-c).String()
	}
	return symbol + c.String()
}

// Sum adds up a list of amounts.
func Sum(values ...Cents) Cents {
	var total Cents
	for _, v := range values {
		total += v
	}
	return total
}

// Min returns the smaller of two amounts
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}
