package amount

import "strings"

const (
	// Scale is the number of implicit fractional digits in a raw balance.
	Scale = 18

	// FractionDigits is the number of fractional digits kept for display.
	FractionDigits = 2

	// thousandsSeparator is inserted between groups of the integer part.
	thousandsSeparator = ','

	// groupSize is the number of digits per thousands group.
	groupSize = 3

	// roundUpDigit is the smallest rounding digit that rounds the fraction up.
	roundUpDigit = '5'

	zeroInteger  = "0"
	zeroFraction = "00"
)

// Display is a balance ready for text rendering as Integer + "." + Fraction.
type Display struct {
	// Integer is the thousands-grouped integer part without leading zeros ("0" for none).
	Integer string `json:"integer"`

	// Fraction is always exactly FractionDigits digits.
	Fraction string `json:"fraction"`
}

// String joins the integer and fractional parts with a decimal point.
func (d Display) String() string {
	return d.Integer + "." + d.Fraction
}

// Format converts a raw 18-decimal balance into its rounded display form.
// An empty string is treated as zero. The input must contain only the digits 0-9;
// other characters produce unspecified output.
//
// Rounding is round-half-up on the third fractional digit alone. Digits after
// the third are never inspected, so "...449" rounds down.
//
// Example: Format("1234560000000000000000") returns {"1,234", "56"}.
func Format(raw string) Display {
	if raw == "" {
		return Display{Integer: zeroInteger, Fraction: zeroFraction}
	}

	padded := raw
	if len(padded) < Scale+1 {
		padded = strings.Repeat("0", Scale+1-len(padded)) + padded
	}

	intPart := trimLeadingZeros(padded[:len(padded)-Scale])
	fracPart := padded[len(padded)-Scale:]

	fraction := fracPart[:FractionDigits]
	if fracPart[FractionDigits] >= roundUpDigit {
		var carry bool
		fraction, carry = incrementDigits(fraction)
		if carry {
			intPart = addOne(intPart)
		}
	}

	return Display{Integer: GroupThousands(intPart), Fraction: fraction}
}

// GroupThousands inserts a comma every three digits counting from the right.
// It operates on a plain numeral and never on an already grouped string.
//
// Example: GroupThousands("1234567") returns "1,234,567".
func GroupThousands(digits string) string {
	if len(digits) <= groupSize {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/groupSize)

	head := len(digits) % groupSize
	if head == 0 {
		head = groupSize
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += groupSize {
		b.WriteByte(thousandsSeparator)
		b.WriteString(digits[i : i+groupSize])
	}

	return b.String()
}

// addOne increments a decimal digit string by one, growing it by a leading
// digit when the carry runs off the most significant position ("999" -> "1000").
func addOne(digits string) string {
	incremented, carry := incrementDigits(digits)
	if carry {
		return "1" + incremented
	}
	return incremented
}

// incrementDigits adds one to a fixed-width digit string and reports whether a
// carry leaves the most significant digit. The width of the result is unchanged,
// so "99" yields ("00", true).
func incrementDigits(digits string) (string, bool) {
	out := []byte(digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < '9' {
			out[i]++
			return string(out), false
		}
		out[i] = '0'
	}
	return string(out), true
}

// trimLeadingZeros strips leading zeros, keeping a single "0" for zero values.
func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return zeroInteger
	}
	return trimmed
}
