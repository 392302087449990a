// Package amount formats 18-decimal fixed-point token balances for display.
//
// Balances arrive as base-10 digit strings of unbounded length scaled by 10^18.
// Formatting works on the digits directly so that no value ever passes through a
// float64 or a fixed-width integer:
//   - the last 18 digits are the fractional part, everything before is the integer part
//   - the fraction is rounded to 2 digits by looking at the 3rd fractional digit only
//   - a rounding carry out of the fraction increments the integer part digit by digit
//   - the integer part is grouped in thousands with a comma separator
package amount
