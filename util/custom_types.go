package util

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/make-os/dao/params"
	"github.com/shopspring/decimal"
)

// String represents a custom string.
// Amounts and vote weights are carried as String so that values larger
// than 64 bits (e.g. 500000000000000000000001) stay exact.
type String string

func (s String) String() string {
	return string(s)
}

// IsNumeric checks whether s is a plain decimal number.
// Exponent notation and values longer than params.MaxAmountLen are not numeric.
func (s String) IsNumeric() bool {
	str := s.String()
	if str == "" || len(str) > params.MaxAmountLen || strings.ContainsAny(str, "eE") {
		return false
	}
	return govalidator.IsFloat(str)
}

// Empty returns true if the string is empty
func (s String) Empty() bool {
	return len(s) == 0
}

// SS returns a short version of String() with the middle
// characters truncated when length is at least 32
func (s String) SS() string {
	if len(s) >= 32 {
		return fmt.Sprintf("%s...%s", string(s)[0:10], string(s)[len(s)-10:])
	}
	return string(s)
}

// Decimal returns the decimal representation of the string.
// An empty string is treated as zero.
// Panics if string failed to be converted to decimal.
func (s String) Decimal() decimal.Decimal {
	if s.Empty() {
		return decimal.Zero
	}
	return StrToDec(s.String())
}

// IsDecimal checks whether the string can be converted to Decimal
func (s String) IsDecimal() bool {
	_, err := decimal.NewFromString(string(s))
	return err == nil
}

// Add returns the sum of s and o as a String
func (s String) Add(o String) String {
	return String(s.Decimal().Add(o.Decimal()).String())
}

// DecToStr converts a decimal to String
func DecToStr(d decimal.Decimal) String {
	return String(d.String())
}
