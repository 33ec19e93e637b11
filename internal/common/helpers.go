package common

import (
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/math"
)

const (
	hashHead    = 8
	hashTail    = 8
	addressHead = 10
	addressTail = 6

	// TimeLayout is the layout used for block and status times
	TimeLayout = "2006-01-02 15:04:05"
)

// TruncateHash shortens a hash to first8...last8
// Example: TruncateHash("0123456789ABCDEF0123") = "01234567...CDEF0123"
func TruncateHash(hash string) string {
	return truncate(hash, hashHead, hashTail)
}

// TruncateAddress shortens an address to first10...last6
func TruncateAddress(address string) string {
	return truncate(address, addressHead, addressTail)
}

func truncate(s string, head, tail int) string {
	if len(s) <= head+tail {
		return s
	}
	return s[:head] + "..." + s[len(s)-tail:]
}

// FormatTime renders t in the local time zone. The zero time renders as "".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(TimeLayout)
}

// FeeLabel renders the estimated fee shown next to the transfer form
// Example: FeeLabel(500, "stake") = "500 stake"
func FeeLabel(amount int64, denom string) string {
	return fmt.Sprintf("%d %s", amount, denom)
}

// ParseBaseUnits parses a strictly positive integer amount of base units
// without float precision loss. Decimal points, signs and exponents are rejected.
func ParseBaseUnits(s string) (math.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.Int{}, fmt.Errorf("empty amount")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return math.Int{}, fmt.Errorf("invalid amount %q: must be a whole number of base units", s)
		}
	}

	n, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	if !n.IsPositive() {
		return math.Int{}, fmt.Errorf("amount must be greater than zero")
	}
	return n, nil
}

// CompareAmounts compares two integer amounts without float precision loss.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string) (int, error) {
	aVal, ok := math.NewIntFromString(strings.TrimSpace(a))
	if !ok {
		return 0, fmt.Errorf("failed to parse amount '%s'", a)
	}

	bVal, ok := math.NewIntFromString(strings.TrimSpace(b))
	if !ok {
		return 0, fmt.Errorf("failed to parse amount '%s'", b)
	}

	switch {
	case aVal.LT(bVal):
		return -1, nil
	case aVal.GT(bVal):
		return 1, nil
	}
	return 0, nil
}
