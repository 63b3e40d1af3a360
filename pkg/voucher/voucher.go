// Package voucher generates the 6-digit voucher numbers printed on
// order invoices. Vouchers are identifiers for paperwork, not security
// tokens, and are not guaranteed globally unique.
package voucher

import (
	"math/rand/v2"
	"strconv"
)

// Length is the number of decimal digits in a voucher.
const Length = 6

// Generate returns a random 6-digit decimal string in [100000, 999999].
func Generate() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// IsValid reports whether s looks like a generated voucher.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 100000 && n <= 999999
}
