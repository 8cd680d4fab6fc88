// Package shopid generates the short human-readable shop identifiers used
// across the platform ("SARASU001"). Generation is client-side: the admin
// sees the id before the manager record is ever submitted.
package shopid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	baseLen   = 6
	seqDigits = 3
)

var (
	nonAlnum       = regexp.MustCompile(`[^A-Z0-9]`)
	trailingDigits = regexp.MustCompile(`[0-9]+$`)
)

// Generate builds an id from the shop name plus a sequence number: the first
// six alphanumeric characters of the uppercased name, followed by one more
// than the highest sequence already used by an existing id with the same
// base, zero-padded to three digits.
func Generate(shopName string, existing []string) string {
	base := nonAlnum.ReplaceAllString(strings.ToUpper(strings.TrimSpace(shopName)), "")
	if len(base) > baseLen {
		base = base[:baseLen]
	}

	high := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, base) {
			continue
		}
		m := trailingDigits.FindString(id)
		if m == "" {
			continue
		}
		if n, err := strconv.Atoi(m); err == nil && n > high {
			high = n
		}
	}

	return fmt.Sprintf("%s%0*d", base, seqDigits, high+1)
}
