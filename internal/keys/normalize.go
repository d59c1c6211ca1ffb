package keys

import (
	"fmt"
	"sort"
	"strings"

	"order-mapper/internal/common"
)

// Case is the canonical key case a record is normalized to.
type Case int

const (
	// Lower folds keys to lower case (order detail family).
	Lower Case = iota
	// Upper folds keys to upper case (address and order history families).
	Upper
)

// String returns the config spelling of the case.
func (c Case) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return common.UnknownStr
	}
}

// ParseCase parses "upper" or "lower", ignoring case.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	default:
		return Lower, fmt.Errorf("unknown key case %q", s)
	}
}

// Fold applies the case to a single key.
func (c Case) Fold(key string) string {
	if c == Upper {
		return strings.ToUpper(key)
	}

	return strings.ToLower(key)
}

// Matches reports whether key is already in this case.
func (c Case) Matches(key string) bool {
	return c.Fold(key) == key
}

// Normalize returns a copy of rec with every key folded to case c. Values are
// shared, not copied, and rec itself is never modified.
//
// When several keys fold to the same result, a key already in case c wins;
// otherwise the lexically greatest original key is written last and wins.
func Normalize(rec map[string]any, c Case) map[string]any {
	out := make(map[string]any, len(rec))

	originals := make([]string, 0, len(rec))
	for k := range rec {
		originals = append(originals, k)
	}

	sort.Strings(originals)

	exact := make(map[string]bool, len(rec))

	for _, k := range originals {
		folded := c.Fold(k)
		if exact[folded] {
			continue
		}

		out[folded] = rec[k]

		if folded == k {
			exact[folded] = true
		}
	}

	return out
}
