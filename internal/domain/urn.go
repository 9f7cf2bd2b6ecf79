package domain

import (
	"fmt"
	"strings"
)

// URN addresses an arbitrary entity for relation purposes without the graph
// store knowing its schema. Grammar: urn:<namespace>:<collection>[:<id>].
type URN string

func (u URN) String() string { return string(u) }

// ParseURN validates s against the URN grammar and returns its parts.
func ParseURN(s string) (namespace, collection, id string, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return "", "", "", fmt.Errorf("urn %q: %w", s, ErrInvalidURN)
	}
	if parts[0] != "urn" {
		return "", "", "", fmt.Errorf("urn %q: missing urn prefix: %w", s, ErrInvalidURN)
	}
	for _, p := range parts[1:] {
		if p == "" {
			return "", "", "", fmt.Errorf("urn %q: empty segment: %w", s, ErrInvalidURN)
		}
	}
	if len(parts) == 4 {
		id = parts[3]
	}
	return parts[1], parts[2], id, nil
}

// ValidateURN reports whether s is a well-formed URN.
func ValidateURN(s string) error {
	_, _, _, err := ParseURN(s)
	return err
}

// CanonicalPair orders two URNs lexicographically. Edges store the pair as
// given but are unique on the canonical ordering, so the same unordered pair
// collides regardless of direction.
func CanonicalPair(a, b string) (lo, hi string) {
	if a <= b {
		return a, b
	}
	return b, a
}
