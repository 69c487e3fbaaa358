package doccode

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the business document a number is generated for.
type Kind string

const (
	Receipt  Kind = "receipt"
	Shipment Kind = "shipment"
	Movement Kind = "movement"
	Check    Kind = "check"
)

var prefixes = map[Kind]string{
	Receipt:  "RK",
	Shipment: "CK",
	Movement: "YK",
	Check:    "PK",
}

// Prefix returns the two-letter marker placed in front of the dated code, or
// "" for an unknown kind.
func (k Kind) Prefix() string { return prefixes[k] }

// ParseKind resolves a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := prefixes[k]; !ok {
		return "", fmt.Errorf("unknown document kind %q (want one of %s)", s, strings.Join(KindNames(), ", "))
	}
	return k, nil
}

// KindNames lists the known kinds in sorted order.
func KindNames() []string {
	names := make([]string, 0, len(prefixes))
	for k := range prefixes {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}
