package resolve

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"model-resolver/internal/introspect"
	"model-resolver/internal/schema"
)

// SortProperties orders props in place: explicitly positioned properties
// first by ascending position, then the rest. The sort is stable, so the
// incoming (declaration) order breaks every tie.
func SortProperties(props []*schema.Property) {
	slices.SortStableFunc(props, compareProperties)
}

func compareProperties(a, b *schema.Property) int {
	switch {
	case a.Position != nil && b.Position != nil:
		return cmp.Compare(*a.Position, *b.Position)
	case a.Position != nil:
		return -1
	case b.Position != nil:
		return 1
	default:
		return 0
	}
}

var accessorPrefixes = []string{"get", "is"}

// displayName returns the property name to publish for def. An accessor
// whose prefix is not followed by an upper-case rune, such as "getaway"
// or "is2fa", is a literal name rather than a bean getter, so it wins
// over the provider's derived name.
func displayName(def introspect.PropertyDef) string {
	acc := def.AccessorName
	for _, prefix := range accessorPrefixes {
		rest, ok := strings.CutPrefix(acc, prefix)
		if !ok || rest == "" {
			continue
		}

		next, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsUpper(next) {
			return acc
		}
	}

	return def.Name
}
