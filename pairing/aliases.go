package pairing

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Aliases maps an alias name to the handles it stands for.
type Aliases map[string][]string

// Expand replaces every handle that names an alias with the alias's handles.
// Expansion is one level deep. The result keeps first-seen order and has no
// duplicates.
func (a Aliases) Expand(handles []string) []string {
	expanded := lo.FlatMap(handles, func(h string, _ int) []string {
		if members, ok := a[h]; ok {
			return members
		}
		return []string{h}
	})

	expanded = lo.Map(expanded, func(h string, _ int) string {
		return strings.TrimPrefix(strings.TrimSpace(h), handlePrefix)
	})

	return lo.Uniq(lo.Compact(expanded))
}

// Names returns the alias names in sorted order.
func (a Aliases) Names() []string {
	names := lo.Keys(map[string][]string(a))
	slices.Sort(names)
	return names
}
