package prthrottler

import "sort"

// PolicyRule grants authors with at least MinMerged merged pull requests up
// to AllowedOpen simultaneously open pull requests.
type PolicyRule struct {
	MinMerged   int
	AllowedOpen int
}

// PolicyTable is an ordered set of rules, conceptually ascending by
// MinMerged. Duplicate thresholds are allowed; the later rule wins.
type PolicyTable []PolicyRule

// defaultAllowedOpen applies when no rules are configured at all.
const defaultAllowedOpen = 1

// Resolve returns the allowed number of open pull requests for an author
// with the given merged count. The rule with the greatest MinMerged not
// exceeding merged wins; merged counts below the smallest threshold inherit
// the smallest rule. Gaps between thresholds inherit the lower rule.
func (t PolicyTable) Resolve(merged int) int {
	if len(t) == 0 {
		return defaultAllowedOpen
	}
	rules := make(PolicyTable, len(t))
	copy(rules, t)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].MinMerged < rules[j].MinMerged
	})
	selected := rules[0]
	for _, r := range rules[1:] {
		if r.MinMerged > merged {
			break
		}
		selected = r
	}
	return selected.AllowedOpen
}
