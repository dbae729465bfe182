package solver

import (
	"sort"

	"github.com/edgarcosta92/fibbing/reqdag"
)

func sortedDestKeys(reqs map[string]*reqdag.DAG) []string {
	out := make([]string, 0, len(reqs))
	for d := range reqs {
		out = append(out, d)
	}
	sort.Strings(out)

	return out
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// sameSet reports whether a and b, both already sorted ascending, hold
// the same elements.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// isSubset reports whether every element of a appears in b.
func isSubset(a, b []string) bool {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	for _, v := range a {
		if !set[v] {
			return false
		}
	}

	return true
}
