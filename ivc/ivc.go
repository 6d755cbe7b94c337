// Package ivc provides the pure projection utility the Director uses to turn
// a minimal inductive validity core (a set of equation left-hand sides) into
// the right-hand-side variables that core actually reads.
package ivc

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/jkind-go/director/spec"
)

// FindRightSide projects ivcSet (a set of equation left-hand-side variable
// names) onto the right-hand-side variables referenced by those equations.
//
// If allAssigned is true every equation's right-hand side is included,
// regardless of whether its left-hand side appears in ivcSet; this mirrors
// the "--all_assigned" behavior of reporting the full support of the node
// rather than just the minimal core.
func FindRightSide(ivcSet []string, allAssigned bool, equations []spec.Equation) []string {
	selected := make(map[string]struct{}, len(ivcSet))
	for _, lhs := range ivcSet {
		selected[lhs] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, eq := range equations {
		if !allAssigned {
			if _, ok := selected[eq.LHS]; !ok {
				continue
			}
		}
		for _, v := range eq.RHS {
			seen[v] = struct{}{}
		}
	}

	out := maps.Keys(seen)
	sort.Strings(out)
	return out
}
