// Package advice persists invariants and other hints across runs so a later
// invocation can skip work a previous one already did. Files are YAML, the
// same structured-config idiom used elsewhere in the retrieved corpus for
// on-disk settings.
package advice

import "strings"

// Advice is the set of hints read back in at the start of a run.
type Advice struct {
	VarDecls   []string `yaml:"varDecls"`
	Invariants []string `yaml:"invariants"`
}

// HasInvariantsFor reports whether any stored invariant mentions property;
// the matching is intentionally coarse (substring) since the real advice
// engine's applicability analysis is out of scope for this module.
func (a *Advice) HasInvariantsFor(property string) bool {
	if a == nil {
		return false
	}
	for _, inv := range a.Invariants {
		if strings.Contains(inv, property) {
			return true
		}
	}
	return false
}
