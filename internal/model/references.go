// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "sort"

// ReferenceAliases indexes, per mode id, the variables whose value under that
// mode is an alias pointing at the owning variable.
type ReferenceAliases map[string][]*Variable

// Last returns the most recently recorded source for modeID.
func (r ReferenceAliases) Last(modeID string) *Variable {
	sources := r[modeID]
	if len(sources) == 0 {
		return nil
	}
	return sources[len(sources)-1]
}

// Modes returns the mode ids that carry at least one back-reference, sorted.
func (r ReferenceAliases) Modes() []string {
	modes := make([]string, 0, len(r))
	for m, sources := range r {
		if len(sources) > 0 {
			modes = append(modes, m)
		}
	}
	sort.Strings(modes)
	return modes
}

// Len counts the recorded (mode, source) edges.
func (r ReferenceAliases) Len() int {
	n := 0
	for _, sources := range r {
		n += len(sources)
	}
	return n
}

// AddReferenceAlias records that source aliases v under modeID. A repeated
// edge is ignored and reported with false.
func (v *Variable) AddReferenceAlias(modeID string, source *Variable) bool {
	if v.ReferenceAliases == nil {
		v.ReferenceAliases = make(ReferenceAliases)
	}
	for _, existing := range v.ReferenceAliases[modeID] {
		if existing == source {
			return false
		}
	}
	v.ReferenceAliases[modeID] = append(v.ReferenceAliases[modeID], source)
	return true
}

// SetReferenceAlias keeps source as the only back-reference for modeID.
func (v *Variable) SetReferenceAlias(modeID string, source *Variable) {
	if v.ReferenceAliases == nil {
		v.ReferenceAliases = make(ReferenceAliases)
	}
	v.ReferenceAliases[modeID] = []*Variable{source}
}
