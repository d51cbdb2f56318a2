// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

// ResolvedType is the declared scalar type of a variable.
type ResolvedType string

const (
	TypeBoolean ResolvedType = "BOOLEAN"
	TypeFloat   ResolvedType = "FLOAT"
	TypeString  ResolvedType = "STRING"
	TypeColor   ResolvedType = "COLOR"
)

// Known reports whether t is one of the four types the renderers understand.
func (t ResolvedType) Known() bool {
	switch t {
	case TypeBoolean, TypeFloat, TypeString, TypeColor:
		return true
	}
	return false
}

// CodeSyntax holds the per-platform code hints of a variable.
type CodeSyntax struct {
	Web     string
	Android string
	IOS     string
}

// Variable is a single design token with one value per mode.
type Variable struct {
	ID                   string
	Key                  string
	Name                 string
	VariableCollectionID string
	ResolvedType         ResolvedType
	ValuesByMode         map[string]*Value
	Remote               bool
	Description          string
	HiddenFromPublishing bool
	Scopes               []string
	CodeSyntax           CodeSyntax

	// Derived during normalization.
	ActualName       string
	Hidden           bool
	ReferenceAliases ReferenceAliases
}

// Value returns the variable's value under modeID, or nil.
func (v *Variable) Value(modeID string) *Value {
	if v == nil {
		return nil
	}
	return v.ValuesByMode[modeID]
}

// Mode is a named axis of variation inside a collection.
type Mode struct {
	ModeID string
	Name   string
}

// VariableCollection is the top-level namespace of variables and modes.
type VariableCollection struct {
	ID                   string
	Name                 string
	Modes                []Mode
	DefaultModeID        string
	Remote               bool
	HiddenFromPublishing bool
	VariableIDs          []string
	Groups               []*Group
}

// ModeByID looks a mode up by its identifier.
func (c *VariableCollection) ModeByID(modeID string) (Mode, bool) {
	for _, m := range c.Modes {
		if m.ModeID == modeID {
			return m, true
		}
	}
	return Mode{}, false
}

// FindMode accepts either a mode id or a mode name. Ids take precedence.
func (c *VariableCollection) FindMode(ref string) (Mode, bool) {
	if m, ok := c.ModeByID(ref); ok {
		return m, true
	}
	for _, m := range c.Modes {
		if m.Name == ref {
			return m, true
		}
	}
	return Mode{}, false
}

// EffectiveMode maps a mode id coming from another collection onto this one.
// Unknown ids fall back to the default mode.
func (c *VariableCollection) EffectiveMode(modeID string) string {
	if c == nil {
		return modeID
	}
	if _, ok := c.ModeByID(modeID); ok {
		return modeID
	}
	return c.DefaultModeID
}

// Group is a hierarchical bucket derived from slash-delimited names. The
// empty name is reserved for variables with no further path segment.
type Group struct {
	Name      string
	Groups    []*Group
	Variables []*Variable
	Hidden    bool
}
