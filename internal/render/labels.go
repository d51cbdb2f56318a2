package render

import (
	"github.com/specialistvlad/figvars/internal/model"
)

// Icon returns a one-glyph marker for the resolved type, or "" when unknown.
func Icon(t model.ResolvedType) string {
	switch t {
	case model.TypeString:
		return "¶"
	case model.TypeBoolean:
		return "◐"
	case model.TypeFloat:
		return "#"
	case model.TypeColor:
		return "●"
	}
	return ""
}

// Tag is one platform code syntax hint.
type Tag struct {
	Platform string `json:"platform"`
	Value    string `json:"value"`
}

// CodeSyntaxTags lists the web, android and ios hints in that order,
// skipping empty ones.
func CodeSyntaxTags(v *model.Variable) []Tag {
	var tags []Tag
	for _, t := range []Tag{
		{Platform: "web", Value: v.CodeSyntax.Web},
		{Platform: "android", Value: v.CodeSyntax.Android},
		{Platform: "ios", Value: v.CodeSyntax.IOS},
	} {
		if t.Value != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ReferenceLines lists who aliases v, one "mode ← name" line per entry,
// modes in id order. The mode is named after the referencing variable's
// collection when lookup knows it.
func ReferenceLines(v *model.Variable, lookup Lookup) []string {
	var lines []string
	for _, modeID := range v.ReferenceAliases.Modes() {
		for _, src := range v.ReferenceAliases[modeID] {
			lines = append(lines, modeName(src, modeID, lookup)+" ← "+src.Name)
		}
	}
	return lines
}

func modeName(src *model.Variable, modeID string, lookup Lookup) string {
	if lookup == nil {
		return modeID
	}
	c := lookup.Collection(src.VariableCollectionID)
	if c == nil {
		return modeID
	}
	if m, ok := c.ModeByID(modeID); ok {
		return m.Name
	}
	return modeID
}
