package export

import (
	"github.com/specialistvlad/figvars/internal/model"
	"github.com/specialistvlad/figvars/internal/normalize"
	"github.com/specialistvlad/figvars/internal/render"
)

// Document is the format-neutral export tree.
type Document struct {
	Collections []CollectionDoc `json:"collections" yaml:"collections"`
}

type CollectionDoc struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Modes       []string      `json:"modes" yaml:"modes"`
	DefaultMode string        `json:"defaultMode" yaml:"defaultMode"`
	Groups      []GroupDoc    `json:"groups,omitempty" yaml:"groups,omitempty"`
	Variables   []VariableDoc `json:"variables,omitempty" yaml:"variables,omitempty"`
}

type GroupDoc struct {
	Name      string        `json:"name" yaml:"name"`
	Groups    []GroupDoc    `json:"groups,omitempty" yaml:"groups,omitempty"`
	Variables []VariableDoc `json:"variables,omitempty" yaml:"variables,omitempty"`
}

type VariableDoc struct {
	ID           string              `json:"id" yaml:"id"`
	Name         string              `json:"name" yaml:"name"`
	Type         string              `json:"type" yaml:"type"`
	Description  string              `json:"description,omitempty" yaml:"description,omitempty"`
	Values       map[string]any      `json:"values" yaml:"values"`
	ReferencedBy map[string][]string `json:"referencedBy,omitempty" yaml:"referencedBy,omitempty"`
}

// Build assembles the document for every collection of res, ordered by
// collection name. Variables of the root group are attached to the
// collection itself; its child groups are kept under an unnamed group.
func Build(res *normalize.Result) *Document {
	doc := &Document{Collections: []CollectionDoc{}}
	for _, id := range res.CollectionIDs() {
		doc.Collections = append(doc.Collections, collectionDoc(res, res.Collection(id)))
	}
	return doc
}

func collectionDoc(res *normalize.Result, c *model.VariableCollection) CollectionDoc {
	cd := CollectionDoc{ID: c.ID, Name: c.Name, Modes: []string{}}
	for _, m := range c.Modes {
		cd.Modes = append(cd.Modes, m.Name)
	}
	if m, ok := c.ModeByID(c.DefaultModeID); ok {
		cd.DefaultMode = m.Name
	}
	for _, g := range c.Groups {
		if g.Name == "" {
			cd.Variables = append(cd.Variables, variableDocs(res, c, g.Variables)...)
			if len(g.Groups) > 0 {
				// Names with a leading separator keep their empty first segment.
				lead := GroupDoc{Name: ""}
				for _, child := range g.Groups {
					lead.Groups = append(lead.Groups, groupDoc(res, c, child))
				}
				cd.Groups = append(cd.Groups, lead)
			}
			continue
		}
		cd.Groups = append(cd.Groups, groupDoc(res, c, g))
	}
	return cd
}

func groupDoc(res *normalize.Result, c *model.VariableCollection, g *model.Group) GroupDoc {
	gd := GroupDoc{Name: g.Name, Variables: variableDocs(res, c, g.Variables)}
	for _, child := range g.Groups {
		gd.Groups = append(gd.Groups, groupDoc(res, c, child))
	}
	return gd
}

func variableDocs(res *normalize.Result, c *model.VariableCollection, vars []*model.Variable) []VariableDoc {
	docs := make([]VariableDoc, 0, len(vars))
	for _, v := range vars {
		vd := VariableDoc{
			ID:          v.ID,
			Name:        v.ActualName,
			Type:        string(v.ResolvedType),
			Description: v.Description,
			Values:      make(map[string]any, len(c.Modes)),
		}
		for _, m := range c.Modes {
			vd.Values[m.Name] = exportValue(v.Value(m.ModeID))
		}
		vd.ReferencedBy = referencedBy(res, v)
		docs = append(docs, vd)
	}
	return docs
}

func referencedBy(res *normalize.Result, v *model.Variable) map[string][]string {
	if v.ReferenceAliases.Len() == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, modeID := range v.ReferenceAliases.Modes() {
		for _, src := range v.ReferenceAliases[modeID] {
			name := modeID
			if sc := res.Collection(src.VariableCollectionID); sc != nil {
				if m, ok := sc.ModeByID(modeID); ok {
					name = m.Name
				}
			}
			out[name] = append(out[name], Reference(src.Name))
		}
	}
	return out
}

// Reference formats a variable name as an alias reference.
func Reference(name string) string {
	return "{" + name + "}"
}

// exportValue returns the plain Go form of a per-mode value.
func exportValue(val *model.Value) any {
	if val == nil {
		return nil
	}
	switch val.Kind {
	case model.KindAlias:
		if val.Alias.Source != nil {
			return Reference(val.Alias.Source.Name)
		}
		return Reference(val.Alias.ID)
	case model.KindColor:
		return render.Hex(*val.Color)
	case model.KindBoolean:
		return val.Boolean
	case model.KindFloat:
		return val.Number
	case model.KindString:
		return val.Text
	}
	return nil
}
