package projection

import (
	"github.com/specialistvlad/figvars/internal/model"
)

// PaletteSection is one collapsible group of the palette view.
type PaletteSection struct {
	Key       string
	Name      string
	Depth     int
	Variables []*model.Variable
	Sections  []*PaletteSection
}

// PaletteView is the palette rendering of a collection under one mode.
type PaletteView struct {
	CollectionID string
	Name         string
	Modes        []model.Mode
	ActiveModeID string
	Sections     []*PaletteSection
}

// Palette builds the palette for collection. modeRef may be a mode id or a
// mode name; anything unknown selects the default mode. Hidden groups and
// variables are left out unless editing.
func Palette(collection *model.VariableCollection, modeRef string, editing bool) *PaletteView {
	view := &PaletteView{
		CollectionID: collection.ID,
		Name:         collection.Name,
		Modes:        append([]model.Mode(nil), collection.Modes...),
		ActiveModeID: collection.DefaultModeID,
	}
	if m, ok := collection.FindMode(modeRef); ok {
		view.ActiveModeID = m.ModeID
	}
	view.Sections = sections(collection.Groups, nil, editing)
	return view
}

func sections(groups []*model.Group, prefix []string, editing bool) []*PaletteSection {
	var out []*PaletteSection
	for _, g := range groups {
		if g.Hidden && !editing {
			continue
		}
		path := append(append([]string(nil), prefix...), g.Name)
		s := &PaletteSection{Key: RowKey(path), Name: g.Name, Depth: len(prefix)}
		for _, v := range g.Variables {
			if v.Hidden && !editing {
				continue
			}
			s.Variables = append(s.Variables, v)
		}
		s.Sections = sections(g.Groups, path, editing)
		out = append(out, s)
	}
	return out
}
