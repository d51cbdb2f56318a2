package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/specialistvlad/figvars/internal/grouping"
	"github.com/specialistvlad/figvars/internal/model"
	"github.com/specialistvlad/figvars/internal/projection"
)

// TableOptions control WriteTable.
type TableOptions struct {
	Filter projection.FilterOptions
}

// WriteTable writes collection as a table with one column per mode. Each
// group contributes a header row followed by its variables. Editing adds a
// visibility column.
func WriteTable(w io.Writer, collection *model.VariableCollection, lookup Lookup, opts TableOptions) error {
	rows := projection.Filter(projection.Flatten(collection.Groups, collection.Modes), opts.Filter)

	headers := []string{"Group", "Name"}
	for _, m := range collection.Modes {
		headers = append(headers, m.Name)
	}
	if opts.Filter.Editing {
		headers = append(headers, "Visible")
	}

	groupRows := make(map[int]bool)
	var data [][]string
	for _, r := range rows {
		groupRows[len(data)] = true
		header := make([]string, len(headers))
		header[0] = groupLabel(r)
		if opts.Filter.Editing {
			header[len(header)-1] = visible(r.Hidden)
		}
		data = append(data, header)

		for _, vr := range r.Variables {
			line := []string{"", strings.TrimSpace(Icon(vr.Variable.ResolvedType) + " " + vr.Variable.ActualName)}
			for _, mv := range vr.Values {
				c := Cell(vr.Variable, mv.ModeID, lookup)
				line = append(line, strings.TrimSpace(swatchFor(c)+" "+c.String()))
			}
			if opts.Filter.Editing {
				line = append(line, visible(vr.Variable.Hidden))
			}
			data = append(data, line)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case groupRows[row]:
				return groupStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		})

	if _, err := fmt.Fprintln(w, titleStyle.Render(collection.Name)); err != nil {
		return fmt.Errorf("failed to write table title: %w", err)
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// WritePalette writes the palette view of collection under the mode named
// or identified by modeRef.
func WritePalette(w io.Writer, collection *model.VariableCollection, lookup Lookup, modeRef string, editing bool) error {
	view := projection.Palette(collection, modeRef, editing)

	var b strings.Builder
	b.WriteString(titleStyle.Render(view.Name))
	b.WriteString("\n")

	var modes []string
	for _, m := range view.Modes {
		if m.ModeID == view.ActiveModeID {
			modes = append(modes, headerStyle.Render("["+m.Name+"]"))
			continue
		}
		modes = append(modes, mutedStyle.Render(m.Name))
	}
	b.WriteString(strings.Join(modes, " "))
	b.WriteString("\n")

	writeSections(&b, view.Sections, view.ActiveModeID, lookup)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write palette: %w", err)
	}
	return nil
}

func writeSections(b *strings.Builder, sections []*projection.PaletteSection, modeID string, lookup Lookup) {
	for _, s := range sections {
		indent := strings.Repeat("  ", s.Depth)
		name := s.Name
		if s.Depth == 0 && name == "" {
			name = rootGroupLabel
		}
		fmt.Fprintf(b, "%s%s\n", indent, groupStyle.Render(name))
		for _, v := range s.Variables {
			c := Cell(v, modeID, lookup)
			fmt.Fprintf(b, "%s  %s %s %s\n", indent, swatchFor(c), v.ActualName, mutedStyle.Render(c.String()))
		}
		writeSections(b, s.Sections, modeID, lookup)
	}
}

// rootGroupLabel stands in for the unnamed top-level group.
const rootGroupLabel = "(ungrouped)"

func groupLabel(r *projection.Row) string {
	if r.Depth == 0 && r.Name == "" {
		return rootGroupLabel
	}
	return strings.Repeat("  ", r.Depth) + grouping.JoinPath(r.Path)
}

func swatchFor(c CellView) string {
	if c.Hex == "" {
		return ""
	}
	return swatch(c.Hex[:7])
}

func visible(hidden bool) string {
	if hidden {
		return "no"
	}
	return "yes"
}
