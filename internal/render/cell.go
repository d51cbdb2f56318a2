package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/specialistvlad/figvars/internal/model"
)

// Lookup is what the renderers need from a normalization result.
type Lookup interface {
	Literal(v *model.Variable, modeID string) (*model.Value, []*model.Variable, error)
	Collection(id string) *model.VariableCollection
}

// CellView is one rendered per-mode value.
type CellView struct {
	// Text is the display form of the literal value.
	Text string
	// Hex and CSS are set for colors.
	Hex string
	CSS string
	// AliasName is the target's full name when the value is an alias.
	AliasName string
}

// Empty reports whether nothing should be displayed.
func (c CellView) Empty() bool {
	return c.Text == "" && c.AliasName == ""
}

// String joins the alias target and the literal for single-line output.
func (c CellView) String() string {
	switch {
	case c.AliasName == "":
		return c.Text
	case c.Text == "":
		return "→ " + c.AliasName
	default:
		return "→ " + c.AliasName + " (" + c.Text + ")"
	}
}

// Cell renders v under modeID. Variables of an unknown resolved type, and
// modes without a value, give an empty cell. Aliases show the target's name
// and the literal at the end of the chain.
func Cell(v *model.Variable, modeID string, lookup Lookup) CellView {
	if v == nil || !v.ResolvedType.Known() {
		return CellView{}
	}
	val := v.Value(modeID)
	if val == nil {
		return CellView{}
	}
	if !model.IsAlias(val) {
		return literal(val)
	}

	view := CellView{AliasName: val.Alias.ID}
	if val.Alias.Source != nil {
		view.AliasName = val.Alias.Source.Name
	}
	if lookup == nil {
		return view
	}
	lit, _, err := lookup.Literal(v, modeID)
	if err != nil || lit == nil {
		return view
	}
	resolved := literal(lit)
	resolved.AliasName = view.AliasName
	return resolved
}

func literal(val *model.Value) CellView {
	if val == nil {
		return CellView{}
	}
	switch val.Kind {
	case model.KindString:
		return CellView{Text: val.Text}
	case model.KindBoolean:
		if val.Boolean {
			return CellView{Text: "True"}
		}
		return CellView{Text: "False"}
	case model.KindFloat:
		return CellView{Text: strconv.FormatFloat(val.Number, 'f', -1, 64)}
	case model.KindColor:
		hex := Hex(*val.Color)
		return CellView{Text: hex, Hex: hex, CSS: CSS(*val.Color)}
	}
	return CellView{}
}

// Hex formats c as #rrggbb, appending the alpha byte only when it is below 1.
func Hex(c model.Color) string {
	s := fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
	if a := c.Alpha(); a < 1 {
		s += fmt.Sprintf("%02x", channel(a))
	}
	return s
}

// CSS formats c as a CSS rgba() color.
func CSS(c model.Color) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		channel(c.R), channel(c.G), channel(c.B),
		strconv.FormatFloat(c.Alpha(), 'f', -1, 64))
}

func channel(f float64) int {
	n := int(math.Round(f * 255))
	return max(0, min(255, n))
}
