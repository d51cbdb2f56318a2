package projection

import (
	"strings"

	"github.com/specialistvlad/figvars/internal/grouping"
	"github.com/specialistvlad/figvars/internal/model"
)

// KeyPrefix starts every synthetic group row key.
const KeyPrefix = "group-"

// ModeValue is a variable's value under one mode column.
type ModeValue struct {
	ModeID string
	Value  *model.Value
}

// VariableRow is a leaf variable embedded in its parent group's row.
type VariableRow struct {
	Key      string
	Variable *model.Variable
	Values   []ModeValue
}

// Row is the header row of one group. Children points at the rows of the
// direct child groups, which also appear after it in the flat list.
type Row struct {
	Key       string
	Name      string
	Path      []string
	Depth     int
	ParentKey string
	Hidden    bool
	Variables []VariableRow
	Children  []*Row
}

// Flatten lists one row per group in pre-order. It does not touch the tree
// and returns an equal result on every call.
func Flatten(groups []*model.Group, modes []model.Mode) []*Row {
	var rows []*Row
	flatten(groups, modes, nil, "", &rows)
	return rows
}

func flatten(groups []*model.Group, modes []model.Mode, prefix []string, parentKey string, rows *[]*Row) []*Row {
	var level []*Row
	for _, g := range groups {
		path := append(append([]string(nil), prefix...), g.Name)
		row := &Row{
			Key:       RowKey(path),
			Name:      g.Name,
			Path:      path,
			Depth:     len(prefix),
			ParentKey: parentKey,
			Hidden:    g.Hidden,
		}
		for _, v := range g.Variables {
			row.Variables = append(row.Variables, variableRow(v, modes))
		}
		*rows = append(*rows, row)
		level = append(level, row)

		row.Children = flatten(g.Groups, modes, path, row.Key, rows)
	}
	return level
}

func variableRow(v *model.Variable, modes []model.Mode) VariableRow {
	vr := VariableRow{Key: v.ID, Variable: v, Values: make([]ModeValue, 0, len(modes))}
	for _, m := range modes {
		vr.Values = append(vr.Values, ModeValue{ModeID: m.ModeID, Value: v.Value(m.ModeID)})
	}
	return vr
}

// RowKey builds the synthetic key of the group at path. Keys embed the full
// path so equally named groups under different parents stay distinct.
func RowKey(path []string) string {
	return KeyPrefix + grouping.JoinPath(path)
}

// GroupKey turns a slash-joined group path into its row key. A value that
// already is a row key is returned as is.
func GroupKey(ref string) string {
	if ref == "" || strings.HasPrefix(ref, KeyPrefix) {
		return ref
	}
	return KeyPrefix + ref
}

// ExpandedKeys returns the keys of every row; tables start fully expanded.
func ExpandedKeys(rows []*Row) []string {
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	return keys
}

// FilterOption is one entry of the group filter drop-down.
type FilterOption struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// GroupFilterOptions lists every group, depth first.
func GroupFilterOptions(groups []*model.Group) []FilterOption {
	var opts []FilterOption
	grouping.Walk(groups, func(path []string, g *model.Group) bool {
		opts = append(opts, FilterOption{Text: g.Name, Value: RowKey(path)})
		return true
	})
	return opts
}
