package projection

import "strings"

// FilterOptions are the user-controlled inputs of the tabular view.
type FilterOptions struct {
	// Search is matched case-insensitively against group and variable names.
	Search string
	// Editing shows hidden groups and variables.
	Editing bool
	// GroupKey, when set, keeps only that group's row and its direct children.
	GroupKey string
}

// Filter returns the rows to display. Rows are copied; the input is left as
// is. Hidden groups take their whole subtree with them unless editing. With a
// search term, a row stays when it, one of its variables or one of its
// descendant groups matches.
func Filter(rows []*Row, opts FilterOptions) []*Row {
	term := strings.ToLower(opts.Search)
	dropped := make(map[string]bool)
	matches := make(map[*Row]bool)

	var out []*Row
	for _, r := range rows {
		if dropped[r.ParentKey] || (!opts.Editing && r.Hidden) {
			dropped[r.Key] = true
			continue
		}
		if opts.GroupKey != "" && r.Key != opts.GroupKey && r.ParentKey != opts.GroupKey {
			continue
		}

		vars := visibleVariables(r.Variables, opts.Editing)
		if term != "" && !subtreeMatches(r, term, opts.Editing, matches) {
			continue
		}

		cp := *r
		cp.Variables = vars
		out = append(out, &cp)
	}
	return out
}

func visibleVariables(vars []VariableRow, editing bool) []VariableRow {
	if editing {
		return vars
	}
	out := make([]VariableRow, 0, len(vars))
	for _, v := range vars {
		if !v.Variable.Hidden {
			out = append(out, v)
		}
	}
	return out
}

func subtreeMatches(r *Row, term string, editing bool, memo map[*Row]bool) bool {
	if m, ok := memo[r]; ok {
		return m
	}
	match := strings.Contains(strings.ToLower(r.Name), term)
	if !match {
		for _, v := range visibleVariables(r.Variables, editing) {
			if strings.Contains(strings.ToLower(v.Variable.Name), term) {
				match = true
				break
			}
		}
	}
	if !match {
		for _, child := range r.Children {
			if !editing && child.Hidden {
				continue
			}
			if subtreeMatches(child, term, editing, memo) {
				match = true
				break
			}
		}
	}
	memo[r] = match
	return match
}
