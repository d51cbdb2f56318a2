package grouping

import (
	"context"
	"strings"

	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/model"
)

// Separator splits a variable name into its group path.
const Separator = "/"

// Build appends every non-remote variable to collection's group tree, in the
// given order. Calling Build on a collection that already has groups extends
// the existing tree; use Reset first for a rebuild.
func Build(ctx context.Context, collection *model.VariableCollection, variables []*model.Variable) {
	logger := ctxlog.FromContext(ctx)
	placed, skipped := 0, 0

	for _, v := range variables {
		if v.Remote {
			skipped++
			continue
		}
		place(collection, v)
		placed++
	}

	logger.Debug("Group tree built.", "collection", collection.ID, "placed", placed, "remote_skipped", skipped, "root_groups", len(collection.Groups))
}

// Reset drops the collection's group tree.
func Reset(collection *model.VariableCollection) {
	collection.Groups = nil
}

// place walks the segments of v.Name, creating groups as needed, and appends
// v to the deepest one.
func place(collection *model.VariableCollection, v *model.Variable) {
	segments := Split(v.Name)
	last := len(segments) - 1

	current := &collection.Groups
	var parent *model.Group
	for _, segment := range segments[:last] {
		parent = findOrCreate(current, segment)
		current = &parent.Groups
	}
	if parent == nil {
		parent = findOrCreate(current, "")
	}

	v.ActualName = segments[last]
	v.Hidden = false
	parent.Variables = append(parent.Variables, v)
}

// findOrCreate returns the group called name in groups, appending a new one
// when it does not exist yet. Matching is exact and case-sensitive.
func findOrCreate(groups *[]*model.Group, name string) *model.Group {
	for _, g := range *groups {
		if g.Name == name {
			return g
		}
	}
	g := &model.Group{Name: name}
	*groups = append(*groups, g)
	return g
}

// Split returns the path segments of a variable name. It always returns at
// least one segment.
func Split(name string) []string {
	return strings.Split(name, Separator)
}

// ParentPath returns name without its last segment, or "" for a name with no
// separator.
func ParentPath(name string) string {
	i := strings.LastIndex(name, Separator)
	if i < 0 {
		return ""
	}
	return name[:i]
}

// WalkFunc is called for each group with the names of the groups leading to
// it, itself included. Returning false skips the group's children.
type WalkFunc func(path []string, g *model.Group) bool

// Walk visits groups depth first, in tree order.
func Walk(groups []*model.Group, fn WalkFunc) {
	walk(groups, nil, fn)
}

func walk(groups []*model.Group, prefix []string, fn WalkFunc) {
	for _, g := range groups {
		path := append(append([]string(nil), prefix...), g.Name)
		if fn(path, g) {
			walk(g.Groups, path, fn)
		}
	}
}

// JoinPath renders a walk path as a slash-joined group path. The reserved
// root group "" contributes nothing.
func JoinPath(path []string) string {
	if len(path) == 1 && path[0] == "" {
		return ""
	}
	return strings.Join(path, Separator)
}
