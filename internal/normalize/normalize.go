package normalize

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/grouping"
	"github.com/specialistvlad/figvars/internal/model"
	"github.com/specialistvlad/figvars/internal/payload"
	"github.com/specialistvlad/figvars/internal/resolver"
)

// Options tunes a normalization run.
type Options struct {
	Resolver resolver.Options
}

// Result is the normalized output: every collection with its group tree and
// every variable, both keyed by id.
type Result struct {
	Collections map[string]*model.VariableCollection
	Variables   map[string]*model.Variable
}

// Normalize builds an owned arena from resp, resolves aliases and groups
// variables. It either fully succeeds or returns a nil Result.
func Normalize(ctx context.Context, resp *payload.Response, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	if resp == nil {
		return nil, fmt.Errorf("normalize: nil payload")
	}
	logger.Debug("Normalize: Starting.", "collections", len(resp.Meta.VariableCollections), "variables", len(resp.Meta.Variables))

	res := newArena(resp)
	if err := res.checkMembership(); err != nil {
		return nil, err
	}
	logger.Debug("Normalize: Arena built.")

	if err := resolver.Resolve(ctx, res.Variables, res.Collections, opts.Resolver); err != nil {
		return nil, fmt.Errorf("failed to resolve aliases: %w", err)
	}

	for _, id := range res.CollectionIDs() {
		c := res.Collections[id]
		grouping.Build(ctx, c, res.members(c))
	}

	logger.Debug("Normalize: Finished.", "collections", len(res.Collections))
	return res, nil
}

func newArena(resp *payload.Response) *Result {
	res := &Result{
		Collections: make(map[string]*model.VariableCollection, len(resp.Meta.VariableCollections)),
		Variables:   make(map[string]*model.Variable, len(resp.Meta.Variables)),
	}

	for key, c := range resp.Meta.VariableCollections {
		if c == nil {
			continue
		}
		id := c.ID
		if id == "" {
			id = key
		}
		modes := make([]model.Mode, 0, len(c.Modes))
		for _, m := range c.Modes {
			modes = append(modes, model.Mode{ModeID: m.ModeID, Name: m.Name})
		}
		res.Collections[id] = &model.VariableCollection{
			ID:                   id,
			Name:                 c.Name,
			Modes:                modes,
			DefaultModeID:        c.DefaultModeID,
			Remote:               c.Remote,
			HiddenFromPublishing: c.HiddenFromPublishing,
			VariableIDs:          append([]string(nil), c.VariableIDs...),
		}
	}

	for key, v := range resp.Meta.Variables {
		if v == nil {
			continue
		}
		id := v.ID
		if id == "" {
			id = key
		}
		values := make(map[string]*model.Value, len(v.ValuesByMode))
		for modeID, raw := range v.ValuesByMode {
			values[modeID] = model.ParseValue(raw)
		}
		res.Variables[id] = &model.Variable{
			ID:                   id,
			Key:                  v.Key,
			Name:                 v.Name,
			VariableCollectionID: v.VariableCollectionID,
			ResolvedType:         model.ResolvedType(v.ResolvedType),
			ValuesByMode:         values,
			Remote:               v.Remote,
			Description:          v.Description,
			HiddenFromPublishing: v.HiddenFromPublishing,
			Scopes:               append([]string(nil), v.Scopes...),
			CodeSyntax: model.CodeSyntax{
				Web:     v.CodeSyntax.Web,
				Android: v.CodeSyntax.Android,
				IOS:     v.CodeSyntax.IOS,
			},
		}
	}
	return res
}

// checkMembership verifies that every local variable points at a known
// collection. Remote variables may belong to collections of other files.
func (r *Result) checkMembership() error {
	for _, id := range sortedKeys(r.Variables) {
		v := r.Variables[id]
		if v.Remote {
			continue
		}
		if _, ok := r.Collections[v.VariableCollectionID]; !ok {
			return &UnknownCollectionError{VariableID: v.ID, CollectionID: v.VariableCollectionID}
		}
	}
	return nil
}

// members lists the variables of c in the collection's declared order.
// Variables missing from VariableIDs follow, sorted by id.
func (r *Result) members(c *model.VariableCollection) []*model.Variable {
	var out []*model.Variable
	listed := make(map[string]bool, len(c.VariableIDs))
	for _, id := range c.VariableIDs {
		v, ok := r.Variables[id]
		if !ok || listed[id] || v.VariableCollectionID != c.ID {
			continue
		}
		listed[id] = true
		out = append(out, v)
	}
	for _, id := range sortedKeys(r.Variables) {
		v := r.Variables[id]
		if v.VariableCollectionID == c.ID && !listed[id] {
			out = append(out, v)
		}
	}
	return out
}

// CollectionIDs returns collection ids sorted by collection name, then id.
func (r *Result) CollectionIDs() []string {
	ids := sortedKeys(r.Collections)
	sort.SliceStable(ids, func(i, j int) bool {
		return r.Collections[ids[i]].Name < r.Collections[ids[j]].Name
	})
	return ids
}

// Variable returns the variable with the given id, or nil.
func (r *Result) Variable(id string) *model.Variable {
	return r.Variables[id]
}

// Collection returns the collection with the given id, or nil.
func (r *Result) Collection(id string) *model.VariableCollection {
	return r.Collections[id]
}

// Literal follows v's alias chain under modeID down to a literal value.
func (r *Result) Literal(v *model.Variable, modeID string) (*model.Value, []*model.Variable, error) {
	return resolver.Literal(v, modeID, r.Collections)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
