package resolver

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/figvars/internal/ctxlog"
	"github.com/specialistvlad/figvars/internal/dag"
	"github.com/specialistvlad/figvars/internal/model"
)

// aliasRef is a single (variable, mode) alias occurrence.
type aliasRef struct {
	variable *model.Variable
	modeID   string
	alias    *model.Alias
}

// Resolve links every alias in variables to its target and fills the
// targets' ReferenceAliases. collections is used to map a mode id onto the
// target's own collection when following chains; it may be nil.
func Resolve(ctx context.Context, variables map[string]*model.Variable, collections map[string]*model.VariableCollection, opts Options) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolve: Starting alias resolution.", "variables", len(variables), "backrefs", opts.Backrefs.String())

	refs := collectAliases(variables)
	logger.Debug("Resolve: Aliases collected.", "aliases", len(refs))

	if err := validate(refs, variables); err != nil {
		return err
	}
	logger.Debug("Resolve: All alias targets exist.")

	if err := checkCycles(refs, variables, collections); err != nil {
		return err
	}
	logger.Debug("Resolve: Cycle detection passed.")

	for _, ref := range refs {
		target := variables[ref.alias.ID]
		ref.alias.Source = target

		switch opts.Backrefs {
		case BackrefsLastWriter:
			target.SetReferenceAlias(ref.modeID, ref.variable)
		default:
			target.AddReferenceAlias(ref.modeID, ref.variable)
		}
	}

	logger.Debug("Resolve: Alias resolution complete.", "linked", len(refs))
	return nil
}

// collectAliases lists alias occurrences in variable id, then mode id order.
func collectAliases(variables map[string]*model.Variable) []aliasRef {
	ids := make([]string, 0, len(variables))
	for id := range variables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var refs []aliasRef
	for _, id := range ids {
		v := variables[id]
		modes := make([]string, 0, len(v.ValuesByMode))
		for m := range v.ValuesByMode {
			modes = append(modes, m)
		}
		sort.Strings(modes)

		for _, m := range modes {
			val := v.ValuesByMode[m]
			if !model.IsAlias(val) {
				continue
			}
			refs = append(refs, aliasRef{variable: v, modeID: m, alias: val.Alias})
		}
	}
	return refs
}

func validate(refs []aliasRef, variables map[string]*model.Variable) error {
	var errs []error
	for _, ref := range refs {
		if _, ok := variables[ref.alias.ID]; ok {
			continue
		}
		errs = append(errs, &DanglingAliasError{
			CollectionID: ref.variable.VariableCollectionID,
			VariableID:   ref.variable.ID,
			ModeID:       ref.modeID,
			TargetID:     ref.alias.ID,
		})
	}
	return errors.Join(errs...)
}

func checkCycles(refs []aliasRef, variables map[string]*model.Variable, collections map[string]*model.VariableCollection) error {
	g := dag.New()
	for _, ref := range refs {
		target := variables[ref.alias.ID]
		from := nodeID(ref.variable.ID, ref.modeID)
		to := nodeID(target.ID, effectiveMode(collections, target, ref.modeID))
		if from == to {
			return &AliasCycleError{Path: []string{from, to}}
		}
		g.AddNode(from)
		g.AddNode(to)
		if err := g.AddEdge(from, to); err != nil {
			return fmt.Errorf("internal error linking alias %s: %w", from, err)
		}
	}

	if err := g.DetectCycles(); err != nil {
		var cycleErr *dag.CycleError
		if errors.As(err, &cycleErr) {
			return &AliasCycleError{Path: cycleErr.Path, Err: err}
		}
		return err
	}
	return nil
}

func nodeID(variableID, modeID string) string {
	return variableID + "@" + modeID
}

// effectiveMode maps modeID onto v's collection. A variable whose collection
// does not define the mode is read in that collection's default mode.
func effectiveMode(collections map[string]*model.VariableCollection, v *model.Variable, modeID string) string {
	if _, ok := v.ValuesByMode[modeID]; ok {
		return modeID
	}
	if c, ok := collections[v.VariableCollectionID]; ok {
		return c.EffectiveMode(modeID)
	}
	return modeID
}

// Literal follows alias sources from v under modeID until a non-alias value
// is found. It returns that value and the variables crossed on the way, the
// last of which owns the literal. A value that is not an alias is returned
// with an empty chain. An alias target without a value under the effective
// mode gives ErrMissingValue.
func Literal(v *model.Variable, modeID string, collections map[string]*model.VariableCollection) (*model.Value, []*model.Variable, error) {
	var chain []*model.Variable
	seen := make(map[string]bool)

	cur, mode := v, modeID
	for {
		key := nodeID(cur.ID, mode)
		if seen[key] {
			return nil, chain, &AliasCycleError{Path: []string{key, key}}
		}
		seen[key] = true

		val := cur.Value(mode)
		if val == nil && len(chain) > 0 {
			return nil, chain, fmt.Errorf("variable %q mode %q: %w", cur.ID, mode, ErrMissingValue)
		}
		if !model.IsAlias(val) {
			return val, chain, nil
		}
		if val.Alias.Source == nil {
			return nil, chain, fmt.Errorf("variable %q mode %q: %w", cur.ID, mode, ErrUnresolvedAlias)
		}

		cur = val.Alias.Source
		mode = effectiveMode(collections, cur, mode)
		chain = append(chain, cur)
	}
}
