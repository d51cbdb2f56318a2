package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvedAlias is returned by Literal when an alias has no Source,
// which means Resolve was not run on the arena.
var ErrUnresolvedAlias = errors.New("alias has not been resolved")

// ErrMissingValue is returned by Literal when a variable reached through an
// alias has no value under the effective mode. Remote variables of
// collections missing from the payload are the usual cause.
var ErrMissingValue = errors.New("alias target has no value under mode")

// DanglingAliasError reports an alias whose target id is not part of the
// variable set.
type DanglingAliasError struct {
	CollectionID string
	VariableID   string
	ModeID       string
	TargetID     string
}

func (e *DanglingAliasError) Error() string {
	return fmt.Sprintf("variable %q in collection %q aliases unknown variable %q under mode %q",
		e.VariableID, e.CollectionID, e.TargetID, e.ModeID)
}

// AliasCycleError reports alias chains that never reach a literal value. Path
// lists "variableID@modeID" nodes and starts and ends with the same node.
type AliasCycleError struct {
	Path []string
	Err  error
}

func (e *AliasCycleError) Error() string {
	return "alias cycle: " + strings.Join(e.Path, " -> ")
}

func (e *AliasCycleError) Unwrap() error {
	return e.Err
}
