/*
Package resolver links alias values to the variables they reference and
builds the reverse reference index.

Resolution is a three-phase process over every (variable, mode, value)
triple, visited in variable id then mode id order:

 1. Validation: every alias target must exist. Missing targets are reported
    as *DanglingAliasError values and nothing is mutated.

 2. Cycle check: alias edges are loaded into a dag.Graph keyed by
    "variableID@modeID" so that every chain is proven to end in a literal.
    A cycle is reported as *AliasCycleError, again before any mutation.

 3. Linking: each alias gets its Source set to the shared target instance and
    the target records the aliasing variable in its ReferenceAliases under
    the same mode id.

Either all links are applied or none are.
*/
package resolver
