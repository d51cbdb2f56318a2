/*
Package normalize turns a decoded variables payload into a fully linked,
render-ready Result.

The pipeline runs in three passes:

 1. Arena construction: fresh model values are built from the wire DTOs, and
    every per-mode value is classified once into a tagged model.Value. The
    caller's payload is never mutated.

 2. Alias resolution (package resolver): aliases are linked to their targets
    and the reverse reference index is filled.

 3. Grouping (package grouping): each collection's non-remote variables are
    folded into its group tree, in a deterministic order.

Any error aborts the whole run and no Result is returned.
*/
package normalize
