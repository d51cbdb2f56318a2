// Package projection derives view models from a normalized collection: the
// flat, filterable row list behind the tabular view and the collapsible
// palette tree.
//
// Everything here is a pure function of the group tree. Search terms, the
// editing flag and the active mode are explicit parameters.
package projection
