// Package grouping folds the flat, slash-delimited variable names of a
// collection into a tree of named groups.
//
// "Brand/Primary/500" becomes group "Brand" > group "Primary" holding the
// variable with ActualName "500". A name without a separator lands in the
// root group keyed by the empty string.
package grouping
