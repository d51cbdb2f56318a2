// Package dag provides a small directed graph with cycle detection. The
// resolver loads alias edges into it, one node per (variable, mode) pair, to
// prove that every alias chain ends in a literal value.
package dag
