package dag

import (
	"strings"
	"sync"
)

// Graph is a collection of nodes and their directed edges.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order keeps insertion order so traversals are deterministic.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the nodes with an edge pointing at this node.
	deps map[string]*node
	// dependents holds the nodes this node points at, in insertion order.
	dependents []*node
}

// CycleError reports a cycle found by DetectCycles. Path starts and ends with
// the same node id.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "cycle detected: " + strings.Join(e.Path, " -> ")
}
