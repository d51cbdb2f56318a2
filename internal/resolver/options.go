package resolver

import "fmt"

// BackrefPolicy selects how ReferenceAliases is populated.
type BackrefPolicy int

const (
	// BackrefsAll keeps every aliasing variable per mode, in processing order.
	BackrefsAll BackrefPolicy = iota
	// BackrefsLastWriter keeps a single entry per mode: the last variable
	// processed wins. Kept for consumers that expect one referrer per mode.
	BackrefsLastWriter
)

func (p BackrefPolicy) String() string {
	if p == BackrefsLastWriter {
		return "last"
	}
	return "all"
}

// ParseBackrefPolicy accepts "all" or "last". An empty string means "all".
func ParseBackrefPolicy(s string) (BackrefPolicy, error) {
	switch s {
	case "", "all":
		return BackrefsAll, nil
	case "last":
		return BackrefsLastWriter, nil
	}
	return BackrefsAll, fmt.Errorf("invalid backref policy %q: must be 'all' or 'last'", s)
}

// Options tunes Resolve.
type Options struct {
	Backrefs BackrefPolicy
}
