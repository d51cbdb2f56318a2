package normalize

import "fmt"

// UnknownCollectionError reports a local variable whose collection id is not
// part of the payload.
type UnknownCollectionError struct {
	VariableID   string
	CollectionID string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("variable %q belongs to unknown collection %q", e.VariableID, e.CollectionID)
}
