// Package testutil provides builders and a harness for integration tests.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Payload builds a variables payload document for tests.
type Payload struct {
	collections map[string]any
	variables   map[string]any
}

// NewPayload starts an empty payload.
func NewPayload() *Payload {
	return &Payload{collections: map[string]any{}, variables: map[string]any{}}
}

// Collection adds a collection. The first mode is the default one. Modes
// are given as id, name pairs.
func (p *Payload) Collection(id, name string, modes ...string) *Payload {
	var ms []map[string]string
	for i := 0; i+1 < len(modes); i += 2 {
		ms = append(ms, map[string]string{"modeId": modes[i], "name": modes[i+1]})
	}
	c := map[string]any{"id": id, "name": name, "modes": ms}
	if len(ms) > 0 {
		c["defaultModeId"] = ms[0]["modeId"]
	}
	p.collections[id] = c
	return p
}

// Variable adds a local variable. values maps mode ids to raw JSON.
func (p *Payload) Variable(id, name, collectionID, resolvedType string, values map[string]string) *Payload {
	p.variables[id] = p.variable(id, name, collectionID, resolvedType, values, false)
	return p
}

// RemoteVariable adds a variable published from another file.
func (p *Payload) RemoteVariable(id, name, collectionID, resolvedType string, values map[string]string) *Payload {
	p.variables[id] = p.variable(id, name, collectionID, resolvedType, values, true)
	return p
}

func (p *Payload) variable(id, name, collectionID, resolvedType string, values map[string]string, remote bool) map[string]any {
	byMode := make(map[string]json.RawMessage, len(values))
	for mode, raw := range values {
		byMode[mode] = json.RawMessage(raw)
	}
	return map[string]any{
		"id":                   id,
		"name":                 name,
		"variableCollectionId": collectionID,
		"resolvedType":         resolvedType,
		"valuesByMode":         byMode,
		"remote":               remote,
	}
}

// JSON renders the payload document.
func (p *Payload) JSON(t *testing.T) string {
	t.Helper()
	doc := map[string]any{
		"status": 200,
		"error":  false,
		"meta": map[string]any{
			"variableCollections": p.collections,
			"variables":           p.variables,
		},
	}
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(out)
}

// Alias is the raw JSON of an alias to id.
func Alias(id string) string {
	return `{"type":"VARIABLE_ALIAS","id":"` + id + `"}`
}
