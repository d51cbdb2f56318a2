package payload

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Response is the envelope of GET /v1/files/{key}/variables/local.
type Response struct {
	Status int  `json:"status"`
	Error  bool `json:"error"`
	Meta   Meta `json:"meta"`
}

// Meta carries the collections and variables, both keyed by id.
type Meta struct {
	VariableCollections map[string]*Collection `json:"variableCollections"`
	Variables           map[string]*Variable   `json:"variables"`
}

// Mode is a single mode of a collection.
type Mode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// Collection is a variable collection without the derived group tree.
type Collection struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Key                  string   `json:"key,omitempty"`
	Modes                []Mode   `json:"modes"`
	DefaultModeID        string   `json:"defaultModeId"`
	Remote               bool     `json:"remote"`
	HiddenFromPublishing bool     `json:"hiddenFromPublishing"`
	VariableIDs          []string `json:"variableIds"`
}

// CodeSyntax holds the optional per-platform code hints.
type CodeSyntax struct {
	Web     string `json:"WEB,omitempty"`
	Android string `json:"ANDROID,omitempty"`
	IOS     string `json:"iOS,omitempty"`
}

// Variable is the raw variable record. Alias values are still in their
// {type, id} form inside ValuesByMode.
type Variable struct {
	ID                   string                     `json:"id"`
	Name                 string                     `json:"name"`
	Key                  string                     `json:"key"`
	VariableCollectionID string                     `json:"variableCollectionId"`
	ResolvedType         string                     `json:"resolvedType"`
	ValuesByMode         map[string]json.RawMessage `json:"valuesByMode"`
	Remote               bool                       `json:"remote"`
	Description          string                     `json:"description"`
	HiddenFromPublishing bool                       `json:"hiddenFromPublishing"`
	Scopes               []string                   `json:"scopes"`
	CodeSyntax           CodeSyntax                 `json:"codeSyntax"`
}

// Decode reads a Response from r.
func Decode(r io.Reader) (*Response, error) {
	var resp Response
	dec := json.NewDecoder(r)
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode variables payload: %w", err)
	}
	if resp.Meta.VariableCollections == nil {
		resp.Meta.VariableCollections = make(map[string]*Collection)
	}
	if resp.Meta.Variables == nil {
		resp.Meta.Variables = make(map[string]*Variable)
	}
	return &resp, nil
}

// LoadFile decodes the payload stored at path.
func LoadFile(path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload %s: %w", path, err)
	}
	defer f.Close()

	resp, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}
