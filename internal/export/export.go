package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/figvars/internal/normalize"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatHCL:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q: must be json, yaml or hcl", s)
}

// Write encodes res to w in the given format.
func Write(w io.Writer, format Format, res *normalize.Result) error {
	doc := Build(res)
	switch format {
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatYAML:
		return WriteYAML(w, doc)
	case FormatHCL:
		return WriteHCL(w, doc)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json export: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc *Document) error {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode yaml export: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write yaml export: %w", err)
	}
	return nil
}
