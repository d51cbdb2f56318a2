package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// WriteHCL writes doc as HCL. Each collection becomes a collection block;
// variables become variable blocks labelled with their full slash path, so
// the group tree can be rebuilt from the labels.
func WriteHCL(w io.Writer, doc *Document) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, c := range doc.Collections {
		if i > 0 {
			root.AppendNewline()
		}
		block := root.AppendNewBlock("collection", []string{c.Name})
		body := block.Body()
		body.SetAttributeValue("id", cty.StringVal(c.ID))
		body.SetAttributeValue("modes", stringList(c.Modes))
		body.SetAttributeValue("default_mode", cty.StringVal(c.DefaultMode))

		for _, v := range c.Variables {
			appendVariable(body, "", v)
		}
		for _, g := range c.Groups {
			appendGroup(body, g.Name, g)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write hcl export: %w", err)
	}
	return nil
}

func appendGroup(body *hclwrite.Body, path string, g GroupDoc) {
	for _, v := range g.Variables {
		appendVariable(body, path, v)
	}
	for _, child := range g.Groups {
		appendGroup(body, path+"/"+child.Name, child)
	}
}

func appendVariable(body *hclwrite.Body, path string, v VariableDoc) {
	name := v.Name
	if path != "" {
		name = path + "/" + v.Name
	}

	body.AppendNewline()
	vb := body.AppendNewBlock("variable", []string{name}).Body()
	vb.SetAttributeValue("id", cty.StringVal(v.ID))
	vb.SetAttributeValue("type", cty.StringVal(v.Type))
	if v.Description != "" {
		vb.SetAttributeValue("description", cty.StringVal(v.Description))
	}
	vb.SetAttributeValue("values", objectOf(v.Values))

	if len(v.ReferencedBy) > 0 {
		refs := make(map[string]cty.Value, len(v.ReferencedBy))
		for mode, names := range v.ReferencedBy {
			refs[mode] = stringList(names)
		}
		vb.SetAttributeValue("referenced_by", cty.ObjectVal(refs))
	}
}

func objectOf(values map[string]any) cty.Value {
	if len(values) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(values))
	for _, k := range sortedKeys(values) {
		attrs[k] = ctyValue(values[k])
	}
	return cty.ObjectVal(attrs)
}

func ctyValue(v any) cty.Value {
	switch x := v.(type) {
	case string:
		return cty.StringVal(x)
	case bool:
		return cty.BoolVal(x)
	case float64:
		return cty.NumberFloatVal(x)
	}
	return cty.NullVal(cty.String)
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(items))
	for _, s := range items {
		vals = append(vals, cty.StringVal(s))
	}
	return cty.ListVal(vals)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
