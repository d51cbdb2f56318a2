// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"github.com/tidwall/gjson"
)

// AliasType is the discriminator carried by alias descriptors.
const AliasType = "VARIABLE_ALIAS"

// Kind tags the variant held by a Value.
type Kind int

const (
	KindUnclassified Kind = iota
	KindBoolean
	KindFloat
	KindString
	KindColor
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindColor:
		return "color"
	case KindAlias:
		return "alias"
	default:
		return "unclassified"
	}
}

// Color channels are in [0,1]. A nil A means fully opaque.
type Color struct {
	R, G, B float64
	A       *float64
}

// Alpha returns the alpha channel, defaulting to 1.
func (c Color) Alpha() float64 {
	if c.A == nil {
		return 1
	}
	return *c.A
}

// Alias references another variable. Source is filled in by the resolver and
// points at the shared target instance.
type Alias struct {
	ID     string
	Source *Variable
}

// Value is one per-mode value of a variable.
type Value struct {
	Kind    Kind
	Boolean bool
	Number  float64
	Text    string
	Color   *Color
	Alias   *Alias

	// Raw keeps the undecoded JSON of unclassified values.
	Raw []byte
}

// BoolValue, FloatValue, StringValue, ColorValue and AliasValue build
// classified values directly.
func BoolValue(b bool) *Value { return &Value{Kind: KindBoolean, Boolean: b} }

func FloatValue(f float64) *Value { return &Value{Kind: KindFloat, Number: f} }

func StringValue(s string) *Value { return &Value{Kind: KindString, Text: s} }

func ColorValue(c Color) *Value { return &Value{Kind: KindColor, Color: &c} }

func AliasValue(id string) *Value { return &Value{Kind: KindAlias, Alias: &Alias{ID: id}} }

// RGBA builds a color with an explicit alpha channel.
func RGBA(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: &a} }

// ParseValue classifies a raw per-mode JSON value by its structure. It never
// fails: anything it cannot recognise is returned as KindUnclassified.
func ParseValue(raw []byte) *Value {
	v := &Value{Kind: KindUnclassified}
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		v.Raw = append([]byte(nil), raw...)
		return v
	}

	res := gjson.ParseBytes(raw)
	switch res.Type {
	case gjson.True, gjson.False:
		v.Kind = KindBoolean
		v.Boolean = res.Bool()
	case gjson.Number:
		v.Kind = KindFloat
		v.Number = res.Float()
	case gjson.String:
		v.Kind = KindString
		v.Text = res.String()
	case gjson.JSON:
		if res.IsObject() {
			if alias, ok := parseAlias(res); ok {
				v.Kind = KindAlias
				v.Alias = alias
				return v
			}
			if color, ok := parseColor(res); ok {
				v.Kind = KindColor
				v.Color = color
				return v
			}
		}
	}
	if v.Kind == KindUnclassified {
		v.Raw = append([]byte(nil), raw...)
	}
	return v
}

// parseAlias accepts any object carrying the alias tag. A missing, empty or
// non-string id is kept as is so the resolver reports it as dangling.
func parseAlias(obj gjson.Result) (*Alias, bool) {
	tag := obj.Get("type")
	if tag.Type != gjson.String || tag.Str != AliasType {
		return nil, false
	}
	id := obj.Get("id")
	if id.Type == gjson.String {
		return &Alias{ID: id.Str}, true
	}
	return &Alias{ID: id.Raw}, true
}

func parseColor(obj gjson.Result) (*Color, bool) {
	if obj.Get("type").Exists() {
		return nil, false
	}
	r, g, b := obj.Get("r"), obj.Get("g"), obj.Get("b")
	if r.Type != gjson.Number || g.Type != gjson.Number || b.Type != gjson.Number {
		return nil, false
	}
	c := &Color{R: r.Num, G: g.Num, B: b.Num}
	if a := obj.Get("a"); a.Type == gjson.Number {
		alpha := a.Num
		c.A = &alpha
	}
	return c, true
}

// IsAlias reports whether v is an alias descriptor.
func IsAlias(v *Value) bool {
	return v != nil && v.Kind == KindAlias && v.Alias != nil
}

// IsColor reports whether v is a literal color.
func IsColor(v *Value) bool {
	return v != nil && v.Kind == KindColor && v.Color != nil
}

// IsScalar reports whether v is a boolean, number or string literal.
func IsScalar(v *Value) bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindBoolean, KindFloat, KindString:
		return true
	}
	return false
}
