package htmlnode

import "strings"

// Attr is a single key="value" pair.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute map. Keys are unique and rendered in
// insertion order so output is deterministic.
type Attributes struct {
	attrs []Attr
}

// NewAttributes builds Attributes from alternating key, value arguments.
// A trailing key without a value is ignored.
func NewAttributes(kv ...string) Attributes {
	var a Attributes
	for i := 0; i+1 < len(kv); i += 2 {
		a.Set(kv[i], kv[i+1])
	}
	return a
}

// Set adds key with value, or replaces the value of an existing key
// in place, keeping its original position.
func (a *Attributes) Set(key, value string) {
	for i := range a.attrs {
		if a.attrs[i].Key == key {
			a.attrs[i].Value = value
			return
		}
	}
	a.attrs = append(a.attrs, Attr{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a.attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.attrs)
}

// All returns a copy of the attributes in insertion order.
func (a Attributes) All() []Attr {
	out := make([]Attr, len(a.attrs))
	copy(out, a.attrs)
	return out
}

// RenderAttributes renders key="value" pairs separated by single spaces.
// An empty set renders the empty string.
func RenderAttributes(a Attributes) string {
	if len(a.attrs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, attr := range a.attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}
