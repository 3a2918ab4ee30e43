package texgen

import "strings"

// Attribute is a single key=value option of a container environment.
type Attribute struct {
	Key   string
	Value string
}

// Attr is a shorthand for declaring an attribute in builder calls.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Attributes is an ordered list of container options. Options render in
// declaration order, so output for the same input is always the same.
type Attributes []Attribute

// Set assigns a value for the key. Setting the same key twice overwrites the
// previous value while keeping the position of the original declaration.
func (a Attributes) Set(key, value string) Attributes {
	for i := range a {
		if a[i].Key == key {
			a[i].Value = value
			return a
		}
	}

	return append(a, Attribute{Key: key, Value: value})
}

// String renders options in bracket syntax: [key=value, key=value], or an
// empty string when there are no options.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}

	pairs := make([]string, len(a))
	for i, attr := range a {
		pairs[i] = attr.Key + "=" + attr.Value
	}

	return "[" + strings.Join(pairs, ", ") + "]"
}

// Options renders bare command flags in bracket syntax: [flag, flag], or an
// empty string when there are no flags.
func Options(flags []string) string {
	if len(flags) == 0 {
		return ""
	}

	return "[" + strings.Join(flags, ", ") + "]"
}

// ParseAttributes parses options given as key=value strings, for example from
// a document manifest, keeping the declaration order. A string without = is
// treated as a key with an empty value.
func ParseAttributes(raw []string) []Attribute {
	attrs := make([]Attribute, 0, len(raw))
	for _, pair := range raw {
		n := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(n) == 1 {
			attrs = append(attrs, Attribute{Key: n[0]})
			continue
		}

		attrs = append(attrs, Attribute{Key: n[0], Value: n[1]})
	}

	return attrs
}
