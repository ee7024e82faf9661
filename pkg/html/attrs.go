package html

import (
	"bytes"
	stdhtml "html"
	"slices"
)

// Attrs holds element attributes keyed by name.
type Attrs map[string]string

// Set assigns an attribute value.
func (a Attrs) Set(name, value string) {
	a[name] = value
}

// AddClass merges classes into the class attribute without duplicates.
func (a Attrs) AddClass(classes ...string) {
	merged := MergeClasses(append([]string{a["class"]}, classes...)...)
	if merged == "" {
		delete(a, "class")
		return
	}
	a["class"] = merged
}

// Clone returns a shallow copy of the attribute map.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Names returns the attribute names in output order.
func (a Attrs) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String renders the attributes in output order, each preceded by a space.
func (a Attrs) String() string {
	var buf bytes.Buffer
	a.write(&buf)
	return buf.String()
}

func (a Attrs) write(buf *bytes.Buffer) {
	for _, name := range a.Names() {
		buf.WriteByte(' ')
		buf.WriteString(name)
		buf.WriteString(`="`)
		buf.WriteString(escape(a[name]))
		buf.WriteByte('"')
	}
}

func escape(value string) string {
	return stdhtml.EscapeString(value)
}
