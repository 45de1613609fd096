package resolver

import (
	"fmt"
	"strings"
)

// Entry lists, in priority order, the raw data keys accepted for one canonical attribute.
type Entry struct {
	Attr    string
	Aliases []string
}

// Table is an ordered alias dictionary: canonical attribute -> ordered raw keys.
// A raw key belongs to at most one attribute of a table.
type Table struct {
	order   []string
	aliases map[string][]string
	owner   map[string]string
}

// NewTable validates and builds a table. It rejects empty attributes or aliases,
// an alias repeated inside one attribute, and an alias claimed by two attributes.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		aliases: make(map[string][]string, len(entries)),
		owner:   make(map[string]string),
	}
	for _, e := range entries {
		attr := strings.TrimSpace(e.Attr)
		if attr == "" {
			return nil, fmt.Errorf("alias table: empty attribute name")
		}
		if _, dup := t.aliases[attr]; dup {
			return nil, fmt.Errorf("alias table: attribute %q declared twice", attr)
		}
		if len(e.Aliases) == 0 {
			return nil, fmt.Errorf("alias table: attribute %q has no aliases", attr)
		}

		list := make([]string, 0, len(e.Aliases))
		for _, a := range e.Aliases {
			if strings.TrimSpace(a) == "" {
				return nil, fmt.Errorf("alias table: attribute %q has an empty alias", attr)
			}
			if prev, taken := t.owner[a]; taken {
				if prev == attr {
					return nil, fmt.Errorf("alias table: alias %q repeated in %q", a, attr)
				}
				return nil, fmt.Errorf("alias table: alias %q is ambiguous between %q and %q", a, prev, attr)
			}
			t.owner[a] = attr
			list = append(list, a)
		}
		t.order = append(t.order, attr)
		t.aliases[attr] = list
	}
	return t, nil
}

// MustTable is NewTable for package-level tables; a bad table stops the program at init.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Attributes returns the canonical attributes in declaration order.
func (t *Table) Attributes() []string {
	return append([]string(nil), t.order...)
}

// Aliases returns a copy of the alias list of attr (nil when unknown).
func (t *Table) Aliases(attr string) []string {
	list, ok := t.aliases[attr]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// Owner reports which attribute a raw key is an alias of.
func (t *Table) Owner(key string) (string, bool) {
	attr, ok := t.owner[key]
	return attr, ok
}

// Lookup returns the value of the first alias of attr present in data with a non-empty value.
func (t *Table) Lookup(data Data, attr string) (string, bool) {
	for _, key := range t.aliases[attr] {
		if v, ok := data.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// LookupAll resolves every attribute of the table; unresolved attributes are omitted.
func (t *Table) LookupAll(data Data) map[string]string {
	out := make(map[string]string, len(t.order))
	for _, attr := range t.order {
		if v, ok := t.Lookup(data, attr); ok {
			out[attr] = v
		}
	}
	return out
}
