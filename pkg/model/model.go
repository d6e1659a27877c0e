package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ErrAttributeNotFound is returned when a requested field exists neither
// in the override mapping nor in the wrapped subtree.
var ErrAttributeNotFound = errors.New("attribute not found")

// Model wraps an XML subtree plus an optional mapping of override
// attributes. The zero value and a nil element are both usable; lookups
// on them simply fail with ErrAttributeNotFound.
type Model struct {
	elem      *etree.Element
	overrides map[string]string
}

// New wraps an element. A nil element yields an empty model.
func New(elem *etree.Element) *Model {
	return &Model{elem: elem}
}

// NewWithOverrides wraps an element together with override attributes
// that take precedence over the subtree during lookups.
func NewWithOverrides(elem *etree.Element, overrides map[string]string) *Model {
	return &Model{elem: elem, overrides: overrides}
}

// Get resolves a field by name. Resolution order:
//
//  1. the override mapping, matched by the exact key as given;
//  2. a child element with the name as given;
//  3. a child element with the camelCase form of an underscore name,
//     so company_name finds companyName.
//
// The error for an unresolved name wraps ErrAttributeNotFound and lists
// the known override keys and child tags.
func (m *Model) Get(name string) (string, error) {
	if v, ok := m.overrides[name]; ok {
		return v, nil
	}
	if m.elem != nil {
		if child := m.elem.SelectElement(name); child != nil {
			return child.Text(), nil
		}
		if camel := snakeToCamel(name); camel != name {
			if child := m.elem.SelectElement(camel); child != nil {
				return child.Text(), nil
			}
		}
	}
	return "", m.notFound(name)
}

// Has reports whether Get would resolve the name.
func (m *Model) Has(name string) bool {
	_, err := m.Get(name)
	return err == nil
}

// Int resolves a field and parses it as an integer.
func (m *Model) Int(name string) (int, error) {
	v, err := m.Get(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("attribute %q is not numeric: %q", name, v)
	}
	return n, nil
}

// Sub returns a nested model over a named child element, applying the
// same name bridging as Get.
func (m *Model) Sub(name string) (*Model, error) {
	if m.elem != nil {
		if child := m.elem.SelectElement(name); child != nil {
			return New(child), nil
		}
		if camel := snakeToCamel(name); camel != name {
			if child := m.elem.SelectElement(camel); child != nil {
				return New(child), nil
			}
		}
	}
	return nil, m.notFound(name)
}

// Each calls fn for every child element of a named child, typically an
// array element. Missing names yield the usual lookup error.
func (m *Model) Each(name string, fn func(*Model)) error {
	sub, err := m.Sub(name)
	if err != nil {
		return err
	}
	for _, child := range sub.elem.ChildElements() {
		fn(New(child))
	}
	return nil
}

// Elem returns the wrapped element, or nil when the model is empty.
func (m *Model) Elem() *etree.Element {
	return m.elem
}

// text resolves a field for display, swallowing lookup failures.
func (m *Model) text(name string) string {
	v, err := m.Get(name)
	if err != nil {
		return ""
	}
	return v
}

func (m *Model) notFound(name string) error {
	known := make([]string, 0, len(m.overrides)+4)
	for k := range m.overrides {
		known = append(known, k)
	}
	sort.Strings(known)
	if m.elem != nil {
		for _, child := range m.elem.ChildElements() {
			known = append(known, child.Tag)
		}
	}
	return fmt.Errorf("%w: model has no attribute %q (known: '%s')",
		ErrAttributeNotFound, name, strings.Join(known, "', '"))
}

// snakeToCamel converts an underscore-separated name to camelCase.
// Names without underscores pass through unchanged.
func snakeToCamel(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	parts := strings.Split(name, "_")
	var b strings.Builder
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
