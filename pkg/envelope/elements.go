package envelope

import "github.com/beevik/etree"

// Elem creates an element with the given tag and appends the children in
// order. Nil children are skipped, which lets OptionalText drop optional
// request fields from the wire form.
func Elem(tag string, children ...*etree.Element) *etree.Element {
	e := etree.NewElement(tag)
	for _, child := range children {
		if child != nil {
			e.AddChild(child)
		}
	}
	return e
}

// Text creates an element holding character data.
func Text(tag, value string) *etree.Element {
	e := etree.NewElement(tag)
	e.SetText(value)
	return e
}

// OptionalText creates a text element, or returns nil when the value is
// empty so the element is omitted entirely.
func OptionalText(tag, value string) *etree.Element {
	if value == "" {
		return nil
	}
	return Text(tag, value)
}

// Array wraps the given items in the array structure the API uses for
// lists. Items are usually built with Item:
//
//	<array>
//	  <item>...</item>
//	  <item>...</item>
//	</array>
func Array(items ...*etree.Element) *etree.Element {
	return Elem("array", items...)
}

// Item groups fields for use inside Array.
func Item(children ...*etree.Element) *etree.Element {
	return Elem("item", children...)
}
