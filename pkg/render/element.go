package render

import (
	"io"
	"strings"
)

// DoctypeName is the tag name of the HTML5 document type declaration. An
// element with this name renders as <!DOCTYPE html>.
const DoctypeName = "!DOCTYPE html"

// Element is a markup node with a tag name, an ordered list of attributes
// and at most one child.
//
// An element created without a child is self-closing: it renders only its
// opening tag. An element created with a child always renders a closing tag,
// even when the child produces no output. The shape is fixed at construction.
type Element struct {
	name  string
	attrs []string
	child Renderable
}

// NewElement creates a container element. With no children the element
// still renders a closing tag; a single child is stored as is and several
// children are grouped into a Fragment. Children are converted with From.
func NewElement(name string, children ...any) *Element {
	var child Renderable
	switch len(children) {
	case 0:
		child = Fragment{}
	case 1:
		child = From(children[0])
	default:
		child = Group(children...)
	}
	return &Element{name: name, child: child}
}

// NewSelfClosing creates an element that never has children and renders
// without a closing tag.
func NewSelfClosing(name string) *Element {
	return &Element{name: name}
}

// Doctype returns the <!DOCTYPE html> declaration.
func Doctype() *Element {
	return NewSelfClosing(DoctypeName)
}

// Tag returns the tag name.
func (e *Element) Tag() string {
	return e.name
}

// IsSelfClosing reports whether the element renders without a closing tag.
func (e *Element) IsSelfClosing() bool {
	return e.child == nil
}

// Attrs returns a copy of the rendered attribute fragments in output order.
func (e *Element) Attrs() []string {
	out := make([]string, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Attr appends name="value" to the attribute list. The value is converted
// to text and escaped immediately. Repeated names are kept in call order.
func (e *Element) Attr(name string, value any) *Element {
	e.attrs = append(e.attrs, name+`="`+Escape(value)+`"`)
	return e
}

// BoolAttr appends a bare boolean attribute such as checked or disabled.
func (e *Element) BoolAttr(name string) *Element {
	e.attrs = append(e.attrs, name)
	return e
}

// Render implements Renderable.
func (e *Element) Render(w io.Writer) error {
	if e == nil {
		return nil
	}

	if _, err := io.WriteString(w, "<"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, e.name); err != nil {
		return err
	}
	if len(e.attrs) > 0 {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if _, err := io.WriteString(w, strings.Join(e.attrs, " ")); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if e.child == nil {
		return nil
	}

	if err := e.child.Render(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, e.name); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}
