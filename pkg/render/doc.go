// Package render builds markup trees in Go code and serializes them,
// correctly escaped, in a single depth-first pass.
//
// Every value in a tree implements Renderable, a one-method interface that
// writes the value's serialized form to an io.Writer:
//
//   - Text escapes &, <, >, " and ' on output
//   - Int, Uint, Float and Float32 write canonical decimal text
//   - Empty writes nothing
//   - Fragment writes its members in order
//   - *Element writes a tag, its attributes and its optional child
//   - Raw writes trusted markup verbatim
//
// Any other type can take part by implementing Renderable.
//
// # Building Elements
//
// NewElement creates a container element, NewSelfClosing an element that is
// never closed. Attributes are added with chained builder calls; values are
// escaped as they are added and attributes render in call order:
//
//	page := render.Group(
//	    render.Doctype(),
//	    render.NewElement("html",
//	        render.NewElement("body",
//	            render.NewElement("div", "hello").ID("hello"),
//	            render.NewSelfClosing("input").Type("checkbox").Checked(),
//	        ),
//	    ),
//	)
//
// The el package provides named constructors for standard HTML elements.
//
// # Rendering
//
//	html := render.String(page)
//
// String allocates a buffer, renders the tree and returns UTF-8 text. Writes
// to memory cannot fail, so String has no error result: a Renderable that
// reports an error anyway causes a panic. Use To to stream into a writer that
// can fail, such as an http.ResponseWriter.
//
// # Security
//
// Text and attribute values are always escaped. Raw bypasses escaping and
// must only be used with trusted content.
package render
