// Package el provides the element DSL for hypertext.
//
// It offers one constructor per standard HTML element on top of the render
// package. Container elements accept any number of children; void elements
// such as Input, Img and Meta take none and render without a closing tag.
//
// Typical usage:
//
//	import . "github.com/hypertext-dev/hypertext/el"
//
//	page := Group(
//	    Doctype(),
//	    Html(
//	        Head(Title("Hello")),
//	        Body(
//	            Div("hello").ID("hello"),
//	            Input().Type("checkbox").Checked(),
//	        ),
//	    ),
//	)
//	html := Render(page)
//
// Tags outside the catalog, such as web components, use CustomElement and
// CustomVoid.
package el
