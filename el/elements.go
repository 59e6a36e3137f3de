// This file defines constructors for standard HTML elements.
package el

import "github.com/hypertext-dev/hypertext/pkg/render"

// voidElements are elements that never have children and have no closing
// tag. Their constructors take no arguments, and page documents render them
// self-closing unless told otherwise.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Doctype returns the <!DOCTYPE html> declaration.
func Doctype() *Element { return render.Doctype() }

// CustomElement creates a container element with an arbitrary tag name,
// such as a web component.
func CustomElement(tag string, children ...any) *Element {
	return render.NewElement(tag, children...)
}

// CustomVoid creates a self-closing element with an arbitrary tag name.
func CustomVoid(tag string) *Element {
	return render.NewSelfClosing(tag)
}

func Html(children ...any) *Element        { return render.NewElement("html", children...) }
func Head(children ...any) *Element        { return render.NewElement("head", children...) }
func Body(children ...any) *Element        { return render.NewElement("body", children...) }
func Title(children ...any) *Element       { return render.NewElement("title", children...) }
func Meta() *Element                       { return render.NewSelfClosing("meta") }
func LinkEl() *Element                     { return render.NewSelfClosing("link") }
func Base() *Element                       { return render.NewSelfClosing("base") }
func Header(children ...any) *Element      { return render.NewElement("header", children...) }
func Footer(children ...any) *Element      { return render.NewElement("footer", children...) }
func Main(children ...any) *Element        { return render.NewElement("main", children...) }
func Nav(children ...any) *Element         { return render.NewElement("nav", children...) }
func Section(children ...any) *Element     { return render.NewElement("section", children...) }
func Article(children ...any) *Element     { return render.NewElement("article", children...) }
func Aside(children ...any) *Element       { return render.NewElement("aside", children...) }
func Address(children ...any) *Element     { return render.NewElement("address", children...) }
func H1(children ...any) *Element          { return render.NewElement("h1", children...) }
func H2(children ...any) *Element          { return render.NewElement("h2", children...) }
func H3(children ...any) *Element          { return render.NewElement("h3", children...) }
func H4(children ...any) *Element          { return render.NewElement("h4", children...) }
func H5(children ...any) *Element          { return render.NewElement("h5", children...) }
func H6(children ...any) *Element          { return render.NewElement("h6", children...) }
func Hgroup(children ...any) *Element      { return render.NewElement("hgroup", children...) }
func Div(children ...any) *Element         { return render.NewElement("div", children...) }
func P(children ...any) *Element           { return render.NewElement("p", children...) }
func Span(children ...any) *Element        { return render.NewElement("span", children...) }
func Pre(children ...any) *Element         { return render.NewElement("pre", children...) }
func Blockquote(children ...any) *Element  { return render.NewElement("blockquote", children...) }
func Ul(children ...any) *Element          { return render.NewElement("ul", children...) }
func Ol(children ...any) *Element          { return render.NewElement("ol", children...) }
func Li(children ...any) *Element          { return render.NewElement("li", children...) }
func Dl(children ...any) *Element          { return render.NewElement("dl", children...) }
func Dt(children ...any) *Element          { return render.NewElement("dt", children...) }
func Dd(children ...any) *Element          { return render.NewElement("dd", children...) }
func Hr() *Element                         { return render.NewSelfClosing("hr") }
func Figure(children ...any) *Element      { return render.NewElement("figure", children...) }
func Figcaption(children ...any) *Element  { return render.NewElement("figcaption", children...) }
func A(children ...any) *Element           { return render.NewElement("a", children...) }
func Strong(children ...any) *Element      { return render.NewElement("strong", children...) }
func Em(children ...any) *Element          { return render.NewElement("em", children...) }
func B(children ...any) *Element           { return render.NewElement("b", children...) }
func I(children ...any) *Element           { return render.NewElement("i", children...) }
func U(children ...any) *Element           { return render.NewElement("u", children...) }
func Tt(children ...any) *Element          { return render.NewElement("tt", children...) }
func StringEl(children ...any) *Element    { return render.NewElement("string", children...) }
func Wrapper(children ...any) *Element     { return render.NewElement("wrapper", children...) }
func S(children ...any) *Element           { return render.NewElement("s", children...) }
func Small(children ...any) *Element       { return render.NewElement("small", children...) }
func Mark(children ...any) *Element        { return render.NewElement("mark", children...) }
func Sub(children ...any) *Element         { return render.NewElement("sub", children...) }
func Sup(children ...any) *Element         { return render.NewElement("sup", children...) }
func Code(children ...any) *Element        { return render.NewElement("code", children...) }
func Kbd(children ...any) *Element         { return render.NewElement("kbd", children...) }
func Samp(children ...any) *Element        { return render.NewElement("samp", children...) }
func Var(children ...any) *Element         { return render.NewElement("var", children...) }
func Abbr(children ...any) *Element        { return render.NewElement("abbr", children...) }
func Time_(children ...any) *Element       { return render.NewElement("time", children...) }
func Cite(children ...any) *Element        { return render.NewElement("cite", children...) }
func Q(children ...any) *Element           { return render.NewElement("q", children...) }
func Dfn(children ...any) *Element         { return render.NewElement("dfn", children...) }
func Ruby(children ...any) *Element        { return render.NewElement("ruby", children...) }
func Rt(children ...any) *Element          { return render.NewElement("rt", children...) }
func Rp(children ...any) *Element          { return render.NewElement("rp", children...) }
func Bdi(children ...any) *Element         { return render.NewElement("bdi", children...) }
func Bdo(children ...any) *Element         { return render.NewElement("bdo", children...) }
func DataElement(children ...any) *Element { return render.NewElement("data", children...) }
func Br() *Element                         { return render.NewSelfClosing("br") }
func Wbr() *Element                        { return render.NewSelfClosing("wbr") }
func Form(children ...any) *Element        { return render.NewElement("form", children...) }
func Input() *Element                      { return render.NewSelfClosing("input") }
func Textarea(children ...any) *Element    { return render.NewElement("textarea", children...) }
func Select(children ...any) *Element      { return render.NewElement("select", children...) }
func Option(children ...any) *Element      { return render.NewElement("option", children...) }
func Optgroup(children ...any) *Element    { return render.NewElement("optgroup", children...) }
func Button(children ...any) *Element      { return render.NewElement("button", children...) }
func Label(children ...any) *Element       { return render.NewElement("label", children...) }
func Fieldset(children ...any) *Element    { return render.NewElement("fieldset", children...) }
func Legend(children ...any) *Element      { return render.NewElement("legend", children...) }
func Datalist(children ...any) *Element    { return render.NewElement("datalist", children...) }
func Output(children ...any) *Element      { return render.NewElement("output", children...) }
func Progress(children ...any) *Element    { return render.NewElement("progress", children...) }
func Meter(children ...any) *Element       { return render.NewElement("meter", children...) }
func Table(children ...any) *Element       { return render.NewElement("table", children...) }
func Thead(children ...any) *Element       { return render.NewElement("thead", children...) }
func Tbody(children ...any) *Element       { return render.NewElement("tbody", children...) }
func Tfoot(children ...any) *Element       { return render.NewElement("tfoot", children...) }
func Tr(children ...any) *Element          { return render.NewElement("tr", children...) }
func Th(children ...any) *Element          { return render.NewElement("th", children...) }
func Td(children ...any) *Element          { return render.NewElement("td", children...) }
func Caption(children ...any) *Element     { return render.NewElement("caption", children...) }
func Colgroup(children ...any) *Element    { return render.NewElement("colgroup", children...) }
func Col() *Element                        { return render.NewSelfClosing("col") }
func Img() *Element                        { return render.NewSelfClosing("img") }
func Picture(children ...any) *Element     { return render.NewElement("picture", children...) }
func Source() *Element                     { return render.NewSelfClosing("source") }
func Video(children ...any) *Element       { return render.NewElement("video", children...) }
func Audio(children ...any) *Element       { return render.NewElement("audio", children...) }
func Track() *Element                      { return render.NewSelfClosing("track") }
func Iframe(children ...any) *Element      { return render.NewElement("iframe", children...) }
func Embed() *Element                      { return render.NewSelfClosing("embed") }
func Object(children ...any) *Element      { return render.NewElement("object", children...) }
func Param() *Element                      { return render.NewSelfClosing("param") }
func Canvas(children ...any) *Element      { return render.NewElement("canvas", children...) }
func Svg(children ...any) *Element         { return render.NewElement("svg", children...) }
func Circle(children ...any) *Element      { return render.NewElement("circle", children...) }
func Ellipse(children ...any) *Element     { return render.NewElement("ellipse", children...) }
func Line(children ...any) *Element        { return render.NewElement("line", children...) }
func Path(children ...any) *Element        { return render.NewElement("path", children...) }
func Polygon(children ...any) *Element     { return render.NewElement("polygon", children...) }
func Polyline(children ...any) *Element    { return render.NewElement("polyline", children...) }
func Rect(children ...any) *Element        { return render.NewElement("rect", children...) }
func G(children ...any) *Element           { return render.NewElement("g", children...) }
func Defs(children ...any) *Element        { return render.NewElement("defs", children...) }
func Use(children ...any) *Element         { return render.NewElement("use", children...) }
func Math(children ...any) *Element        { return render.NewElement("math", children...) }
func Map_(children ...any) *Element        { return render.NewElement("map", children...) }
func Area() *Element                       { return render.NewSelfClosing("area") }
func Details(children ...any) *Element     { return render.NewElement("details", children...) }
func Summary(children ...any) *Element     { return render.NewElement("summary", children...) }
func Dialog(children ...any) *Element      { return render.NewElement("dialog", children...) }
func Menu(children ...any) *Element        { return render.NewElement("menu", children...) }
func Script(children ...any) *Element      { return render.NewElement("script", children...) }
func Noscript(children ...any) *Element    { return render.NewElement("noscript", children...) }
func Template(children ...any) *Element    { return render.NewElement("template", children...) }
func Slot(children ...any) *Element        { return render.NewElement("slot", children...) }
func Style(children ...any) *Element       { return render.NewElement("style", children...) }
