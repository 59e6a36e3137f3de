package render

// Convenience setters for common attributes. Each one delegates to Attr or
// BoolAttr with a fixed attribute name.

func (e *Element) Class(v any) *Element       { return e.Attr("class", v) }
func (e *Element) ID(v any) *Element          { return e.Attr("id", v) }
func (e *Element) Charset(v any) *Element     { return e.Attr("charset", v) }
func (e *Element) Content(v any) *Element     { return e.Attr("content", v) }
func (e *Element) Name(v any) *Element        { return e.Attr("name", v) }
func (e *Element) Href(v any) *Element        { return e.Attr("href", v) }
func (e *Element) Rel(v any) *Element         { return e.Attr("rel", v) }
func (e *Element) Src(v any) *Element         { return e.Attr("src", v) }
func (e *Element) Integrity(v any) *Element   { return e.Attr("integrity", v) }
func (e *Element) Crossorigin(v any) *Element { return e.Attr("crossorigin", v) }
func (e *Element) Role(v any) *Element        { return e.Attr("role", v) }
func (e *Element) Method(v any) *Element      { return e.Attr("method", v) }
func (e *Element) Action(v any) *Element      { return e.Attr("action", v) }
func (e *Element) Placeholder(v any) *Element { return e.Attr("placeholder", v) }
func (e *Element) Value(v any) *Element       { return e.Attr("value", v) }
func (e *Element) Rows(v any) *Element        { return e.Attr("rows", v) }
func (e *Element) Alt(v any) *Element         { return e.Attr("alt", v) }
func (e *Element) Style(v any) *Element       { return e.Attr("style", v) }
func (e *Element) OnClick(v any) *Element     { return e.Attr("onclick", v) }
func (e *Element) Placement(v any) *Element   { return e.Attr("placement", v) }
func (e *Element) Toggle(v any) *Element      { return e.Attr("toggle", v) }
func (e *Element) Scope(v any) *Element       { return e.Attr("scope", v) }
func (e *Element) Title(v any) *Element       { return e.Attr("title", v) }
func (e *Element) Type(v any) *Element        { return e.Attr("type", v) }
func (e *Element) For(v any) *Element         { return e.Attr("for", v) }
func (e *Element) Lang(v any) *Element        { return e.Attr("lang", v) }
func (e *Element) Target(v any) *Element      { return e.Attr("target", v) }
func (e *Element) Width(v any) *Element       { return e.Attr("width", v) }
func (e *Element) Height(v any) *Element      { return e.Attr("height", v) }

// ARIA attributes have hyphenated names.

func (e *Element) AriaControls(v any) *Element   { return e.Attr("aria-controls", v) }
func (e *Element) AriaExpanded(v any) *Element   { return e.Attr("aria-expanded", v) }
func (e *Element) AriaLabel(v any) *Element      { return e.Attr("aria-label", v) }
func (e *Element) AriaHasPopup(v any) *Element   { return e.Attr("aria-haspopup", v) }
func (e *Element) AriaLabelledBy(v any) *Element { return e.Attr("aria-labelledby", v) }
func (e *Element) AriaCurrent(v any) *Element    { return e.Attr("aria-current", v) }
func (e *Element) AriaHidden(v any) *Element     { return e.Attr("aria-hidden", v) }

// Data sets a data-* attribute.
func (e *Element) Data(key string, v any) *Element {
	return e.Attr("data-"+key, v)
}

// Boolean attributes.

func (e *Element) Defer() *Element     { return e.BoolAttr("defer") }
func (e *Element) Async() *Element     { return e.BoolAttr("async") }
func (e *Element) Checked() *Element   { return e.BoolAttr("checked") }
func (e *Element) Enabled() *Element   { return e.BoolAttr("enabled") }
func (e *Element) Disabled() *Element  { return e.BoolAttr("disabled") }
func (e *Element) Required() *Element  { return e.BoolAttr("required") }
func (e *Element) Readonly() *Element  { return e.BoolAttr("readonly") }
func (e *Element) Selected() *Element  { return e.BoolAttr("selected") }
func (e *Element) Hidden() *Element    { return e.BoolAttr("hidden") }
func (e *Element) Autofocus() *Element { return e.BoolAttr("autofocus") }
func (e *Element) Multiple() *Element  { return e.BoolAttr("multiple") }
