package el

import "github.com/hypertext-dev/hypertext/pkg/render"

// Type aliases for the render primitives used by the DSL.
type Element = render.Element
type Renderable = render.Renderable
type Fragment = render.Fragment
type Text = render.Text
type Raw = render.Raw
