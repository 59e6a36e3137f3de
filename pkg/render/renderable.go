package render

import (
	"io"
	"math"
	"strconv"
)

// Renderable is implemented by every value that can appear in a markup tree.
//
// Render appends the serialized form of the value to w. It never reads from
// or resets w, and returns the first write error it encounters.
type Renderable interface {
	Render(w io.Writer) error
}

// RenderFunc adapts an ordinary function to the Renderable interface.
type RenderFunc func(w io.Writer) error

// Render implements Renderable.
func (f RenderFunc) Render(w io.Writer) error {
	return f(w)
}

// Text is a text leaf. Its content is escaped when rendered.
type Text string

// Render implements Renderable.
func (t Text) Render(w io.Writer) error {
	_, err := io.WriteString(w, EscapeString(string(t)))
	return err
}

// Raw is trusted markup written verbatim. It must only hold content that is
// already safe, such as the output of a Markdown converter.
type Raw string

// Render implements Renderable.
func (r Raw) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Int is a signed integer leaf.
type Int int64

// Render implements Renderable.
func (n Int) Render(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(n), 10))
	return err
}

// Uint is an unsigned integer leaf.
type Uint uint64

// Render implements Renderable.
func (n Uint) Render(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatUint(uint64(n), 10))
	return err
}

// Float is a 64-bit floating-point leaf.
type Float float64

// Render implements Renderable.
func (f Float) Render(w io.Writer) error {
	_, err := io.WriteString(w, formatFloat(float64(f), 64))
	return err
}

// Float32 is a 32-bit floating-point leaf.
type Float32 float32

// Render implements Renderable.
func (f Float32) Render(w io.Writer) error {
	_, err := io.WriteString(w, formatFloat(float64(f), 32))
	return err
}

// formatFloat returns the shortest decimal form that round-trips, never in
// exponent notation.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// numberText formats any Go numeric value the way the number leaves do.
func numberText(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case uintptr:
		return strconv.FormatUint(uint64(n), 10), true
	case float32:
		return formatFloat(float64(n), 32), true
	case float64:
		return formatFloat(n, 64), true
	}
	return "", false
}

// Empty renders nothing.
type Empty struct{}

// Render implements Renderable.
func (Empty) Render(io.Writer) error {
	return nil
}

// Fragment is an ordered sequence of renderables rendered one after another
// without any wrapper.
type Fragment []Renderable

// Render implements Renderable. It stops at the first member that fails.
func (f Fragment) Render(w io.Writer) error {
	for _, item := range f {
		if item == nil {
			continue
		}
		if err := item.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Group builds a Fragment from arbitrary values, converting each with From.
func Group(items ...any) Fragment {
	f := make(Fragment, 0, len(items))
	for _, item := range items {
		f = append(f, From(item))
	}
	return f
}

// Pair renders a followed by b.
func Pair(a, b Renderable) Fragment {
	return Fragment{a, b}
}

// From converts a Go value to a Renderable.
//
// Renderables are returned as is. Strings become escaped Text, numbers become
// number leaves and nil becomes Empty. Slices of renderables or of arbitrary
// values become Fragments. Anything else is rendered as its escaped text form.
func From(v any) Renderable {
	switch x := v.(type) {
	case nil:
		return Empty{}
	case Renderable:
		return x
	case string:
		return Text(x)
	case []Renderable:
		return Fragment(x)
	case []any:
		return Group(x...)
	case []string:
		f := make(Fragment, len(x))
		for i, s := range x {
			f[i] = Text(s)
		}
		return f
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Uint(x)
	case uint8:
		return Uint(x)
	case uint16:
		return Uint(x)
	case uint32:
		return Uint(x)
	case uint64:
		return Uint(x)
	case uintptr:
		return Uint(x)
	case float32:
		return Float32(x)
	case float64:
		return Float(x)
	default:
		return Text(toText(x))
	}
}
