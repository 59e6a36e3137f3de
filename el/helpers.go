// This file re-exports render helpers and adds small composition helpers.
package el

import (
	"fmt"

	"github.com/hypertext-dev/hypertext/pkg/render"
)

// Textf creates an escaped text leaf from a format string.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Group renders its children one after another without a wrapper.
func Group(children ...any) Fragment {
	return render.Group(children...)
}

// Nothing renders nothing.
func Nothing() Renderable {
	return render.Empty{}
}

// If returns node when condition is true and Nothing otherwise.
func If(condition bool, node Renderable) Renderable {
	if condition {
		return node
	}
	return Nothing()
}

// IfElse returns ifTrue when condition is true and ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse Renderable) Renderable {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps each item to a renderable, preserving order.
func Range[T any](items []T, fn func(item T, index int) Renderable) Fragment {
	out := make(Fragment, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat calls fn n times with the indices 0..n-1.
func Repeat(n int, fn func(i int) Renderable) Fragment {
	if n <= 0 {
		return Fragment{}
	}
	out := make(Fragment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// Render renders root to a string. See render.String.
func Render(root any) string {
	return render.String(root)
}
