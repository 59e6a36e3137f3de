package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Escape converts v to text and escapes it for safe inclusion in element
// content or a quoted attribute value. The characters &, <, >, " and ' are
// replaced by their entities; everything else is left untouched.
//
// Escape is not idempotent: escaping "&amp;" yields "&amp;amp;".
func Escape(v any) string {
	return EscapeString(toText(v))
}

// EscapeString is Escape for a string argument.
func EscapeString(s string) string {
	i := strings.IndexAny(s, `&<>"'`)
	if i < 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 8)
	buf.WriteString(s[:i])

	// Byte-wise scan: all five characters are ASCII and can never appear
	// inside a multi-byte UTF-8 sequence, so invalid input passes through.
	for ; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteByte(c)
		}
	}

	return buf.String()
}

// toText converts a displayable value to its text form.
func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	if s, ok := numberText(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
