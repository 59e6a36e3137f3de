package render

import (
	"bytes"
	"io"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/hypertext-dev/hypertext/internal/errors"
)

// String renders root into a fresh buffer and returns the markup as UTF-8
// text. Invalid byte sequences are replaced with U+FFFD.
//
// Writes to an in-memory buffer cannot fail, so any error returned by the
// tree comes from a misbehaving Renderable; String panics with an H001 error
// in that case.
func String(root any) string {
	return string(toValidUTF8(Bytes(root)))
}

// Bytes renders root into a fresh buffer and returns the raw bytes. It
// panics like String when the tree reports an error.
func Bytes(root any) []byte {
	var buf bytes.Buffer
	if err := From(root).Render(&buf); err != nil {
		panic(errors.New("H001").Wrap(err))
	}
	return buf.Bytes()
}

// To renders root directly into w, returning the first write error. It is
// the streaming form used when w is a network connection or a file.
func To(w io.Writer, root any) error {
	if err := From(root).Render(w); err != nil {
		return errors.New("H001").Wrap(err)
	}
	return nil
}

// toValidUTF8 replaces ill-formed UTF-8 sequences with U+FFFD.
func toValidUTF8(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	// Decoders carry state; one per call keeps String safe for concurrent use.
	out, err := xunicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return bytes.ToValidUTF8(b, []byte("\uFFFD"))
	}
	return out
}
