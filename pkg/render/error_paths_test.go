package render

import (
	"errors"
	"io"
	"testing"
)

var errTestWrite = errors.New("test write error")

type countingWriter struct {
	Writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.Writes++
	return len(p), nil
}

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

// sweepWriteErrors fails each write of r in turn and checks that the error
// surfaces and that nothing is written after it.
func sweepWriteErrors(t *testing.T, name string, r Renderable) {
	t.Helper()

	cw := &countingWriter{}
	if err := r.Render(cw); err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	if cw.Writes == 0 {
		t.Fatalf("%s: expected at least one write", name)
	}
	for i := 1; i <= cw.Writes; i++ {
		fw := &failingWriter{FailAt: i}
		if err := r.Render(fw); !errors.Is(err, errTestWrite) {
			t.Fatalf("%s failAt=%d: err=%v, want %v", name, i, err, errTestWrite)
		}
		if fw.Writes != i {
			t.Fatalf("%s failAt=%d: %d writes, rendering should stop at the failure", name, i, fw.Writes)
		}
	}
}

func TestWriteErrorPaths(t *testing.T) {
	cases := map[string]Renderable{
		"text":         Text("x"),
		"raw":          Raw("x"),
		"int":          Int(1),
		"uint":         Uint(1),
		"float":        Float(1.5),
		"float32":      Float32(1.5),
		"self closing": NewSelfClosing("input").Type("text").Checked(),
		"container":    NewElement("div", "a", NewElement("span", 1)).ID("x"),
		"empty child":  NewElement("div"),
		"fragment":     Group(Doctype(), NewElement("html", NewElement("body", "hi"))),
	}
	for name, r := range cases {
		sweepWriteErrors(t, name, r)
	}
}

func TestEmptyNeverWrites(t *testing.T) {
	fw := &failingWriter{FailAt: 1}
	if err := (Empty{}).Render(fw); err != nil {
		t.Errorf("Empty returned %v", err)
	}
	if fw.Writes != 0 {
		t.Errorf("Empty wrote %d times", fw.Writes)
	}
}

func TestFragmentShortCircuits(t *testing.T) {
	calls := 0
	counted := RenderFunc(func(io.Writer) error {
		calls++
		return nil
	})
	failing := RenderFunc(func(io.Writer) error { return errTestWrite })

	err := Fragment{counted, failing, counted}.Render(io.Discard)
	if !errors.Is(err, errTestWrite) {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("members after the failure were rendered: calls = %d", calls)
	}
}

func TestElementStopsAfterChildError(t *testing.T) {
	failing := RenderFunc(func(io.Writer) error { return errTestWrite })
	cw := &countingWriter{}

	err := NewElement("div", failing).Render(cw)
	if !errors.Is(err, errTestWrite) {
		t.Fatalf("err = %v", err)
	}
	// "<", "div", ">" and nothing after the child.
	if cw.Writes != 3 {
		t.Errorf("Writes = %d, want 3", cw.Writes)
	}
}
