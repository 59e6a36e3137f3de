// Package errors provides structured, coded errors for hypertext.
//
// Every error carries a short code (e.g. "H010") registered with a category
// and a message. Errors raised while reading page documents also carry the
// source location of the offending node, so the CLI can point at it:
//
//	err := errors.New("H012").
//	    WithLocation("pages/index.yaml", 7, 12).
//	    WithSuggestion("Attribute values must be scalars")
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR H012: Invalid attribute value
//	//
//	//   pages/index.yaml:7:12
//	//
//	//     6 │   attrs:
//	//   → 7 │     class: [a, b]
//	//       │            ^
//	//
//	//   Hint: Attribute values must be scalars
//
// ANSI colours are used only when standard error is a terminal.
package errors
