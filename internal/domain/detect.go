// Package domain implements indentation detection and the CLI workflow
// around it.
package domain

import (
	m "indentect.dev/pkg/indentect/internal/model"
)

// DetectOptions controls optional scan behavior.
type DetectOptions struct {
	// SkipDocComments enables skipping of POD-style documentation blocks:
	// an "=word" line at column zero opens a block, "=cut" closes it, and
	// every line of the block (both markers included) is ignored.
	SkipDocComments bool
}

// scanState carries the per-line bookkeeping of one detection pass.
type scanState struct {
	prevIndent string
	linesSeen  int
	skipLines  int
	inDocBlock bool
}

// DetectIndentation infers the indentation convention of text: spaces, tabs
// or a tab/space mix, and the column width of one level. It performs a
// single pass over the lines, feeding each one to the vim and emacs override
// detectors and, unless a skip rule applies, to the indent-diff classifier.
// A fully determined override terminates the pass immediately; otherwise the
// histogram is resolved after the last line.
//
// The function is pure: it allocates only per-call state, performs no I/O,
// never fails, and degrades to the unknown signature when no evidence
// exists.
func DetectIndentation(text string, opts DetectOptions) m.Signature {
	hist := make(m.Histogram)
	set := newSettings()
	st := scanState{}
	scanner := newLineScanner(text)

	for {
		ws, rest, ok := scanner.next()
		if !ok {
			break
		}

		st.linesSeen++
		line := ws + rest

		checkVimModeline(line, set)

		if st.linesSeen <= 2 {
			checkEmacsFirstLine(line, set)
		}

		checkEmacsLocalVariables(line, set)

		if sig, done := set.determined(); done {
			return sig
		}

		classifyLine(ws, rest, &st, hist, opts)
	}

	return resolve(hist, set)
}
