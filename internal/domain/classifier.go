package domain

import (
	"regexp"
	"strings"

	m "indentect.dev/pkg/indentect/internal/model"
)

// tabWidth is the conventional column width of one tab stop.
const tabWidth = 8

var (
	docOpenRe  = regexp.MustCompile(`^=\w+`)
	docCloseRe = regexp.MustCompile(`^=cut\b`)

	tabRunRe    = regexp.MustCompile(` {0,7}\t`)
	eightSpaces = strings.Repeat(" ", tabWidth)
)

// classifyLine applies the skip rules to one line and, when the line
// survives them, compares its leading whitespace against the previous
// significant line's and records the resulting vote.
func classifyLine(ws, rest string, st *scanState, hist m.Histogram, opts DetectOptions) {
	// Continuation lines inherit the statement's indentation rules, not the
	// file's, so they carry no signal.
	if st.skipLines > 0 {
		st.skipLines--
		return
	}

	if opts.SkipDocComments {
		if st.inDocBlock {
			if ws == "" && docCloseRe.MatchString(rest) {
				st.inDocBlock = false
			}

			return
		}

		if ws == "" && docOpenRe.MatchString(rest) {
			st.inDocBlock = true
			return
		}
	}

	if rest == "" {
		return
	}

	// A flush-left line always resets the comparison baseline.
	if ws == "" {
		st.prevIndent = ""
		return
	}

	if strings.HasSuffix(rest, `\`) {
		st.skipLines = 1
	}

	if isCommentLine(rest) {
		return
	}

	prev := st.prevIndent
	st.prevIndent = ws

	switch {
	case ws == prev:
		return

	case strings.HasPrefix(ws, prev):
		hist.Vote(classifyDiff(ws[len(prev):]))

	case strings.HasPrefix(prev, ws):
		// Dedents are evidence too: the abandoned suffix is one or more
		// whole levels.
		hist.Vote(classifyDiff(prev[len(ws):]))

	default:
		if delta := columnDelta(ws, prev); delta != 0 {
			hist.Vote(m.Mixed(delta))
		}
	}
}

// isCommentLine reports whether the line body opens a comment. Comment lines
// are indented too inconsistently to count as evidence.
func isCommentLine(rest string) bool {
	return strings.HasPrefix(rest, "#") ||
		strings.HasPrefix(rest, "//") ||
		strings.HasPrefix(rest, "/*")
}

// classifyDiff maps one indent delta to its histogram key.
func classifyDiff(diff string) m.Signature {
	switch {
	case strings.Count(diff, " ") == len(diff):
		return m.Spaces(len(diff))

	case strings.Count(diff, "\t") == len(diff):
		// A pure-tab delta reveals nothing about the tab width; record the
		// conventional 8-column stop.
		return m.Tabs(tabWidth)

	default:
		trimmed := strings.TrimRight(diff, " ")
		trailing := len(diff) - len(trimmed)

		return m.Mixed(tabWidth*strings.Count(trimmed, "\t") + trailing)
	}
}

// columnDelta approximates the visual width difference between two indents
// that are not prefix-comparable (e.g. a tab replaced by spaces at the same
// nesting level). Runs of up to seven spaces followed by a tab expand to one
// 8-column stop.
func columnDelta(ws, prev string) int {
	a := len(tabRunRe.ReplaceAllString(ws, eightSpaces))
	b := len(tabRunRe.ReplaceAllString(prev, eightSpaces))

	if a > b {
		return a - b
	}

	return b - a
}
