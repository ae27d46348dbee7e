package domain

import (
	"regexp"
	"strconv"

	m "indentect.dev/pkg/indentect/internal/model"
)

// settings accumulates the explicit style directives found during a scan.
// The primary fields come from vim modelines and emacs variables; the
// style* shadow fields come only from an emacs "style:" entry and are
// consulted by the resolver when the matching primary field stayed unset.
type settings struct {
	softTabStop *int
	tabStop     *int
	useTabs     *bool
	mixedMode   *bool

	styleSoftTabStop *int
	styleTabStop     *int
	styleUseTabs     *bool

	localVars localVarsScanner
}

func newSettings() *settings {
	return &settings{}
}

// determined reports whether the accumulated overrides fully pin down the
// answer, allowing the scan to stop before consuming further lines.
func (s *settings) determined() (m.Signature, bool) {
	switch {
	case s.softTabStop != nil && s.useTabs != nil:
		if *s.useTabs && (s.mixedMode == nil || *s.mixedMode) {
			return m.Mixed(*s.softTabStop), true
		}

		return m.Spaces(*s.softTabStop), true

	case s.tabStop != nil && s.useTabs != nil:
		if !*s.useTabs {
			return m.Spaces(*s.tabStop), true
		}

		if s.mixedMode != nil {
			return m.Mixed(*s.tabStop), true
		}

		return m.Tabs(*s.tabStop), true
	}

	return m.Signature{}, false
}

// localVarsScanner tracks the emacs Local Variables trailer block. It is
// either outside any block (entry == nil) or inside one, holding the matcher
// built from the literal prefix/suffix decoration of the opening line.
type localVarsScanner struct {
	entry *regexp.Regexp
}

// parseWidth parses a positive decimal width. Directives carrying anything
// else contribute nothing.
func parseWidth(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

func intRef(v int) *int {
	return &v
}

func boolRef(v bool) *bool {
	return &v
}
