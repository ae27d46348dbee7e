package domain

import (
	"regexp"
	"strings"
)

// stylePreset describes the indentation defaults of a named emacs C style.
// A nil useTabs means the style leaves the tabs preference unspecified.
type stylePreset struct {
	softTabStop int
	tabStop     int
	useTabs     *bool
}

var stylePresets = map[string]stylePreset{
	"kr":         {softTabStop: 4, tabStop: 8, useTabs: boolRef(true)},
	"k&r":        {softTabStop: 4, tabStop: 8, useTabs: boolRef(true)},
	"bsd":        {softTabStop: 4, tabStop: 8, useTabs: boolRef(true)},
	"whitesmith": {softTabStop: 4, tabStop: 8, useTabs: boolRef(true)},
	"stroustrup": {softTabStop: 4, tabStop: 8, useTabs: boolRef(true)},
	"linux":      {softTabStop: 8, tabStop: 8, useTabs: boolRef(true)},
	"gnu":        {softTabStop: 2, tabStop: 8, useTabs: boolRef(true)},
	"ellemtel":   {softTabStop: 3, tabStop: 3, useTabs: boolRef(false)},
	"java":       {softTabStop: 4, tabStop: 8},
}

var (
	emacsVarsRe      = regexp.MustCompile(`-\*-\s*(.*?)\s*-\*-`)
	localVarsOpenRe  = regexp.MustCompile(`(?i)^(.*?)Local Variables:(.*?)\s*$`)
	localVarsKeyPart = `\s*([\w-]+):\s*(.+?)\s*`
)

// checkEmacsFirstLine looks for the emacs file-variables form near the top
// of the input, e.g. "-*- mode: perl; tab-width: 4; indent-tabs-mode: nil -*-".
// The caller restricts it to the first two lines so a leading shebang line
// is tolerated.
func checkEmacsFirstLine(line string, set *settings) {
	match := emacsVarsRe.FindStringSubmatch(line)
	if match == nil {
		return
	}

	for _, field := range strings.Split(match[1], ";") {
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			continue
		}

		applyEmacsVariable(strings.TrimSpace(key), strings.TrimSpace(value), set)
	}
}

// checkEmacsLocalVariables drives the Local Variables block state machine.
// A "<prefix> Local Variables: <suffix>" line opens a block; every following
// line must repeat the prefix and suffix literally around a "key: value"
// pair to stay inside it. The first line that does not (the conventional
// "End:" terminator included, since its value is empty) closes the block
// without applying anything.
func checkEmacsLocalVariables(line string, set *settings) {
	scanner := &set.localVars

	if scanner.entry == nil {
		match := localVarsOpenRe.FindStringSubmatch(line)
		if match == nil {
			return
		}

		scanner.entry = regexp.MustCompile(
			`^` + regexp.QuoteMeta(match[1]) + localVarsKeyPart + regexp.QuoteMeta(match[2]) + `\s*$`)

		return
	}

	match := scanner.entry.FindStringSubmatch(line)
	if match == nil {
		scanner.entry = nil
		return
	}

	applyEmacsVariable(match[1], match[2], set)
}

// applyEmacsVariable handles one key/value pair from either emacs detector.
func applyEmacsVariable(key, value string, set *settings) {
	switch strings.ToLower(key) {
	case "tab-width":
		if n, ok := parseWidth(value); ok {
			set.tabStop = intRef(n)
		}

	case "indent-tabs-mode":
		switch value {
		case "t":
			set.useTabs = boolRef(true)
			set.mixedMode = boolRef(true)
		case "nil":
			set.useTabs = boolRef(false)
			set.mixedMode = nil
		}

	case "c-basic-offset":
		// tab-width takes precedence when both are present.
		if set.tabStop != nil {
			return
		}

		if n, ok := parseWidth(value); ok {
			set.tabStop = intRef(n)
		}

	case "style":
		preset, ok := stylePresets[strings.ToLower(value)]
		if !ok {
			return
		}

		set.styleSoftTabStop = intRef(preset.softTabStop)
		set.styleTabStop = intRef(preset.tabStop)

		if preset.useTabs != nil {
			set.styleUseTabs = boolRef(*preset.useTabs)
		}
	}
}
