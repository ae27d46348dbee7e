package domain

import (
	"regexp"
	"strings"
)

// Vim modelines come in two forms:
//
//	[text ]{vi:|vim:|ex:} option[:option| option]...
//	[text ]{vi:|vim:|ex:} se[t] option[ option]... :
//
// The set form is terminated by a colon, so its options may only be split on
// whitespace; the plain form splits on whitespace or colons.
var (
	vimSetFormRe   = regexp.MustCompile(`(?i)(?:^|\s)(?:vi|vim|ex):\s*se(?:t)?\s+([^:]+):`)
	vimPlainFormRe = regexp.MustCompile(`(?i)(?:^|\s)(?:vi|vim|ex):\s*(.+)$`)
	vimOptionSepRe = regexp.MustCompile(`[\s:]+`)
)

// checkVimModeline scans one line for either vim modeline form and applies
// every recognized option to the settings accumulator.
func checkVimModeline(line string, set *settings) {
	var options []string

	if match := vimSetFormRe.FindStringSubmatch(line); match != nil {
		options = strings.Fields(match[1])
	} else if match := vimPlainFormRe.FindStringSubmatch(line); match != nil {
		options = vimOptionSepRe.Split(strings.TrimSpace(match[1]), -1)
	}

	for _, option := range options {
		applyVimOption(option, set)
	}
}

// applyVimOption handles a single modeline option token. Option names are
// case-insensitive; unrecognized or malformed tokens are ignored.
func applyVimOption(option string, set *settings) {
	option = strings.ToLower(option)

	if name, value, ok := strings.Cut(option, "="); ok {
		n, valid := parseWidth(value)
		if !valid {
			return
		}

		switch name {
		case "sts", "softtabstop":
			set.softTabStop = intRef(n)
		case "ts", "tabstop":
			set.tabStop = intRef(n)
		}

		return
	}

	switch option {
	case "et", "expandtab":
		set.useTabs = boolRef(false)
	case "noet", "noexpandtab":
		set.useTabs = boolRef(true)
	}
}
