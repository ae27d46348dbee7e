package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detect(t *testing.T, text string) string {
	t.Helper()
	return DetectIndentation(text, DetectOptions{}).String()
}

func TestDetectIndentation_EmptyInputIsUnknown(t *testing.T) {
	require.Equal(t, "u", detect(t, ""))
}

func TestDetectIndentation_FlushLeftOnlyIsUnknown(t *testing.T) {
	text := "package main\n\nfunc main() {\n}\n"
	require.Equal(t, "u", detect(t, text))
}

func TestDetectIndentation_ConstantSpaceIndent(t *testing.T) {
	text := strings.Join([]string{
		"func main() {",
		"    if ok {",
		"        run()",
		"    }",
		"}",
		"",
	}, "\n")

	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_ConstantTabIndent(t *testing.T) {
	text := strings.Join([]string{
		"func main() {",
		"\tif ok {",
		"\t\trun()",
		"\t}",
		"}",
		"",
	}, "\n")

	require.Equal(t, "t8", detect(t, text))
}

func TestDetectIndentation_DedentsVoteToo(t *testing.T) {
	// The dedent from four spaces back to two contributes a vote just like
	// the two indents before it.
	text := "a\n  b\n    c\n  d\n"

	require.Equal(t, "s2", detect(t, text))
}

func TestDetectIndentation_VimModelineSoftTabStopWins(t *testing.T) {
	text := strings.Join([]string{
		"func main() {",
		"\tif ok {",
		"\t\trun()",
		"\t}",
		"}",
		"-- vim: set sts=4 et :",
		"",
	}, "\n")

	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_VimModelineNoExpandTab(t *testing.T) {
	text := strings.Join([]string{
		"func main() {",
		"    run()",
		"}",
		"-- vim: set ts=4 noet :",
		"",
	}, "\n")

	require.Equal(t, "t4", detect(t, text))
}

func TestDetectIndentation_VimModelinePlainForm(t *testing.T) {
	text := "# vim:noai:ts=2:sts=2:et\nbody {\n\tindented\n}\n"

	// sts plus et fully determines the answer regardless of the tab body.
	require.Equal(t, "s2", detect(t, text))
}

func TestDetectIndentation_VimModelineStopsScanEarly(t *testing.T) {
	// The modeline on the first line must win even though every following
	// line argues for tabs.
	lines := []string{"-- vim: set sts=3 et :"}
	for range 50 {
		lines = append(lines, "a", "\tb")
	}

	require.Equal(t, "s3", detect(t, strings.Join(lines, "\n")))
}

func TestDetectIndentation_EmacsFirstLine(t *testing.T) {
	text := strings.Join([]string{
		"// -*- mode: perl; tab-width: 4; indent-tabs-mode: nil; -*-",
		"func main() {",
		"\trun()",
		"}",
		"",
	}, "\n")

	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_EmacsLineAfterShebang(t *testing.T) {
	text := strings.Join([]string{
		"#!/usr/bin/perl",
		"# -*- mode: perl; tab-width: 6; indent-tabs-mode: t -*-",
		"body",
		"",
	}, "\n")

	require.Equal(t, "m6", detect(t, text))
}

func TestDetectIndentation_EmacsLineIgnoredPastSecondLine(t *testing.T) {
	text := strings.Join([]string{
		"a",
		"b",
		"c -*- tab-width: 4; indent-tabs-mode: nil -*-",
		"x",
		"\ty",
		"",
	}, "\n")

	require.Equal(t, "t8", detect(t, text))
}

func TestDetectIndentation_EmacsStyleLinux(t *testing.T) {
	text := strings.Join([]string{
		"// -*- mode: c; style: linux -*-",
		"int main() {",
		"    return 0;",
		"}",
		"",
	}, "\n")

	// The style preset supplies sts=8 and tabs; a spaces winner at width 8
	// becomes plain tabs.
	require.Equal(t, "t8", detect(t, text))
}

func TestDetectIndentation_LocalVariablesBlock(t *testing.T) {
	text := strings.Join([]string{
		"x = 1",
		"    y = 2",
		"",
		"# Local Variables:",
		"# tab-width: 4",
		"# indent-tabs-mode: nil",
		"# End:",
		"",
	}, "\n")

	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_LocalVariablesWidthOnly(t *testing.T) {
	text := strings.Join([]string{
		"x = 1",
		"\ty = 2",
		"",
		"# Local Variables:",
		"# tab-width: 4",
		"# End:",
		"",
	}, "\n")

	// tab-width alone cannot short-circuit; it rewrites the winner's width.
	require.Equal(t, "t4", detect(t, text))
}

func TestDetectIndentation_LocalVariablesCommentDecoration(t *testing.T) {
	text := strings.Join([]string{
		"body",
		"/* Local Variables: */",
		"/* tab-width: 4 */",
		"/* indent-tabs-mode: t */",
		"/* End: */",
		"",
	}, "\n")

	require.Equal(t, "m4", detect(t, text))
}

func TestDetectIndentation_LocalVariablesBlockClosesOnMismatch(t *testing.T) {
	text := strings.Join([]string{
		"# Local Variables:",
		"not a block entry",
		"# tab-width: 9",
		"a",
		"    b",
		"",
	}, "\n")

	// The mismatching line closed the block, so tab-width: 9 never applies.
	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_MixedPromotionAtTwentyPercent(t *testing.T) {
	var b strings.Builder

	for range 10 {
		b.WriteString("a\n    b\n")
	}

	// Each of these blocks contributes one Mixed(4) vote via the column
	// fallback (tab vs four spaces at the same level).
	for range 2 {
		b.WriteString("a\n\tx\n    y\n")
	}

	require.Equal(t, "m4", detect(t, b.String()))
}

func TestDetectIndentation_NoMixedPromotionBelowTwentyPercent(t *testing.T) {
	var b strings.Builder

	for range 10 {
		b.WriteString("a\n    b\n")
	}

	b.WriteString("a\n\tx\n    y\n")

	require.Equal(t, "s4", detect(t, b.String()))
}

func TestDetectIndentation_ContinuationLineSkipped(t *testing.T) {
	text := strings.Join([]string{
		"a",
		`    b \`,
		"\t\tweird",
		"    c",
		"",
	}, "\n")

	// Without the continuation skip the two tab-vs-spaces comparisons would
	// outvote the single spaces diff.
	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_CommentLinesCarryNoSignal(t *testing.T) {
	text := strings.Join([]string{
		"a",
		"  b",
		"      # badly indented comment",
		"        // another one",
		"     /* and a third",
		"  c",
		"",
	}, "\n")

	require.Equal(t, "s2", detect(t, text))
}

func TestDetectIndentation_DocBlockSkipping(t *testing.T) {
	text := strings.Join([]string{
		"=pod",
		"  a",
		"    b",
		"  a",
		"    b",
		"=cut",
		"code",
		"    indented",
		"",
	}, "\n")

	withSkip := DetectIndentation(text, DetectOptions{SkipDocComments: true})
	require.Equal(t, "s4", withSkip.String())

	withoutSkip := DetectIndentation(text, DetectOptions{})
	require.Equal(t, "s2", withoutSkip.String())
}

func TestDetectIndentation_ExpandTabRetagsWinnerAsMixed(t *testing.T) {
	text := strings.Join([]string{
		"# vim: et",
		"a",
		"    b",
		"",
	}, "\n")

	// Preserved quirk: an explicit expandtab re-tags even a pure spaces
	// winner as mixed.
	require.Equal(t, "m4", detect(t, text))
}

func TestDetectIndentation_NoExpandTabPromotesEightToTabs(t *testing.T) {
	text := strings.Join([]string{
		"# vim: noet",
		"a",
		"        b",
		"",
	}, "\n")

	require.Equal(t, "t8", detect(t, text))
}

func TestDetectIndentation_NoExpandTabNarrowWidthBecomesMixed(t *testing.T) {
	text := strings.Join([]string{
		"# vim: noet",
		"a",
		"    b",
		"",
	}, "\n")

	require.Equal(t, "m4", detect(t, text))
}

func TestDetectIndentation_Idempotent(t *testing.T) {
	text := strings.Join([]string{
		"func main() {",
		"\tif ok {",
		"\t\trun()",
		"\t}",
		"}",
		"",
	}, "\n")

	first := DetectIndentation(text, DetectOptions{})
	second := DetectIndentation(text, DetectOptions{})

	assert.Equal(t, first, second)
}

func TestDetectIndentation_CRLFInput(t *testing.T) {
	text := "func main() {\r\n    run()\r\n}\r\n"

	require.Equal(t, "s4", detect(t, text))
}

func TestDetectIndentation_MixedIndentBody(t *testing.T) {
	// Levels are one tab plus a two-space remainder: the delta classifier
	// sees a mixed run worth 8*1+2 columns.
	text := strings.Join([]string{
		"a",
		"\t  b",
		"a",
		"\t  b",
		"",
	}, "\n")

	require.Equal(t, "m10", detect(t, text))
}
