package domain

import (
	m "indentect.dev/pkg/indentect/internal/model"
)

// mixedPromotionShare is the share of the winner's votes (as a fraction,
// 1/mixedPromotionShare) that same-width mixed votes must reach to promote
// a spaces winner to mixed.
const mixedPromotionShare = 5

// resolve reconciles the heuristic histogram evidence with the accumulated
// override settings once the scan has consumed every line.
func resolve(hist m.Histogram, set *settings) m.Signature {
	if hist.Empty() {
		return m.Unknown()
	}

	winner, votes := hist.Winner()

	// A spaces winner shadowed by a notable share of same-width mixed votes
	// is promoted: those lines are the tab-padded variant of the same level
	// width.
	if winner.Style == m.StyleSpaces {
		if mixed := hist.Count(m.Mixed(winner.Width)); mixed*mixedPromotionShare >= votes {
			winner = m.Mixed(winner.Width)
		}
	}

	// Emacs style presets only fill fields nothing explicit claimed.
	if set.softTabStop == nil {
		set.softTabStop = set.styleSoftTabStop
	}

	if set.tabStop == nil {
		set.tabStop = set.styleTabStop
	}

	if set.useTabs == nil {
		set.useTabs = set.styleUseTabs
	}

	if set.softTabStop != nil {
		winner.Width = *set.softTabStop
	} else if set.tabStop != nil {
		winner.Width = *set.tabStop
	}

	if set.useTabs != nil {
		winner = applyTabsPreference(winner, *set.useTabs)
	}

	if set.mixedMode != nil && *set.mixedMode {
		winner.Style = m.StyleMixed
	}

	return winner
}

// applyTabsPreference folds an explicit expandtab/indent-tabs-mode setting
// into the heuristic winner. An explicit no-tabs setting re-tags even a
// plain spaces winner as mixed; callers depend on that exact output, so it
// is kept although it disagrees with the documented meaning of mixed.
func applyTabsPreference(sig m.Signature, useTabs bool) m.Signature {
	if !useTabs {
		sig.Style = m.StyleMixed
		return sig
	}

	if sig.Style != m.StyleSpaces && sig.Style != m.StyleUnknown {
		return sig
	}

	if sig.Width == tabWidth || sig.Style == m.StyleUnknown {
		return m.Tabs(tabWidth)
	}

	sig.Style = m.StyleMixed

	return sig
}
