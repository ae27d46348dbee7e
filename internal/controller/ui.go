// Package controller provides output adapters for displaying indentation
// detection results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	m "indentect.dev/pkg/indentect/internal/model"
)

// UI defines the interface for displaying detection results. Implementations
// can use different output methods (plain table, TUI pager).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	DisplayScanInfo(ctx context.Context, files int, threads int)
	DisplayResults(ctx context.Context, reports []m.Report) error
}

// NewUI picks the TUI when stdout is an interactive terminal, otherwise the
// plain table UI.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to an interactive terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// styleTally counts reports per detected style letter.
type styleTally struct {
	spaces  int
	tabs    int
	mixed   int
	unknown int
}

func tallyStyles(reports []m.Report) styleTally {
	var tally styleTally

	for _, report := range reports {
		switch {
		case len(report.Signature) == 0:
			tally.unknown++
		case report.Signature[0] == byte(m.StyleSpaces):
			tally.spaces++
		case report.Signature[0] == byte(m.StyleTabs):
			tally.tabs++
		case report.Signature[0] == byte(m.StyleMixed):
			tally.mixed++
		default:
			tally.unknown++
		}
	}

	return tally
}
