package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "indentect.dev/pkg/indentect/internal/model"
)

// SimpleUI implements UI using the cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayScanInfo prints how many files will be scanned and by how many workers.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, files int, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Scanning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayResults prints the per-file signature table and a style summary.
func (s *SimpleUI) DisplayResults(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderResultsTable(reports))

	tally := tallyStyles(reports)
	s.printf("Styles: %d spaces, %d tabs, %d mixed, %d unknown\n",
		tally.spaces, tally.tabs, tally.mixed, tally.unknown)

	return nil
}

func renderResultsTable(reports []m.Report) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Style", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	for _, report := range reports {
		table.Append([]string{string(report.Path), report.Signature, fmt.Sprintf("%d", report.Lines)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		dominantSignature(reports),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// dominantSignature returns the most common rendered signature, preferring
// the lexicographically smallest on ties so the footer is deterministic.
func dominantSignature(reports []m.Report) string {
	counts := make(map[string]int)
	for _, report := range reports {
		counts[report.Signature]++
	}

	best := "u"
	bestCount := 0

	for sig, count := range counts {
		if count > bestCount || (count == bestCount && sig < best) {
			best = sig
			bestCount = count
		}
	}

	return best
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
