package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "indentect.dev/pkg/indentect/internal/model"
)

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	tuiSpacesStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	tuiTabsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	tuiMixedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	tuiUnknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)

	tuiHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op, the pager exits on its own).
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayScanInfo prints how many files will be scanned and by how many workers.
func (t *TUI) DisplayScanInfo(ctx context.Context, files int, threads int) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(t.output, "Scanning %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayResults shows the per-file results. Short lists print directly;
// longer ones open a scrollable pager.
func (t *TUI) DisplayResults(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newResultsModel(reports)

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// resultsModel is the Bubble Tea model paging through detection results.
type resultsModel struct {
	reports  []m.Report
	tally    styleTally
	height   int
	width    int
	offset   int
	quitting bool
}

func newResultsModel(reports []m.Report) resultsModel {
	return resultsModel{
		reports: reports,
		tally:   tallyStyles(reports),
	}
}

func (rm resultsModel) Init() tea.Cmd {
	return nil
}

func (rm resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.height = msg.Height
		rm.width = msg.Width

		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)
	}

	return rm, nil
}

func (rm resultsModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rm.quitting = true
		return rm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		rm.quitting = true
		return rm, tea.Quit

	case "down", "j":
		rm.offset = minInt(rm.offset+1, rm.maxOffset())
		return rm, nil

	case "up", "k":
		rm.offset = maxInt(rm.offset-1, 0)
		return rm, nil

	case "g", "home":
		rm.offset = 0
		return rm, nil

	case "G", "end":
		rm.offset = rm.maxOffset()
		return rm, nil

	case "d", "pgdown":
		rm.offset = minInt(rm.offset+rm.itemsPerPage(), rm.maxOffset())
		return rm, nil

	case "u", "pgup":
		rm.offset = maxInt(rm.offset-rm.itemsPerPage(), 0)
		return rm, nil
	}

	return rm, nil
}

// itemsPerPage calculates how many result rows fit on screen, after the
// header, summary and help lines.
func (rm resultsModel) itemsPerPage() int {
	if rm.height == 0 {
		return 10
	}

	reserved := 7

	available := rm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (rm resultsModel) maxOffset() int {
	maxOff := len(rm.reports) - rm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination reports whether the list is too long to print in one go.
func (rm resultsModel) needsPagination() bool {
	return len(rm.reports) > rm.itemsPerPage() && rm.height > 0
}

func (rm resultsModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render("Indentect report"))
	b.WriteString("\n\n")

	if len(rm.reports) == 0 {
		b.WriteString("  no files scanned\n")
		return b.String()
	}

	rm.renderRows(&b)

	fmt.Fprintf(&b, "\n  %d file(s): %d spaces, %d tabs, %d mixed, %d unknown\n",
		len(rm.reports), rm.tally.spaces, rm.tally.tabs, rm.tally.mixed, rm.tally.unknown)

	if rm.needsPagination() {
		b.WriteString(tuiHelpStyle.Render("  j/k scroll · d/u page · q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (rm resultsModel) renderRows(b *strings.Builder) {
	rows := rm.reports

	if rm.needsPagination() {
		start := minInt(rm.offset, maxInt(len(rows)-1, 0))
		end := minInt(start+rm.itemsPerPage(), len(rows))
		rows = rows[start:end]
	}

	for _, report := range rows {
		fmt.Fprintf(b, "  %s  %s\n", signatureStyle(report.Signature).Render(fmt.Sprintf("%-4s", report.Signature)), report.Path)
	}
}

// signatureStyle picks the lipgloss style matching a rendered signature.
func signatureStyle(signature string) lipgloss.Style {
	if signature == "" {
		return tuiUnknownStyle
	}

	switch signature[0] {
	case byte(m.StyleSpaces):
		return tuiSpacesStyle
	case byte(m.StyleTabs):
		return tuiTabsStyle
	case byte(m.StyleMixed):
		return tuiMixedStyle
	default:
		return tuiUnknownStyle
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
