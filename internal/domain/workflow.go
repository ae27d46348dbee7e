package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"indentect.dev/pkg/indentect/internal/adapter"
	"indentect.dev/pkg/indentect/internal/controller"
	m "indentect.dev/pkg/indentect/internal/model"
	pkg "indentect.dev/pkg/indentect/pkg"
)

// DetectArgs bundles the inputs of Workflow.Detect.
type DetectArgs struct {
	Paths           []m.Path
	Exclude         []string
	Reports         m.Path
	Threads         int
	SkipDocComments bool
}

// ViewArgs bundles the inputs of Workflow.View.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives full detection runs for the CLI.
type Workflow interface {
	Detect(ctx context.Context, args DetectArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fs    adapter.SourceFSAdapter
	store adapter.ReportStore
	ui    controller.UI
}

// NewWorkflow wires a Workflow from its collaborators.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{fs: fs, store: store, ui: ui}
}

// scanTarget pairs the path a file is opened under with the path its report
// is filed under. Files found by walking a directory pattern are reported
// relative to that scan root.
type scanTarget struct {
	source  m.Path
	display m.Path
}

// Detect expands the path patterns, runs the detection engine over every
// candidate file with a bounded worker pool, displays the results and
// persists them as a report set.
func (w *workflow) Detect(ctx context.Context, args DetectArgs) error {
	targets, err := w.collectFiles(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	w.ui.DisplayScanInfo(ctx, len(targets), threads)

	spool, err := pkg.NewSpool[m.Report]()
	if err != nil {
		return err
	}

	defer func() {
		_ = spool.Close()
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, target := range targets {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			report, err := w.detectFile(target, args.SkipDocComments)
			if err != nil {
				// Unreadable files are skipped, not fatal.
				slog.Warn("skipping unreadable file", "path", string(target.source), "error", err)
				return nil
			}

			return spool.Append(report)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	reports := make([]m.Report, 0, spool.Len())

	err = spool.Range(func(_ uint64, report m.Report) error {
		reports = append(reports, report)
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Path < reports[j].Path
	})

	if err := w.ui.DisplayResults(ctx, reports); err != nil {
		return err
	}

	set := m.ReportSet{
		Version:     m.ReportSetVersion,
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
	}

	if err := w.store.Save(args.Reports, set); err != nil {
		return fmt.Errorf("failed to save reports: %w", err)
	}

	slog.Info("detection run complete", "files", len(reports), "reports", string(args.Reports))

	return nil
}

// View loads a previously stored report set and displays it.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	set, err := w.store.Load(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	if err := w.ui.Start(ctx); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	return w.ui.DisplayResults(ctx, set.Reports)
}

func (w *workflow) detectFile(target scanTarget, skipDocComments bool) (m.Report, error) {
	content, err := w.fs.ReadFile(target.source)
	if err != nil {
		return m.Report{}, err
	}

	hash, err := w.fs.HashFile(target.source)
	if err != nil {
		return m.Report{}, err
	}

	text := string(content)
	signature := DetectIndentation(text, DetectOptions{SkipDocComments: skipDocComments})

	return m.Report{
		Path:      target.display,
		Hash:      hash,
		Signature: signature.String(),
		Lines:     countLines(text),
	}, nil
}

// collectFiles expands Go-style path patterns into a deduplicated, sorted
// list of text files, applying the exclude patterns and the binary sniff.
func (w *workflow) collectFiles(paths []m.Path, exclude []string) ([]scanTarget, error) {
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	excludeRes := make([]*regexp.Regexp, 0, len(exclude))

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludeRes = append(excludeRes, re)
	}

	excluded := func(path m.Path) bool {
		for _, re := range excludeRes {
			if re.MatchString(string(path)) {
				return true
			}
		}

		return false
	}

	seen := make(map[m.Path]struct{})

	var targets []scanTarget

	addFile := func(source, display m.Path) {
		if _, dup := seen[source]; dup {
			return
		}

		if excluded(source) || w.fs.LooksBinary(source) {
			return
		}

		seen[source] = struct{}{}
		targets = append(targets, scanTarget{source: source, display: display})
	}

	for _, path := range paths {
		root, recursive := splitPattern(path)

		info, err := w.fs.FileInfo(root)
		if err != nil {
			return nil, fmt.Errorf("path error: %w", err)
		}

		if !info.IsDir() {
			addFile(root, w.fs.JoinPath(string(root)))
			continue
		}

		err = w.fs.Walk(root, recursive, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fi.IsDir() {
				base := filepath.Base(p)
				if base == ".git" || base == "vendor" || base == "node_modules" {
					return filepath.SkipDir
				}

				return nil
			}

			display, relErr := w.fs.RelPath(root, m.Path(p))
			if relErr != nil {
				display = m.Path(p)
			}

			addFile(m.Path(p), display)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(targets, func(i, j int) bool {
		return targets[i].display < targets[j].display
	})

	return targets, nil
}

// splitPattern interprets Go-style path patterns: a trailing "/..." (or a
// bare "...") requests a recursive walk of the root.
func splitPattern(path m.Path) (m.Path, bool) {
	p := string(path)

	if p == "..." {
		return ".", true
	}

	if strings.HasSuffix(p, "/...") {
		root := strings.TrimSuffix(p, "/...")
		if root == "" {
			root = "."
		}

		return m.Path(root), true
	}

	return path, false
}

func countLines(text string) int {
	if text == "" {
		return 0
	}

	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}

	return n
}
