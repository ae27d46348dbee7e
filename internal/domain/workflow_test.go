package domain

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indentect.dev/pkg/indentect/internal/adapter"
	"indentect.dev/pkg/indentect/internal/controller"
	m "indentect.dev/pkg/indentect/internal/model"
)

func newTestWorkflow(t *testing.T) (Workflow, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	wf := NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(),
		controller.NewSimpleUI(cmd),
	)

	return wf, buf
}

func writeSourceTree(t *testing.T, files map[string][]byte) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, data, 0o600))
	}

	return dir
}

func TestWorkflowDetect_EndToEnd(t *testing.T) {
	src := writeSourceTree(t, map[string][]byte{
		"spaces.py":        []byte("def f():\n    pass\n"),
		"tabs.go":          []byte("func f() {\n\treturn\n}\n"),
		"blob.bin":         {0x00, 0x01, 0x02},
		"ignored.txt":      []byte("a\n  b\n"),
		"vendor/dep.go":    []byte("func g() {\n  x()\n}\n"),
		"sub/nested.yml":   []byte("top:\n  nested: 1\n"),
		".git/objects/abc": []byte("x\n"),
	})
	reportsDir := filepath.Join(t.TempDir(), "reports")

	wf, buf := newTestWorkflow(t)

	err := wf.Detect(context.Background(), DetectArgs{
		Paths:   []m.Path{m.Path(src + "/...")},
		Exclude: []string{`ignored\.txt$`},
		Reports: m.Path(reportsDir),
		Threads: 2,
	})
	require.NoError(t, err)

	set, err := adapter.NewReportStore().Load(m.Path(reportsDir))
	require.NoError(t, err)
	assert.Equal(t, m.ReportSetVersion, set.Version)

	byName := make(map[string]m.Report, len(set.Reports))
	for _, report := range set.Reports {
		byName[filepath.Base(string(report.Path))] = report
	}

	require.Len(t, set.Reports, 3)
	assert.Equal(t, "s4", byName["spaces.py"].Signature)
	assert.Equal(t, "t8", byName["tabs.go"].Signature)
	assert.Equal(t, "s2", byName["nested.yml"].Signature)
	assert.Equal(t, 2, byName["spaces.py"].Lines)
	assert.NotEmpty(t, byName["tabs.go"].Hash)

	// Walked files are reported relative to the scan root, in sorted order.
	paths := make([]string, 0, len(set.Reports))
	for _, report := range set.Reports {
		paths = append(paths, string(report.Path))
	}

	assert.Equal(t, []string{
		"spaces.py",
		filepath.Join("sub", "nested.yml"),
		"tabs.go",
	}, paths)

	out := buf.String()
	assert.Contains(t, out, "Scanning 3 file(s) with 2 worker(s)")
	assert.Contains(t, out, "spaces.py")
}

func TestWorkflowDetect_SingleFilePath(t *testing.T) {
	src := writeSourceTree(t, map[string][]byte{
		"only.c": []byte("int main() {\n\treturn 0;\n}\n"),
	})
	reportsDir := filepath.Join(t.TempDir(), "reports")

	wf, _ := newTestWorkflow(t)

	err := wf.Detect(context.Background(), DetectArgs{
		Paths:   []m.Path{m.Path(filepath.Join(src, "only.c"))},
		Reports: m.Path(reportsDir),
		Threads: 1,
	})
	require.NoError(t, err)

	set, err := adapter.NewReportStore().Load(m.Path(reportsDir))
	require.NoError(t, err)
	require.Len(t, set.Reports, 1)
	assert.Equal(t, "t8", set.Reports[0].Signature)

	// An explicitly named file keeps its path as given (cleaned).
	assert.Equal(t, m.Path(filepath.Join(src, "only.c")), set.Reports[0].Path)
}

func TestWorkflowDetect_InvalidExcludePattern(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Detect(context.Background(), DetectArgs{
		Paths:   []m.Path{m.Path(t.TempDir())},
		Exclude: []string{"["},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid exclude pattern")
}

func TestWorkflowDetect_MissingPath(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Detect(context.Background(), DetectArgs{
		Paths: []m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "path error")
}

func TestWorkflowView(t *testing.T) {
	reportsDir := m.Path(t.TempDir())

	set := m.ReportSet{
		Version: m.ReportSetVersion,
		Reports: []m.Report{{Path: "x.go", Signature: "t8", Lines: 4}},
	}
	require.NoError(t, adapter.NewReportStore().Save(reportsDir, set))

	wf, buf := newTestWorkflow(t)

	require.NoError(t, wf.View(context.Background(), ViewArgs{Reports: reportsDir}))
	assert.Contains(t, buf.String(), "x.go")
	assert.Contains(t, buf.String(), "t8")
}

func TestWorkflowView_MissingReports(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.View(context.Background(), ViewArgs{Reports: m.Path(t.TempDir())})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load reports")
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		in        m.Path
		root      m.Path
		recursive bool
	}{
		{"./...", ".", true},
		{"...", ".", true},
		{"src/...", "src", true},
		{"/...", ".", true},
		{"src", "src", false},
		{"a/b.go", "a/b.go", false},
	}

	for _, tt := range tests {
		root, recursive := splitPattern(tt.in)
		assert.Equal(t, tt.root, root, "pattern %q", tt.in)
		assert.Equal(t, tt.recursive, recursive, "pattern %q", tt.in)
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, countLines(tt.text), "text %q", tt.text)
	}
}
