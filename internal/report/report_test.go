package report_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxwalk/internal/diag"
	"loxwalk/internal/report"
	"loxwalk/internal/source"
)

func init() {
	color.NoColor = true
}

func TestRenderPrintsSeverityMessageAndLocation(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("<test>", []byte("var x = y + 1;"))

	bag := diag.NewBag(8)
	s := report.NewSink(bag)

	sp := source.Span{File: fid, Start: 8, End: 9} // "y"
	d := diag.NewError(diag.RtVarNotFound, sp, "variable not found: y")
	s.Report(&d)

	var buf bytes.Buffer
	s.Render(&buf, fs)

	out := buf.String()
	assert.Contains(t, out, "[ERROR] variable not found: y")
	assert.Contains(t, out, "At <test>:1:9")
	assert.Contains(t, out, "var x = y + 1;")
}

func TestRenderPlacesCaretUnderSpan(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("<test>", []byte("1 + nil;"))

	bag := diag.NewBag(8)
	s := report.NewSink(bag)

	sp := source.Span{File: fid, Start: 0, End: 8}
	d := diag.NewError(diag.RtOperationNotDefined, sp, "operation not defined for operand types")
	s.Report(&d)

	var buf bytes.Buffer
	s.Render(&buf, fs)

	lines := splitLines(buf.String())
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[2], "1 + nil;")
	assert.Equal(t, "    ^^^^^^^^", lines[3])
}

func TestRenderHandlesMultipleDiagnosticsInOrder(t *testing.T) {
	fs := source.NewFileSet()
	fid := fs.AddVirtual("<test>", []byte("a;\nb;\n"))

	bag := diag.NewBag(8)
	s := report.NewSink(bag)

	d1 := diag.NewError(diag.RtVarNotFound, source.Span{File: fid, Start: 0, End: 1}, "variable not found: a")
	d2 := diag.NewError(diag.RtVarNotFound, source.Span{File: fid, Start: 3, End: 4}, "variable not found: b")
	s.Report(&d1)
	s.Report(&d2)

	var buf bytes.Buffer
	s.Render(&buf, fs)

	out := buf.String()
	aIdx := indexOf(out, "variable not found: a")
	bIdx := indexOf(out, "variable not found: b")
	require.NotEqual(t, -1, aIdx)
	require.NotEqual(t, -1, bIdx)
	assert.Less(t, aIdx, bIdx)
	assert.Contains(t, out, "At <test>:2:1")
}

func TestHasErrorsReflectsSeverity(t *testing.T) {
	bag := diag.NewBag(8)
	s := report.NewSink(bag)
	assert.False(t, s.HasErrors())

	d := diag.NewError(diag.RtVarNotFound, source.Span{}, "boom")
	s.Report(&d)
	assert.True(t, s.HasErrors())
	assert.Equal(t, 1, s.Len())
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
