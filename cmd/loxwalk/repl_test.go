package main

import (
	"io"
	"strings"
	"testing"

	"loxwalk/internal/nativefn"
	"loxwalk/internal/trace"
)

func newTestReplModel() *replModel {
	return newReplModel("> ", trace.Nop, nativefn.Options{Stdout: io.Discard}, 80)
}

func TestReplModelSubmitQuitCommands(t *testing.T) {
	for _, line := range []string{":quit", ":q", ".exit", "  :quit  "} {
		m := newTestReplModel()
		if !m.submit(line) {
			t.Fatalf("submit(%q) = false, want true", line)
		}
	}
}

func TestReplModelSubmitEmptyLine(t *testing.T) {
	m := newTestReplModel()
	if m.submit("") {
		t.Fatalf("submit(\"\") = true, want false")
	}
	if len(m.history) != 0 {
		t.Fatalf("empty line should not append to history, got %d entries", len(m.history))
	}
}

func TestReplModelSubmitEvaluatesAcrossLines(t *testing.T) {
	m := newTestReplModel()
	if m.submit("var x = 2;") {
		t.Fatalf("submit returned true unexpectedly")
	}
	if len(m.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(m.history))
	}
	if strings.Contains(m.history[0].output, "error") {
		t.Fatalf("unexpected error output: %q", m.history[0].output)
	}

	if m.submit("println(x + 1);") {
		t.Fatalf("submit returned true unexpectedly")
	}
	if len(m.history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(m.history))
	}
}

func TestReplModelSubmitReportsParseErrors(t *testing.T) {
	m := newTestReplModel()
	if m.submit("var;") {
		t.Fatalf("submit returned true unexpectedly")
	}
	if len(m.history) != 1 || m.history[0].output == "" {
		t.Fatalf("expected a rendered diagnostic for malformed input")
	}
}
