package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if string(out) != "a\nb\n" {
		t.Errorf("got %q, want %q", out, "a\nb\n")
	}

	out, changed = normalizeCRLF([]byte("a\nb\n"))
	if changed {
		t.Error("expected no change for content without \\r")
	}
	if string(out) != "a\nb\n" {
		t.Errorf("got %q, want unchanged input", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	out, had := removeBOM(withBOM)
	if !had {
		t.Error("expected BOM to be detected")
	}
	if string(out) != "x\n" {
		t.Errorf("got %q, want %q", out, "x\n")
	}

	out, had = removeBOM([]byte("x\n"))
	if had {
		t.Error("expected no BOM to be detected")
	}
	if string(out) != "x\n" {
		t.Errorf("got %q, want unchanged input", out)
	}
}

func TestBuildLineIndex(t *testing.T) {
	cases := []struct {
		content string
		want    []uint32
	}{
		{"", nil},
		{"hello", nil},
		{"\n", []uint32{0}},
		{"a\nb\n", []uint32{1, 3}},
	}
	for _, tc := range cases {
		got := buildLineIndex([]byte(tc.content))
		if len(got) != len(tc.want) {
			t.Fatalf("buildLineIndex(%q) = %v, want %v", tc.content, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("buildLineIndex(%q)[%d] = %d, want %d", tc.content, i, got[i], tc.want[i])
			}
		}
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\nef": a(0) b(1) \n(2) c(3) d(4) \n(5) e(6) f(7)
	idx := buildLineIndex([]byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}}, // sits on the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tc := range cases {
		if got := toLineCol(idx, tc.off); got != tc.want {
			t.Errorf("toLineCol(off=%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	if got, want := normalizePath("a/b/../c"), "a/c"; got != want {
		t.Errorf("normalizePath = %q, want %q", got, want)
	}
}
