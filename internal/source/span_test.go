package source

import "testing"

func TestSpanCoverUnionsRange(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "b extends right",
			a:        Span{File: 1, Start: 5, End: 10},
			b:        Span{File: 1, Start: 8, End: 20},
			expected: Span{File: 1, Start: 5, End: 20},
		},
		{
			name:     "b extends left",
			a:        Span{File: 1, Start: 10, End: 15},
			b:        Span{File: 1, Start: 2, End: 12},
			expected: Span{File: 1, Start: 2, End: 15},
		},
		{
			name:     "b fully contained",
			a:        Span{File: 1, Start: 0, End: 100},
			b:        Span{File: 1, Start: 40, End: 50},
			expected: Span{File: 1, Start: 0, End: 100},
		},
		{
			name:     "identical spans",
			a:        Span{File: 3, Start: 4, End: 9},
			b:        Span{File: 3, Start: 4, End: 9},
			expected: Span{File: 3, Start: 4, End: 9},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cover(tc.b); got != tc.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestSpanCoverAcrossFilesIsNoop(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(b); got != a {
		t.Errorf("Cover() across different files = %+v, want %+v unchanged", got, a)
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 2, Start: 3, End: 7}
	if got, want := s.String(), "2:3-7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
