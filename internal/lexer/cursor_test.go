package lexer

import (
	"loxwalk/internal/source"
	"testing"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lox", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	if cursor.Peek() != 'a' {
		t.Fatalf("expected 'a', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("expected bump 'a', got %c", b)
	}
	if cursor.Peek() != '\n' {
		t.Fatalf("expected '\\n', got %c", cursor.Peek())
	}
	cursor.Bump()
	if cursor.Peek() != 'b' {
		t.Fatalf("expected 'b', got %c", cursor.Peek())
	}
	cursor.Bump()

	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("expected 0 at EOF, got %c", cursor.Peek())
	}
}

func TestPeek2(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("expected ('a','b',true), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump()
	b0, b1, ok = cursor.Peek2()
	if !ok || b0 != 'b' || b1 != 'c' {
		t.Fatalf("expected ('b','c',true), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump()
	_, _, ok = cursor.Peek2()
	if ok {
		t.Error("expected Peek2 to fail near EOF")
	}
}

func TestEat(t *testing.T) {
	file := createFile("ab")
	cursor := NewCursor(file)

	if cursor.Eat('x') {
		t.Error("Eat of wrong byte should fail")
	}
	if !cursor.Eat('a') {
		t.Error("Eat('a') should succeed")
	}
	if !cursor.Eat('b') {
		t.Error("Eat('b') should succeed")
	}
	if cursor.Eat('c') {
		t.Error("Eat at EOF should fail")
	}
}

func TestMarkRewind(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)

	mark1 := cursor.Mark()
	cursor.Bump()
	mark2 := cursor.Mark()
	cursor.Bump()

	cursor.Rewind(mark2)
	if cursor.Peek() != 'b' {
		t.Errorf("expected 'b' after rewind to mark2, got %c", cursor.Peek())
	}
	cursor.Rewind(mark1)
	if cursor.Peek() != 'a' {
		t.Errorf("expected 'a' after rewind to mark1, got %c", cursor.Peek())
	}
}

func TestSpanFrom(t *testing.T) {
	file := createFile("abc")
	cursor := NewCursor(file)
	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(mark)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("expected span (0,2), got (%d,%d)", sp.Start, sp.End)
	}
}
