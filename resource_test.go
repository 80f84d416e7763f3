package tokenize

import "testing"

func TestResourceLineOffsetsMixedEndings(t *testing.T) {
	r := NewResource([]byte("abc\ndef\nghi"), 1)

	if got := r.GetLine(2); got != "ghi" {
		t.Fatalf("GetLine(2) = %q, want %q", got, "ghi")
	}

	loc := r.CalculateSourceLocationFromRange(1, 7)
	if loc.StartLine != 0 || loc.StartColumn != 1 {
		t.Fatalf("start = line %d col %d, want line 0 col 1", loc.StartLine, loc.StartColumn)
	}
	if loc.EndLine != 1 || loc.EndColumn != 3 {
		t.Fatalf("end = line %d col %d, want line 1 col 3", loc.EndLine, loc.EndColumn)
	}
}

func TestResourceLineOffsetsCRLF(t *testing.T) {
	r := NewResource([]byte("abc\ndef\nghi\r\njkl"), 1)

	if got := r.GetLine(2); got != "ghi\r\n" {
		t.Fatalf("GetLine(2) = %q, want %q", got, "ghi\r\n")
	}
}

func TestResourceBareCRIsNotALineBreak(t *testing.T) {
	r := NewResource([]byte("abc\rdef"), 1)

	if len(r.lines) != 1 {
		t.Fatalf("expected a single line for a bare CR, got %d lines", len(r.lines))
	}
	if got := r.GetLine(0); got != "abc\rdef" {
		t.Fatalf("GetLine(0) = %q, want %q", got, "abc\rdef")
	}
}

func TestCalculateSourceLocationFromRangeInvariant(t *testing.T) {
	r := NewResource([]byte("hello world"), 42)

	loc := r.CalculateSourceLocationFromRange(2, 5)
	if loc.ResourceID != 42 || loc.StartBufferPosition != 2 || loc.EndBufferPosition != 5 {
		t.Fatalf("unexpected location: %+v", loc)
	}

	for _, tc := range [][2]uint32{{12, 12}, {0, 20}, {5, 2}} {
		loc := r.CalculateSourceLocationFromRange(tc[0], tc[1])
		if loc.ResourceID != InvalidResourceID {
			t.Fatalf("CalculateSourceLocationFromRange(%d,%d) = %+v, want invalid sentinel", tc[0], tc[1], loc)
		}
	}
}

func TestCalculateSourceLocationFromRangeEmptyRange(t *testing.T) {
	r := NewResource([]byte("hello"), 1)
	loc := r.CalculateSourceLocationFromRange(3, 3)
	if loc.EndLine != loc.StartLine || loc.EndColumn != loc.StartColumn {
		t.Fatalf("empty range should have equal start/end, got %+v", loc)
	}
}

func TestGetStringAtLocationBounds(t *testing.T) {
	r := NewResource([]byte("hello"), 1)

	if got := r.GetStringAtLocation(SourceLocation{ResourceID: 1, StartBufferPosition: 1, EndBufferPosition: 4}); got != "ell" {
		t.Fatalf("got %q, want %q", got, "ell")
	}
	if got := r.GetStringAtLocation(SourceLocation{ResourceID: 2, StartBufferPosition: 0, EndBufferPosition: 1}); got != "" {
		t.Fatalf("mismatched resourceId should yield empty string, got %q", got)
	}
	if got := r.GetStringAtLocation(SourceLocation{ResourceID: 1, StartBufferPosition: 3, EndBufferPosition: 1}); got != "" {
		t.Fatalf("end < start should yield empty string, got %q", got)
	}
	if got := r.GetStringAtLocation(SourceLocation{ResourceID: 1, StartBufferPosition: 0, EndBufferPosition: 100}); got != "" {
		t.Fatalf("out-of-bounds end should yield empty string, got %q", got)
	}
}

func TestGetPointerToLocation(t *testing.T) {
	r := NewResource([]byte("hello"), 1)

	if p := r.GetPointerToLocation(SourceLocation{ResourceID: 1, StartBufferPosition: 2}); string(p) != "llo" {
		t.Fatalf("got %q, want %q", p, "llo")
	}
	if p := r.GetPointerToLocation(SourceLocation{ResourceID: 9, StartBufferPosition: 0}); p != nil {
		t.Fatalf("mismatched resourceId should yield nil, got %q", p)
	}
	if p := r.GetPointerToLocation(SourceLocation{ResourceID: 1, StartBufferPosition: 10}); p != nil {
		t.Fatalf("out-of-bounds start should yield nil, got %q", p)
	}
}

func TestResourceDoesNotAliasCallerBuffer(t *testing.T) {
	buf := []byte("hello")
	r := NewResource(buf, 1)
	buf[0] = 'H'

	if got := r.GetStringAtLocation(SourceLocation{ResourceID: 1, StartBufferPosition: 0, EndBufferPosition: 5}); got != "hello" {
		t.Fatalf("Resource should own a copy, got %q after mutating caller buffer", got)
	}
}
