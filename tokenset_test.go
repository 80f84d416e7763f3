package tokenize

import "testing"

func TestMatchRangedLiteralWithEscape(t *testing.T) {
	ts := &TokenSet{}
	ts.AddRangedStringToken("'", "'", `\$`, StringLiteral)

	input := []byte(" 'abc\\'def$''")
	result, mt := ts.Match(input)

	if result != Matched {
		t.Fatalf("result = %v, want Matched", result)
	}
	if mt.Offset != 1 {
		t.Errorf("offset = %d, want 1", mt.Offset)
	}
	if mt.Length != 12 {
		t.Errorf("length = %d, want 12", mt.Length)
	}
	if mt.ContentBeginOffset != 2 {
		t.Errorf("contentBeginOffset = %d, want 2", mt.ContentBeginOffset)
	}
	if mt.ContentEndOffset != 12 {
		t.Errorf("contentEndOffset = %d, want 12", mt.ContentEndOffset)
	}
}

func TestMatchUnterminatedRangedLiteral(t *testing.T) {
	ts := &TokenSet{}
	ts.AddRangedStringToken("'", "'", `\`, StringLiteral)

	input := []byte(" 'abcdef   ")
	result, mt := ts.Match(input)

	if result != EndNotMatched {
		t.Fatalf("result = %v, want EndNotMatched", result)
	}
	if mt.Offset != 1 {
		t.Errorf("offset = %d, want 1", mt.Offset)
	}
	if mt.Length != 10 {
		t.Errorf("length = %d, want 10", mt.Length)
	}
	if mt.ContentBeginOffset != 2 || mt.ContentEndOffset != 11 {
		t.Errorf("content = [%d,%d), want [2,11)", mt.ContentBeginOffset, mt.ContentEndOffset)
	}
}

func TestMatchRangedRegex(t *testing.T) {
	ts := &TokenSet{}
	ts.AddRangedRegexToken("<c>", `<\/c>`, Comment)

	input := []byte(" <c>test test test</c>")
	result, mt := ts.Match(input)

	if result != Matched {
		t.Fatalf("result = %v, want Matched", result)
	}
	if mt.Offset != 1 {
		t.Errorf("offset = %d, want 1", mt.Offset)
	}
	if mt.Length != 21 {
		t.Errorf("length = %d, want 21", mt.Length)
	}
	if mt.ContentBeginOffset != 4 || mt.ContentEndOffset != 18 {
		t.Errorf("content = [%d,%d), want [4,18)", mt.ContentBeginOffset, mt.ContentEndOffset)
	}
}

func TestLiteralBeatsRegex(t *testing.T) {
	ts := &TokenSet{}
	ts.AddRegexToken(`keyword\b`, Keyword)
	ts.AddRegexToken(`[a-zA-Z_]+\w*`, Identifier)

	result, mt := ts.Match([]byte("keyword"))
	if result != Matched || mt.Type != Keyword || mt.Length != 7 {
		t.Fatalf("got %v %+v, want Matched Keyword length 7", result, mt)
	}

	ts2 := &TokenSet{}
	ts2.AddStringToken("keyword", Keyword)
	ts2.AddRegexToken(`[a-zA-Z_]+\w*`, Identifier)

	result, mt = ts2.Match([]byte("keyword"))
	if result != Matched || mt.Type != Keyword {
		t.Fatalf("literal should still beat regex: got %v %+v", result, mt)
	}
}

func TestLiteralTokenBoundaryDisambiguation(t *testing.T) {
	ts := &TokenSet{}
	ts.AddStringToken("test", Identifier)

	if result, mt := ts.Match([]byte("test")); result != Matched || mt.Length != 4 {
		t.Fatalf("exact match failed: %v %+v", result, mt)
	}

	if result, _ := ts.Match([]byte("test_str")); result != NoMatch {
		t.Fatalf("\"test\" should not match inside \"test_str\", got %v", result)
	}

	if result, _ := ts.Match([]byte("3test")); result != NoMatch {
		t.Fatalf("literal \"test\" should not match \"3test\" at this position, got %v", result)
	}
}

func TestLiteralPunctuationChaining(t *testing.T) {
	ts := &TokenSet{}
	ts.AddStringToken("=", Symbol)
	ts.AddStringToken("==", Symbol)

	result, mt := ts.Match([]byte("=="))
	if result != Matched || mt.Length != 2 {
		t.Fatalf("\"==\" should beat \"=\": got %v %+v", result, mt)
	}

	result, mt = ts.Match([]byte("= "))
	if result != Matched || mt.Length != 1 {
		t.Fatalf("lone \"=\" should match length 1: got %v %+v", result, mt)
	}
}

func TestDuplicateLiteralRegistrationKeepsFirst(t *testing.T) {
	ts := &TokenSet{}
	ts.AddStringToken("if", Keyword, 1)
	ts.AddStringToken("if", Identifier, 2)

	result, mt := ts.Match([]byte("if"))
	if result != Matched || mt.Type != Keyword || mt.SubType != 1 {
		t.Fatalf("duplicate registration should keep the first: got %v %+v", result, mt)
	}
}

func TestMatchEmptyAndNoMatchers(t *testing.T) {
	ts := &TokenSet{}
	if result, _ := ts.Match([]byte("anything")); result != NoMatch {
		t.Fatalf("no matchers registered should yield NoMatch, got %v", result)
	}

	ts.AddStringToken("x", Symbol)
	if result, _ := ts.Match(nil); result != NoMatch {
		t.Fatalf("empty input should yield NoMatch, got %v", result)
	}
	if result, _ := ts.Match([]byte("   \t")); result != NoMatch {
		t.Fatalf("whitespace-only input should yield NoMatch, got %v", result)
	}
}

func TestCustomTokenTriedLast(t *testing.T) {
	ts := &TokenSet{}
	ts.AddStringToken("lit", Symbol)
	ts.AddRegexToken(`re\w*`, Identifier)

	calls := 0
	ts.AddCustomToken(func(input []byte) (MatchResult, MatchedToken) {
		calls++
		return Matched, MatchedToken{Type: Macro, Length: uint32(len(input)), ContentBeginOffset: -1, ContentEndOffset: -1}
	})

	if result, mt := ts.Match([]byte("lit")); result != Matched || mt.Type != Symbol {
		t.Fatalf("literal should still win over custom: %v %+v", result, mt)
	}
	if calls != 0 {
		t.Fatalf("custom matcher should not run when literal matches, ran %d times", calls)
	}

	if result, mt := ts.Match([]byte("rex")); result != Matched || mt.Type != Identifier {
		t.Fatalf("regex should still win over custom: %v %+v", result, mt)
	}
	if calls != 0 {
		t.Fatalf("custom matcher should not run when regex matches, ran %d times", calls)
	}

	if result, mt := ts.Match([]byte("###")); result != Matched || mt.Type != Macro {
		t.Fatalf("custom matcher should run when literal and regex both miss: %v %+v", result, mt)
	}
	if calls != 1 {
		t.Fatalf("custom matcher should run exactly once, ran %d times", calls)
	}
}
