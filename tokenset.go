package tokenize

import (
	"bytes"
	"fmt"
	"regexp"
)

// StringTokenMatcher is a literal or ranged-literal matcher registered on a
// TokenSet. When HasEnd is false it is a plain literal; when true it is a
// ranged matcher delimited by Begin/End with optional escape handling.
type StringTokenMatcher struct {
	Type        TokenType
	SubType     int32
	Begin       string
	End         string
	HasEnd      bool
	EscapeChars string
}

// RegexTokenMatcher is a regex or ranged-regex matcher registered on a
// TokenSet. Begin is always anchored to the start of the searched position.
type RegexTokenMatcher struct {
	Type    TokenType
	SubType int32
	Begin   *regexp.Regexp
	End     *regexp.Regexp
	HasEnd  bool
}

// MatchedToken is the transient result of a successful TokenSet.Match.
// Offset is the amount of leading whitespace skipped; Length is the total
// number of bytes consumed from the post-skip position. ContentBeginOffset
// and ContentEndOffset are either noContent (-1) or byte offsets relative
// to the start of the untrimmed input passed to Match.
type MatchedToken struct {
	Type               TokenType
	SubType            int32
	Offset             uint32
	Length             uint32
	ContentBeginOffset int32
	ContentEndOffset   int32
}

func noContentMatch() MatchedToken {
	return MatchedToken{ContentBeginOffset: noContent, ContentEndOffset: noContent}
}

// CustomMatcherFunc is the extension point registered via AddCustomToken: a
// function from the (whitespace-trimmed) input to a match outcome.
type CustomMatcherFunc func(input []byte) (MatchResult, MatchedToken)

// TokenSet is a registry of matchers. It exposes one Match operation that
// tries all registered matchers, in order literal, regex, custom, against a
// position in the input. Registration is not safe to call concurrently with
// Match or with other registration calls; once the internal trie has been
// built by the first Match call, concurrent Match calls are safe as long as
// no further registration occurs.
type TokenSet struct {
	stringTokens []StringTokenMatcher
	regexTokens  []RegexTokenMatcher
	customTokens []CustomMatcherFunc
	trie         *trieNode
}

func resolveSubType(subType []int32) int32 {
	if len(subType) > 0 {
		return subType[0]
	}
	return -1
}

// AddStringToken registers a plain literal matcher.
func (ts *TokenSet) AddStringToken(match string, typ TokenType, subType ...int32) {
	ts.trie = nil
	ts.stringTokens = append(ts.stringTokens, StringTokenMatcher{
		Type:    typ,
		SubType: resolveSubType(subType),
		Begin:   match,
	})
}

// AddRangedStringToken registers a ranged literal matcher delimited by
// begin/end, with escapeChars naming bytes that cause the following byte to
// be consumed unconditionally (an end delimiter immediately following an
// escape does not terminate the range).
func (ts *TokenSet) AddRangedStringToken(begin, end, escapeChars string, typ TokenType, subType ...int32) {
	ts.trie = nil
	ts.stringTokens = append(ts.stringTokens, StringTokenMatcher{
		Type:        typ,
		SubType:     resolveSubType(subType),
		Begin:       begin,
		End:         end,
		HasEnd:      true,
		EscapeChars: escapeChars,
	})
}

// AddRegexToken registers a regex matcher. If pattern does not start with
// '^' it is prefixed so the match is anchored to the searched position.
// Panics if pattern fails to compile — a malformed pattern is a programmer
// error caught at registration time, not a runtime condition.
func (ts *TokenSet) AddRegexToken(pattern string, typ TokenType, subType ...int32) {
	ts.trie = nil
	ts.regexTokens = append(ts.regexTokens, RegexTokenMatcher{
		Type:    typ,
		SubType: resolveSubType(subType),
		Begin:   mustAnchoredRegexp(pattern),
	})
}

// AddRangedRegexToken registers a ranged regex matcher: beginPattern is
// anchored, endPattern is searched unanchored starting after the begin
// match.
func (ts *TokenSet) AddRangedRegexToken(beginPattern, endPattern string, typ TokenType, subType ...int32) {
	ts.trie = nil
	ts.regexTokens = append(ts.regexTokens, RegexTokenMatcher{
		Type:    typ,
		SubType: resolveSubType(subType),
		Begin:   mustAnchoredRegexp(beginPattern),
		End:     regexp.MustCompile(endPattern),
		HasEnd:  true,
	})
}

// AddCustomToken registers a custom matcher function, tried after all
// literal and regex matchers have failed to match, in registration order.
func (ts *TokenSet) AddCustomToken(fn CustomMatcherFunc) {
	ts.customTokens = append(ts.customTokens, fn)
}

func mustAnchoredRegexp(pattern string) *regexp.Regexp {
	if len(pattern) == 0 || pattern[0] != '^' {
		pattern = "^" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("tokenize: invalid regex token pattern %q: %v", pattern, err))
	}
	return re
}

// Match tries all registered matchers against input, in the order literal,
// regex, custom (first match wins within regex and custom; the literal trie
// returns the single longest valid match). Leading ASCII whitespace is
// skipped and counted into the returned MatchedToken.Offset.
func (ts *TokenSet) Match(input []byte) (MatchResult, MatchedToken) {
	if len(input) == 0 {
		return NoMatch, noContentMatch()
	}
	if len(ts.stringTokens) == 0 && len(ts.regexTokens) == 0 && len(ts.customTokens) == 0 {
		return NoMatch, noContentMatch()
	}

	offset := 0
	for offset < len(input) && isASCIIWhitespace(input[offset]) {
		offset++
	}
	if offset >= len(input) {
		return NoMatch, noContentMatch()
	}

	rest := input[offset:]

	result, mt := ts.matchLiteral(rest)
	if result == NoMatch {
		result, mt = ts.matchRegex(rest)
	}
	if result == NoMatch {
		result, mt = ts.matchCustom(rest)
	}

	if result != NoMatch {
		mt.Offset = uint32(offset)
		if mt.ContentBeginOffset != noContent {
			mt.ContentBeginOffset += int32(offset)
		}
		if mt.ContentEndOffset != noContent {
			mt.ContentEndOffset += int32(offset)
		}
	}

	return result, mt
}

func (ts *TokenSet) buildTrie() {
	root := newTrieNode(0)
	for i := range ts.stringTokens {
		root.insert([]byte(ts.stringTokens[i].Begin), i)
	}
	ts.trie = root
}

func (ts *TokenSet) matchLiteral(input []byte) (MatchResult, MatchedToken) {
	if len(ts.stringTokens) == 0 {
		return NoMatch, noContentMatch()
	}
	if ts.trie == nil {
		ts.buildTrie()
	}

	idx := ts.trie.findMatch(input, 0)
	if idx == -1 {
		return NoMatch, noContentMatch()
	}

	tok := ts.stringTokens[idx]
	if !tok.HasEnd {
		return Matched, MatchedToken{
			Type:               tok.Type,
			SubType:            tok.SubType,
			Length:             uint32(len(tok.Begin)),
			ContentBeginOffset: noContent,
			ContentEndOffset:   noContent,
		}
	}

	return scanRangedLiteral(input, tok)
}

// scanRangedLiteral implements spec.md §4.4's ranged-literal scan, walking
// byte by byte from just past the begin delimiter until the end delimiter
// is found (honoring escapeChars) or the input runs out.
func scanRangedLiteral(input []byte, tok StringTokenMatcher) (MatchResult, MatchedToken) {
	beginLen := len(tok.Begin)
	endLen := len(tok.End)
	end := []byte(tok.End)

	cursor := beginLen
	foundEnd := false

	for cursor < len(input) {
		didEscape := false

		if tok.EscapeChars != "" && bytes.IndexByte([]byte(tok.EscapeChars), input[cursor]) != -1 {
			didEscape = true
			cursor++
		}

		if cursor+endLen <= len(input) && bytes.Equal(input[cursor:cursor+endLen], end) {
			if didEscape {
				cursor += endLen
				continue
			}
			foundEnd = true
			break
		}

		if didEscape {
			continue
		}

		cursor++
	}

	if !foundEnd {
		length := cursor
		return EndNotMatched, MatchedToken{
			Type:               tok.Type,
			SubType:            tok.SubType,
			Length:             uint32(length),
			ContentBeginOffset: int32(beginLen),
			ContentEndOffset:   int32(length),
		}
	}

	length := cursor + endLen
	return Matched, MatchedToken{
		Type:               tok.Type,
		SubType:            tok.SubType,
		Length:             uint32(length),
		ContentBeginOffset: int32(beginLen),
		ContentEndOffset:   int32(length - endLen),
	}
}

func (ts *TokenSet) matchRegex(input []byte) (MatchResult, MatchedToken) {
	for _, tok := range ts.regexTokens {
		loc := tok.Begin.FindIndex(input)
		if loc == nil {
			continue
		}

		beginPos := loc[0]
		beginLen := loc[1] - loc[0]

		if !tok.HasEnd {
			return Matched, MatchedToken{
				Type:               tok.Type,
				SubType:            tok.SubType,
				Length:             uint32(beginLen),
				ContentBeginOffset: noContent,
				ContentEndOffset:   noContent,
			}
		}

		searchFrom := beginPos + beginLen
		eloc := tok.End.FindIndex(input[searchFrom:])
		if eloc == nil {
			length := len(input)
			return EndNotMatched, MatchedToken{
				Type:               tok.Type,
				SubType:            tok.SubType,
				Length:             uint32(length),
				ContentBeginOffset: int32(beginPos + beginLen),
				ContentEndOffset:   int32(length),
			}
		}

		endLen := eloc[1] - eloc[0]
		length := searchFrom + eloc[1]
		return Matched, MatchedToken{
			Type:               tok.Type,
			SubType:            tok.SubType,
			Length:             uint32(length),
			ContentBeginOffset: int32(beginPos + beginLen),
			ContentEndOffset:   int32(length - endLen),
		}
	}

	return NoMatch, noContentMatch()
}

func (ts *TokenSet) matchCustom(input []byte) (MatchResult, MatchedToken) {
	for _, fn := range ts.customTokens {
		if result, mt := fn(input); result != NoMatch {
			return result, mt
		}
	}
	return NoMatch, noContentMatch()
}
