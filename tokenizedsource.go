package tokenize

// tokenPoolSize mirrors the original implementation's fixed-size Token
// arena chunk.
const tokenPoolSize = 512

// tokenizerState tracks the TokenizedSource driver's progress through init.
type tokenizerState int

const (
	stateIdle tokenizerState = iota
	stateScanning
	stateTerminated
)

// TokenizedSource drives a TokenSet over a Resource, emitting a Token for
// every matcher hit until EndOfInput. Token storage is owned by an internal
// bump-allocated pool; Reset releases it and invalidates every Token handed
// out by this TokenizedSource.
type TokenizedSource struct {
	src      *Resource
	tokenSet *TokenSet
	tokens   []*Token
	pool     [][]Token
	state    tokenizerState
}

// GetSource returns the bound Resource, or nil if none is bound.
func (ts *TokenizedSource) GetSource() *Resource { return ts.src }

// GetTokenSet returns the bound TokenSet, or nil if none is bound.
func (ts *TokenizedSource) GetTokenSet() *TokenSet { return ts.tokenSet }

// GetTokens returns the ordered token list, terminated by exactly one
// EndOfInput token once Init has completed successfully.
func (ts *TokenizedSource) GetTokens() []*Token { return ts.tokens }

// Init binds src and tokenSet and sweeps the input, appending one Token per
// matcher hit, until EndOfInput is emitted. If this TokenizedSource was
// already bound to a source, it is reset first. On error the token list is
// left in its partial state and the caller should discard this
// TokenizedSource (Resource.Tokenize does exactly that).
func (ts *TokenizedSource) Init(src *Resource, tokenSet *TokenSet) error {
	if ts.src != nil {
		ts.Reset()
	}

	ts.src = src
	ts.tokenSet = tokenSet
	ts.state = stateScanning

	contents := src.GetContents()
	cursor := 0

	for {
		for cursor < len(contents) && isASCIIWhitespace(contents[cursor]) {
			cursor++
		}

		beginOffset := uint32(cursor)

		if cursor >= len(contents) {
			ts.emitEndOfInput()
			return nil
		}

		result, mt := tokenSet.Match(contents[cursor:])

		switch result {
		case NoMatch:
			loc := src.CalculateSourceLocationFromRange(beginOffset, beginOffset)
			return NewSourceException(src, loc, "Invalid Token")

		case EndNotMatched:
			loc := src.CalculateSourceLocationFromRange(
				beginOffset+mt.Offset,
				beginOffset+mt.Offset+mt.Length,
			)
			return NewSourceException(src, loc, "Ranged token not terminated")

		default: // Matched
			endOffset := beginOffset + mt.Length
			tok := ts.newToken()
			tok.Location = src.CalculateSourceLocationFromRange(beginOffset, endOffset)
			tok.Source = src
			tok.Type = mt.Type
			tok.SubType = mt.SubType

			if mt.ContentBeginOffset == noContent {
				tok.ContentBeginOffset = noContent
				tok.ContentLength = noContent
			} else {
				tok.ContentBeginOffset = int32(beginOffset) + mt.ContentBeginOffset
				tok.ContentLength = mt.ContentEndOffset - mt.ContentBeginOffset
			}

			ts.tokens = append(ts.tokens, tok)
			cursor = int(endOffset)
		}
	}
}

func (ts *TokenizedSource) emitEndOfInput() {
	eoi := ts.newToken()
	eoi.Location = SourceLocation{ResourceID: ts.src.GetResourceID()}
	eoi.Source = ts.src
	eoi.SubType = -1
	eoi.ContentBeginOffset = noContent
	eoi.ContentLength = noContent
	eoi.Type = EndOfInput
	ts.tokens = append(ts.tokens, eoi)
	ts.state = stateTerminated
}

// Reset drops all tokens and releases the pool, clearing the source
// binding. Every Token previously returned by GetTokens is invalidated.
func (ts *TokenizedSource) Reset() {
	if ts.src == nil {
		return
	}
	ts.src = nil
	ts.tokenSet = nil
	ts.tokens = nil
	ts.pool = nil
	ts.state = stateIdle
}

// newToken hands out the next Token slot from the pool, growing it by a
// fresh tokenPoolSize chunk when the current chunk is full.
func (ts *TokenizedSource) newToken() *Token {
	if len(ts.pool) == 0 || isPoolChunkFull(ts.pool[len(ts.pool)-1]) {
		ts.pool = append(ts.pool, make([]Token, 0, tokenPoolSize))
	}
	chunk := &ts.pool[len(ts.pool)-1]
	*chunk = (*chunk)[:len(*chunk)+1]
	return &(*chunk)[len(*chunk)-1]
}

func isPoolChunkFull(chunk []Token) bool {
	return len(chunk) == cap(chunk)
}
