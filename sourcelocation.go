package tokenize

import "fmt"

// InvalidResourceID marks a SourceLocation that does not refer to any
// real Resource.
const InvalidResourceID uint32 = 1<<32 - 1

// SourceLocation identifies a half-open byte range [StartBufferPosition,
// EndBufferPosition) inside a single Resource, plus its 0-based line/column
// coordinates.
type SourceLocation struct {
	ResourceID          uint32
	StartBufferPosition uint32
	EndBufferPosition   uint32
	StartLine           uint32
	EndLine             uint32
	StartColumn         uint32
	EndColumn           uint32
}

// Valid reports whether the location refers to a real resource.
func (l SourceLocation) Valid() bool {
	return l.ResourceID != InvalidResourceID
}

func invalidSourceLocation() SourceLocation {
	return SourceLocation{ResourceID: InvalidResourceID}
}

// TokenType is the closed classification set a MatchedToken or Token can
// carry.
type TokenType int

const (
	Keyword TokenType = iota
	Symbol
	Identifier
	StringLiteral
	NumberLiteral
	Comment
	Macro
	EndOfStatement
	EndOfInput
)

var tokenTypeNames = map[TokenType]string{
	Keyword:        "Keyword",
	Symbol:         "Symbol",
	Identifier:     "Identifier",
	StringLiteral:  "StringLiteral",
	NumberLiteral:  "NumberLiteral",
	Comment:        "Comment",
	Macro:          "Macro",
	EndOfStatement: "EndOfStatement",
	EndOfInput:     "EndOfInput",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// MatchResult is the three-valued outcome of a TokenSet.Match attempt.
type MatchResult int

const (
	NoMatch MatchResult = iota
	Matched
	EndNotMatched
)

func (r MatchResult) String() string {
	switch r {
	case NoMatch:
		return "NoMatch"
	case Matched:
		return "Matched"
	case EndNotMatched:
		return "EndNotMatched"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(r))
	}
}
