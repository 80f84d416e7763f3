package dialect

import "github.com/orizon-lang/tokenize"

// Default returns a Registry pre-populated with the two built-in dialects:
// "orizon" (the teacher language's keyword/operator/comment/string surface)
// and "json" (a minimal JSON token surface). Both are expressed purely
// through the public tokenize.TokenSet API.
func Default() *Registry {
	r := NewRegistry()
	// Registration of a well-formed, hardcoded builtin dialect cannot fail;
	// a non-nil error here would be a bug in this file.
	mustRegister(r, "orizon", "1.0.0", buildOrizonV1)
	mustRegister(r, "json", "1.0.0", buildJSONV1)
	return r
}

func mustRegister(r *Registry, name, version string, build Builder) {
	if err := r.Register(name, version, build); err != nil {
		panic(err)
	}
}

var orizonKeywords = []string{
	"func", "let", "var", "const", "struct", "enum", "trait", "impl",
	"if", "else", "for", "while", "loop", "match", "return", "break",
	"continue", "async", "await", "actor", "spawn", "import", "export",
	"module", "pub", "mut", "as", "in", "where", "unsafe", "macro",
	"true", "false",
}

var orizonSymbols = []string{
	"+", "-", "*", "/", "%", "==", "!=", "<=", ">=", "<", ">",
	"&&", "||", "!", "=", "+=", "-=", "*=", "/=", "%=",
	"(", ")", "{", "}", "[", "]", ",", ".", ":", "::", "->", "=>",
	"?", "@", "#", "$", "~", "|", "&", "^",
}

func buildOrizonV1() *tokenize.TokenSet {
	ts := &tokenize.TokenSet{}

	for _, kw := range orizonKeywords {
		ts.AddStringToken(kw, tokenize.Keyword)
	}

	// Longer symbols must be registered so the trie's token-boundary
	// disambiguation can prefer them over their shorter prefixes (e.g. "=="
	// over "=" when followed by another "=").
	for _, sym := range orizonSymbols {
		ts.AddStringToken(sym, tokenize.Symbol)
	}

	ts.AddStringToken(";", tokenize.EndOfStatement)

	ts.AddRangedStringToken(`"`, `"`, `\`, tokenize.StringLiteral)
	ts.AddRangedStringToken("/*", "*/", "", tokenize.Comment)
	ts.AddRegexToken(`//[^\n]*`, tokenize.Comment)

	ts.AddRegexToken(`[0-9]+\.[0-9]+`, tokenize.NumberLiteral)
	ts.AddRegexToken(`[0-9]+`, tokenize.NumberLiteral)
	ts.AddRegexToken(`[a-zA-Z_][a-zA-Z0-9_]*`, tokenize.Identifier)

	return ts
}

func buildJSONV1() *tokenize.TokenSet {
	ts := &tokenize.TokenSet{}

	ts.AddStringToken("true", tokenize.Keyword)
	ts.AddStringToken("false", tokenize.Keyword)
	ts.AddStringToken("null", tokenize.Keyword)

	for _, sym := range []string{"{", "}", "[", "]", ":", ","} {
		ts.AddStringToken(sym, tokenize.Symbol)
	}

	ts.AddRangedStringToken(`"`, `"`, `\`, tokenize.StringLiteral)
	ts.AddRegexToken(`-?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`, tokenize.NumberLiteral)

	return ts
}
