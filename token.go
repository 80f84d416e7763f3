package tokenize

import "fmt"

// noContent is the sentinel used for Token/MatchedToken content offsets
// that do not refer to a ranged match.
const noContent int32 = -1

// Token is a classified span of source bytes plus an optional inner
// "content" subspan (the bytes strictly between a ranged matcher's begin
// and end delimiters). Tokens are owned by the TokenizedSource pool that
// produced them and must not be used after that TokenizedSource is Reset.
type Token struct {
	Type               TokenType
	SubType            int32
	Location           SourceLocation
	ContentBeginOffset int32
	ContentLength      int32
	Source             *Resource
}

// ToString returns the token's full source text.
func (t *Token) ToString() string {
	return t.Source.GetStringAtLocation(t.Location)
}

// GetContentString returns the token's inner content, or its full text if
// the token is not a ranged match. Returns "" if the token's location no
// longer refers to its own source (e.g. Source was swapped out).
func (t *Token) GetContentString() string {
	if t.Location.ResourceID != t.Source.GetResourceID() {
		return ""
	}
	if t.ContentBeginOffset == noContent {
		return t.ToString()
	}

	contents := t.Source.GetContents()
	begin := t.ContentBeginOffset
	end := begin + t.ContentLength
	if begin < 0 || end < begin || int(end) > len(contents) {
		return ""
	}
	return string(contents[begin:end])
}

// maxSourceExceptionMessage mirrors the original implementation's
// vsnprintf(buf, 1024, ...) cap on formatted exception messages.
const maxSourceExceptionMessage = 1024

// SourceException is the error raised by TokenizedSource.Init when the
// input cannot be fully tokenized. It carries the Resource being tokenized
// and the SourceLocation of the failure.
type SourceException struct {
	Source   *Resource
	Location SourceLocation
	Message  string
}

// NewSourceException builds a SourceException with a plain message.
func NewSourceException(src *Resource, loc SourceLocation, message string) *SourceException {
	return &SourceException{Source: src, Location: loc, Message: message}
}

// NewSourceExceptionf builds a SourceException with a printf-style message,
// truncated to maxSourceExceptionMessage bytes.
func NewSourceExceptionf(src *Resource, loc SourceLocation, format string, args ...interface{}) *SourceException {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxSourceExceptionMessage {
		msg = msg[:maxSourceExceptionMessage]
	}
	return &SourceException{Source: src, Location: loc, Message: msg}
}

// Error implements the error interface.
func (e *SourceException) Error() string {
	if e.Source == nil || !e.Location.Valid() {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", e.Location.StartLine+1, e.Location.StartColumn+1, e.Message)
}

// GetSource returns the Resource the exception was raised against.
func (e *SourceException) GetSource() *Resource { return e.Source }

// GetLocation returns the SourceLocation of the failure.
func (e *SourceException) GetLocation() SourceLocation { return e.Location }
