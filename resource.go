package tokenize

// lineOffset records the half-open byte range of one line, terminator
// included.
type lineOffset struct {
	begin uint32
	end   uint32
}

// Resource owns an immutable copy of a byte source plus its caller-assigned
// id and a precomputed line index. Once constructed a Resource never
// changes; any number of readers may use it concurrently.
type Resource struct {
	resourceID uint32
	contents   []byte
	lines      []lineOffset
}

// NewResource copies contents and builds the line index. The caller keeps
// ownership of the original slice; Resource never aliases it.
func NewResource(contents []byte, resourceID uint32) *Resource {
	owned := make([]byte, len(contents))
	copy(owned, contents)

	r := &Resource{
		resourceID: resourceID,
		contents:   owned,
	}
	r.buildLineOffsets()
	return r
}

func (r *Resource) buildLineOffsets() {
	length := uint32(len(r.contents))
	lastLineBegin := uint32(0)

	var i uint32
	for i < length {
		termLen := uint32(0)
		switch {
		case r.contents[i] == '\n':
			termLen = 1
		case r.contents[i] == '\r' && i+1 < length && r.contents[i+1] == '\n':
			termLen = 2
		}

		if termLen > 0 {
			end := i + termLen
			r.lines = append(r.lines, lineOffset{begin: lastLineBegin, end: end})
			lastLineBegin = end
			i = end
			continue
		}

		i++
	}

	if length != lastLineBegin {
		r.lines = append(r.lines, lineOffset{begin: lastLineBegin, end: length})
	}
}

// GetResourceID returns the caller-assigned resource tag.
func (r *Resource) GetResourceID() uint32 { return r.resourceID }

// GetContents returns the owned byte buffer. Callers must not mutate it.
func (r *Resource) GetContents() []byte { return r.contents }

// GetLength returns the byte length of the resource's contents.
func (r *Resource) GetLength() uint32 { return uint32(len(r.contents)) }

// GetPointerToLocation returns the byte slice starting at loc's start
// position, or nil if loc refers to a different resource or starts past
// the end of this one.
func (r *Resource) GetPointerToLocation(loc SourceLocation) []byte {
	if loc.ResourceID != r.resourceID {
		return nil
	}
	if loc.StartBufferPosition >= r.GetLength() {
		return nil
	}
	return r.contents[loc.StartBufferPosition:]
}

// GetStringAtLocation returns the substring [StartBufferPosition,
// EndBufferPosition) of loc, or "" if loc is out of bounds or refers to a
// different resource.
func (r *Resource) GetStringAtLocation(loc SourceLocation) string {
	length := r.GetLength()
	if loc.ResourceID != r.resourceID {
		return ""
	}
	if loc.StartBufferPosition > length || loc.EndBufferPosition > length {
		return ""
	}
	if loc.EndBufferPosition < loc.StartBufferPosition {
		return ""
	}
	return string(r.contents[loc.StartBufferPosition:loc.EndBufferPosition])
}

// GetLine returns the text of the index'th line, terminator included, or
// "" if index is out of range.
func (r *Resource) GetLine(index uint32) string {
	if index >= uint32(len(r.lines)) {
		return ""
	}
	ln := r.lines[index]
	return string(r.contents[ln.begin:ln.end])
}

// CalculateSourceLocationFromRange computes the SourceLocation spanning the
// half-open byte range [beginOffset, endOffset). Invalid inputs (beginOffset
// or endOffset past the end of the resource, or endOffset < beginOffset)
// yield an all-zero location with ResourceID == InvalidResourceID.
func (r *Resource) CalculateSourceLocationFromRange(beginOffset, endOffset uint32) SourceLocation {
	length := r.GetLength()
	if beginOffset > length || endOffset > length || endOffset < beginOffset {
		return invalidSourceLocation()
	}

	loc := SourceLocation{
		ResourceID:          r.resourceID,
		StartBufferPosition: beginOffset,
		EndBufferPosition:   endOffset,
	}

	for loc.StartLine < uint32(len(r.lines)) {
		ln := r.lines[loc.StartLine]
		if beginOffset >= ln.begin && beginOffset < ln.end {
			loc.StartColumn = beginOffset - ln.begin
			break
		}
		loc.StartLine++
	}

	loc.EndLine = loc.StartLine

	if beginOffset == endOffset {
		loc.EndColumn = loc.StartColumn
		return loc
	}

	for loc.EndLine < uint32(len(r.lines)) {
		ln := r.lines[loc.EndLine]
		if endOffset >= ln.begin && endOffset <= ln.end {
			loc.EndColumn = endOffset - ln.begin
			break
		}
		loc.EndLine++
	}

	return loc
}

// Tokenize drives a fresh TokenizedSource over this resource using
// tokenSet. On failure the partially built TokenizedSource is discarded and
// the error is returned.
func (r *Resource) Tokenize(tokenSet *TokenSet) (*TokenizedSource, error) {
	tok := &TokenizedSource{}
	if err := tok.Init(r, tokenSet); err != nil {
		return nil, err
	}
	return tok, nil
}
