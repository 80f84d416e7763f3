package tokenize

// trieNode is a byte-indexed prefix-tree node used internally by TokenSet
// to find the longest registered literal matcher whose key is a prefix of
// the remaining input and whose end sits at a valid token boundary.
//
// Children are addressed by a direct 256-entry table rather than the
// original's 255-entry index-plus-vector scheme; the two are behaviorally
// equivalent (exact byte lookup, no insertion-order dependence).
type trieNode struct {
	value         byte
	children      [256]*trieNode
	strTokenIndex int
}

func newTrieNode(value byte) *trieNode {
	return &trieNode{value: value, strTokenIndex: -1}
}

// insert registers key, terminating at key's last byte (treating a
// whitespace byte inside key the same as end-of-string, so keys may carry
// trailing whitespace without it affecting matching). A duplicate
// registration at an already-terminal node is silently ignored.
func (n *trieNode) insert(key []byte, tokenIdx int) {
	if len(key) == 0 {
		return
	}

	cur := key[0]
	isFinal := len(key) == 1 || isASCIIWhitespace(key[1])

	child := n.children[cur]
	if child == nil {
		child = newTrieNode(cur)
		n.children[cur] = child
	}

	if isFinal {
		if child.strTokenIndex == -1 {
			child.strTokenIndex = tokenIdx
		}
		return
	}

	child.insert(key[1:], tokenIdx)
}

// findMatch descends buf starting at pos, returning the index of the
// longest matching literal token, or -1 if none matches.
func (n *trieNode) findMatch(buf []byte, pos int) int {
	if pos >= len(buf) {
		return -1
	}

	cur := buf[pos]
	child := n.children[cur]
	if child == nil {
		return -1
	}

	if atEndOrWhitespace(buf, pos+1) {
		return child.strTokenIndex
	}

	if child.strTokenIndex != -1 {
		next := buf[pos+1]

		curWord := isWordByte(cur)
		nextWord := isWordByte(next)
		if curWord != nextWord {
			return child.strTokenIndex
		}

		curNum := isASCIIDigit(cur)
		nextNum := isASCIIDigit(next)
		if curNum != nextNum {
			return child.strTokenIndex
		}

		if !curWord && !nextWord && !curNum && !nextNum {
			if child.hasNoChildren() {
				return child.strTokenIndex
			}

			if deeper := child.findMatch(buf, pos+1); deeper != -1 {
				return deeper
			}
			return child.strTokenIndex
		}
	}

	return child.findMatch(buf, pos+1)
}

func (n *trieNode) hasNoChildren() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}
