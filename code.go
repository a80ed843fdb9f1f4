package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the *last* bit of the sequence, i.e. bits are appended at
	// the low end as the tree is descended.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each Symbol to its code word.  Symbols that never occur in
// the source have no code; a present code of Size 0 is legal and distinct
// from absence (it is the code of the lone leaf in a single-leaf tree).
type CodeTable struct {
	codes [NumSymbols]Code
	has   [NumSymbols]bool
}

// Lookup returns sym's code word, and whether sym has one at all.
func (ct *CodeTable) Lookup(sym Symbol) (Code, bool) {
	return ct.codes[sym], ct.has[sym]
}

// deriveCodes walks the tree depth-first from root, appending 0 for each
// left edge and 1 for each right edge, and records each leaf's accumulated
// path as its symbol's code.  Codes derived this way are prefix-free: a
// path ends at a leaf, so no code can continue through another.
func deriveCodes(root node) *CodeTable {
	var ct CodeTable
	derive(root, Code{}, &ct)
	return &ct
}

func derive(n node, path Code, ct *CodeTable) {
	switch v := n.(type) {
	case leaf:
		ct.codes[v.sym] = path
		ct.has[v.sym] = true
	case *branch:
		assert.Assertf(path.Size < 64, "huffman: code deeper than 64 bits")
		derive(v.left, MakeCode(path.Size+1, path.Bits<<1), ct)
		derive(v.right, MakeCode(path.Size+1, path.Bits<<1|1), ct)
	}
}
