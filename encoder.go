package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Encoder holds the code table for one Huffman code and streams input bytes
// through it.
type Encoder struct {
	codes *CodeTable
}

// Init initializes this Encoder.  The argument is the frequency table of the
// input that is about to be encoded; Init builds the code tree from it and
// derives the code word for every symbol with a nonzero count.
func (e *Encoder) Init(t *FrequencyTable) {
	e.codes = deriveCodes(buildTree(t))
}

// Encode reads src to exhaustion, writes each byte's code word to dst, then
// the end-of-stream code word, and finally pads the last partial byte with
// zero bits.  It returns the number of payload bits emitted, padding
// excluded.
//
// Every byte of src must have a code word; a missing one means the Encoder
// was initialized from a table that does not cover this input, which is a
// logic defect, not a runtime condition.
func (e Encoder) Encode(dst io.Writer, src io.Reader) (bits int64, err error) {
	bw := bitio.NewWriter(dst)
	br := bitio.NewReader(src)
	for {
		u, err := br.ReadBits(8)
		if err == io.EOF {
			break
		}
		if err != nil {
			return bits, errors.Wrap(err, "huffman: read input")
		}

		hc, ok := e.codes.Lookup(Symbol(u))
		assert.Assertf(ok, "huffman: no code for byte %#02x", u)
		if err := writeCode(bw, hc); err != nil {
			return bits, err
		}
		bits += int64(hc.Size)
	}

	eos, ok := e.codes.Lookup(EOS)
	assert.Assertf(ok, "huffman: no code for end-of-stream symbol")
	if err := writeCode(bw, eos); err != nil {
		return bits, err
	}
	bits += int64(eos.Size)

	if err := bw.Close(); err != nil {
		return bits, errors.Wrap(err, "huffman: flush output")
	}
	return bits, nil
}

func writeCode(bw *bitio.Writer, hc Code) error {
	if hc.Size == 0 {
		return nil
	}
	if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
		return errors.Wrap(err, "huffman: write output")
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's code
// table to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		hc, ok := e.codes.Lookup(sym)
		if !ok {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", sym)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", sym, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
