package huffman

import (
	"encoding/binary"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// headerMagic identifies the start of an encoded stream.  The trailing digit
// is the format version; it changes whenever the header layout does.
var headerMagic = [4]byte{'H', 'U', 'F', '1'}

// ErrHeader reports that an input does not begin with a valid serialized
// frequency table.  It distinguishes "not a compressed stream" from an I/O
// failure; test for it with errors.Is.
var ErrHeader = errors.New("huffman: invalid header")

// FrequencyTable maps each Symbol to its number of occurrences.  Counts
// saturate at the maximum uint32 instead of wrapping.
//
// The entry for EOS is always exactly 1, so the end-of-stream symbol is
// guaranteed a leaf in the code tree no matter what the input looks like.
type FrequencyTable [NumSymbols]uint32

// CountFrequencies reads r to exhaustion and returns the table of how often
// each byte value occurred, with the EOS entry set to 1.  An empty input
// yields a table whose only nonzero entry is EOS.
func CountFrequencies(r io.Reader) (*FrequencyTable, error) {
	var t FrequencyTable
	br := bitio.NewReader(r)
	for {
		u, err := br.ReadBits(8)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "huffman: count frequencies")
		}
		t.add(Symbol(u))
	}
	t[EOS] = 1
	return &t, nil
}

func (t *FrequencyTable) add(sym Symbol) {
	if c := t[sym] + 1; c != 0 {
		t[sym] = c
	}
}

// Total is the number of input bytes the table was built from, i.e. the sum
// of the counts for symbols 0 through 255.
func (t *FrequencyTable) Total() uint64 {
	var sum uint64
	for sym := Symbol(0); sym < EOS; sym++ {
		sum += uint64(t[sym])
	}
	return sum
}

// WriteTo serializes the table as a stream header: the 4 magic bytes
// followed by all 257 counts as big-endian uint32 values.
func (t *FrequencyTable) WriteTo(w io.Writer) (int64, error) {
	if _, err := w.Write(headerMagic[:]); err != nil {
		return 0, errors.Wrap(err, "huffman: write header")
	}
	if err := binary.Write(w, binary.BigEndian, t); err != nil {
		return int64(len(headerMagic)), errors.Wrap(err, "huffman: write header")
	}
	return int64(len(headerMagic)) + 4*NumSymbols, nil
}

var _ io.WriterTo = (*FrequencyTable)(nil)

// ReadFrequencyTable parses a stream header previously written by WriteTo.
// A missing or mismatched magic, a truncated table, or an EOS count other
// than 1 yields an error wrapping ErrHeader; anything else is an I/O error.
func ReadFrequencyTable(r io.Reader) (*FrequencyTable, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrHeader, "short magic")
		}
		return nil, errors.Wrap(err, "huffman: read header")
	}
	if magic != headerMagic {
		return nil, errors.Wrapf(ErrHeader, "bad magic %q", magic[:])
	}

	var t FrequencyTable
	if err := binary.Read(r, binary.BigEndian, &t); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrHeader, "truncated table")
		}
		return nil, errors.Wrap(err, "huffman: read header")
	}
	if t[EOS] != 1 {
		return nil, errors.Wrapf(ErrHeader, "end-of-stream count %d, want 1", t[EOS])
	}
	return &t, nil
}
