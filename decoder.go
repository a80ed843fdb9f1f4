package huffman

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrTruncated reports that an encoded payload ended before its end-of-stream
// code word was seen.  Test for it with errors.Is.
var ErrTruncated = errors.New("huffman: truncated bitstream")

// Decoder holds the code tree for one Huffman code and walks encoded bits
// back to bytes.
type Decoder struct {
	root node
}

// Init initializes this Decoder.  The argument is the frequency table read
// from the stream header; Init rebuilds the same tree the Encoder derived
// its code words from, since both sides run the identical deterministic
// construction over identical counts.
func (d *Decoder) Init(t *FrequencyTable) error {
	if t[EOS] != 1 {
		return errors.Wrapf(ErrHeader, "end-of-stream count %d, want 1", t[EOS])
	}
	d.root = buildTree(t)
	return nil
}

// Decode reads src one bit at a time, descending the tree left on 0 and
// right on 1.  Each leaf reached emits its byte and resets the walk to the
// root; reaching the end-of-stream leaf terminates the decode, so the zero
// bits padding the final byte of the payload are never interpreted as data.
// It returns the number of bytes written to dst.
//
// A src that runs out of bits mid-walk was not terminated by an
// end-of-stream code word; that yields an error wrapping ErrTruncated.
func (d Decoder) Decode(dst io.Writer, src io.Reader) (written int64, err error) {
	br := bitio.NewReader(src)
	out := bufio.NewWriter(dst)

	cur := d.root
	for {
		if l, ok := cur.(leaf); ok {
			if l.sym == EOS {
				break
			}
			if err := out.WriteByte(byte(l.sym)); err != nil {
				return written, errors.Wrap(err, "huffman: write output")
			}
			written++
			cur = d.root
			continue
		}

		bit, err := br.ReadBool()
		if err == io.EOF {
			return written, errors.Wrap(ErrTruncated, "no end-of-stream code")
		}
		if err != nil {
			return written, errors.Wrap(err, "huffman: read input")
		}

		b := cur.(*branch)
		if bit {
			cur = b.right
		} else {
			cur = b.left
		}
	}

	if err := out.Flush(); err != nil {
		return written, errors.Wrap(err, "huffman: write output")
	}
	return written, nil
}
