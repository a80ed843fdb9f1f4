package huffman

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// EncodeFile compresses inputPath into outputPath: the serialized frequency
// table followed by the Huffman-coded payload.  The input is read twice,
// once to count byte frequencies and once to encode.  It returns the number
// of payload bits written after the header.
//
// On failure the partially written output is not valid and should be
// discarded by the caller.
func EncodeFile(inputPath, outputPath string) (bits int64, err error) {
	t, err := countFile(inputPath)
	if err != nil {
		return 0, err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, errors.Wrap(err, "huffman: open input")
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, errors.Wrap(err, "huffman: create output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "huffman: close output")
		}
	}()

	w := bufio.NewWriter(out)
	if _, err := t.WriteTo(w); err != nil {
		return 0, err
	}

	var e Encoder
	e.Init(t)
	if bits, err = e.Encode(w, bufio.NewReader(in)); err != nil {
		return bits, err
	}

	if err := w.Flush(); err != nil {
		return bits, errors.Wrap(err, "huffman: flush output")
	}
	return bits, nil
}

// DecodeFile reconstructs the original bytes of a file written by EncodeFile
// into outputPath.  It returns the number of bytes written.  An input whose
// header does not parse as a frequency table yields an error wrapping
// ErrHeader; a payload missing its end-of-stream code yields one wrapping
// ErrTruncated.
func DecodeFile(inputPath, outputPath string) (written int64, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, errors.Wrap(err, "huffman: open input")
	}
	defer in.Close()

	r := bufio.NewReader(in)
	t, err := ReadFrequencyTable(r)
	if err != nil {
		return 0, err
	}

	var d Decoder
	if err := d.Init(t); err != nil {
		return 0, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, errors.Wrap(err, "huffman: create output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "huffman: close output")
		}
	}()

	return d.Decode(out, r)
}

func countFile(path string) (*FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "huffman: open input")
	}
	defer f.Close()
	return CountFrequencies(bufio.NewReader(f))
}
