package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func allByteValues() string {
	var sb strings.Builder
	for i := 0; i < 256; i++ {
		sb.WriteByte(byte(i))
	}
	return sb.String()
}

func TestDecoder_RoundTrip(t *testing.T) {
	type testRow struct {
		name  string
		input string
	}

	testData := [...]testRow{
		{name: "empty", input: ""},
		{name: "one byte", input: "x"},
		{name: "abracadabra", input: "abracadabra"},
		{name: "single repeated byte", input: strings.Repeat("A", 10000)},
		{name: "all byte values", input: allByteValues()},
		{name: "binary", input: "\x00\x01\x02\xfe\xff\x00\x00\x7f"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			ft, payload, _ := encodeString(t, row.input)

			var d Decoder
			if err := d.Init(ft); err != nil {
				t.Fatalf("Init failed: %v", err)
			}

			var out bytes.Buffer
			written, err := d.Decode(&out, bytes.NewReader(payload))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if written != int64(len(row.input)) {
				t.Errorf("wrong byte count:\n\texpect: %d\n\tactual: %d", len(row.input), written)
			}
			if out.String() != row.input {
				t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", row.input, out.String())
			}
		})
	}
}

func TestDecoder_Init_BadSentinel(t *testing.T) {
	var ft FrequencyTable
	ft['a'] = 3

	var d Decoder
	err := d.Init(&ft)
	if !errors.Is(err, ErrHeader) {
		t.Errorf("expected ErrHeader, got %v", err)
	}
}

func TestDecoder_Truncated(t *testing.T) {
	ft, payload, _ := encodeString(t, "abracadabra")

	var d Decoder
	if err := d.Init(ft); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	type testRow struct {
		name string
		keep int
	}

	testData := [...]testRow{
		{name: "no payload", keep: 0},
		{name: "one byte", keep: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := d.Decode(&out, bytes.NewReader(payload[:row.keep]))
			if !errors.Is(err, ErrTruncated) {
				t.Errorf("expected ErrTruncated, got %v", err)
			}
		})
	}
}
