// Package huffman implements a byte-oriented Huffman compressor and
// decompressor.  The alphabet is the 256 byte values plus a reserved
// end-of-stream symbol, so a decoded stream terminates on the symbol itself
// rather than on exhaustion of the (zero-padded) bit source.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
