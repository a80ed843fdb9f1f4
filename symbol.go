package huffman

// Symbol represents a symbol in the code's alphabet.  Symbols 0 through 255
// are literal byte values; EOS marks the end of the encoded stream.
type Symbol int32

// EOS is the end-of-stream symbol.  It always has a frequency of exactly 1,
// so it always owns a leaf of the code tree and the decoder always has a
// termination marker to find, even for empty input.
const EOS = Symbol(256)

// NumSymbols is the size of the alphabet: 256 byte values plus EOS.
const NumSymbols = 257
