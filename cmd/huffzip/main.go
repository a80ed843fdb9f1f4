package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	huffman "github.com/umairair/huffmanator"
)

const usage = `usage: huffzip encode <input> <output>
       huffzip decode <input> <output>`

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) != 3 {
		flag.Usage()
		os.Exit(2)
	}

	p := message.NewPrinter(language.English) // For commas between thousands

	var err error
	switch args[0] {
	case "encode":
		var bits int64
		if bits, err = huffman.EncodeFile(args[1], args[2]); err == nil {
			p.Printf("encoded %s: %d payload bits (%d bytes)\n", args[1], bits, (bits+7)/8)
		}
	case "decode":
		var n int64
		if n, err = huffman.DecodeFile(args[1], args[2]); err == nil {
			p.Printf("decoded %s: %d bytes\n", args[1], n)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
