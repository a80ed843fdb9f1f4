package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: MakeCode(0, 0), expect: `""`},
		{code: MakeCode(1, 0), expect: `"0"`},
		{code: MakeCode(1, 1), expect: `"1"`},
		{code: MakeCode(3, 0b101), expect: `"101"`},
		{code: MakeCode(4, 0b0011), expect: `"0011"`},
	}
	for _, row := range testData {
		if actual := row.code.String(); actual != row.expect {
			t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
		}
	}
}

// isProperPrefix reports whether a's bit sequence is a proper prefix of b's.
func isProperPrefix(a, b Code) bool {
	if a.Size >= b.Size {
		return false
	}
	return b.Bits>>(b.Size-a.Size) == a.Bits
}

func TestDeriveCodes_PrefixFree(t *testing.T) {
	ct := deriveCodes(buildTree(mustCount(t, "abracadabra")))

	type entry struct {
		sym Symbol
		hc  Code
	}
	var present []entry
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if hc, ok := ct.Lookup(sym); ok {
			present = append(present, entry{sym, hc})
		}
	}
	if len(present) != 6 {
		t.Fatalf("expected 6 coded symbols, got %d", len(present))
	}

	for _, a := range present {
		for _, b := range present {
			if a.sym == b.sym {
				continue
			}
			if a.hc == b.hc {
				t.Errorf("symbols %d and %d share code %s", a.sym, b.sym, a.hc)
			}
			if isProperPrefix(a.hc, b.hc) {
				t.Errorf("code %s of symbol %d is a prefix of code %s of symbol %d", a.hc, a.sym, b.hc, b.sym)
			}
		}
	}
}
