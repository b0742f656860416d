package lexer

import "github.com/bits-and-blooms/bitset"

// ASCII identifier-character classification is precomputed into bitsets so
// the hot path of scanning identifiers is a single bit test instead of a
// chain of range comparisons for the overwhelmingly common ASCII case.
// Non-ASCII runes fall back to unicode.IsLetter/IsDigit.
var (
	asciiIdentStart = bitset.New(128)
	asciiIdentPart  = bitset.New(128)
)

func init() {
	for c := 'a'; c <= 'z'; c++ {
		asciiIdentStart.Set(uint(c))
		asciiIdentPart.Set(uint(c))
	}
	for c := 'A'; c <= 'Z'; c++ {
		asciiIdentStart.Set(uint(c))
		asciiIdentPart.Set(uint(c))
	}
	asciiIdentStart.Set(uint('_'))
	asciiIdentStart.Set(uint('$'))
	asciiIdentPart.Set(uint('_'))
	asciiIdentPart.Set(uint('$'))
	for c := '0'; c <= '9'; c++ {
		asciiIdentPart.Set(uint(c))
	}
}

func isASCIIIdentStart(r rune) bool {
	return r < 128 && asciiIdentStart.Test(uint(r))
}

func isASCIIIdentPart(r rune) bool {
	return r < 128 && asciiIdentPart.Test(uint(r))
}
