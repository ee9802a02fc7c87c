// Package alphabet implements the bidirectional mapping between the lowercase English letters
// and the fixed set of Egyptian hieroglyphs used as the intermediate alphabet.
package alphabet

import (
	"strings"
)

const (
	// Size is the number of letters (and symbols) in the alphabet
	Size = 26

	// MaxSymbol is the highest code point of the Egyptian Hieroglyphs block
	MaxSymbol uint32 = 0x1342F

	// Unknown is the rendering of a code point which is not part of the alphabet
	Unknown = '?'
)

var hieroglyphs = [Size]rune{
	'\U0001309D', // a
	'\U000130C0', // b
	'\U000133FF', // c
	'\U000130A7', // d
	'\U000131CB', // e
	'\U00013191', // f
	'\U000133BC', // g
	'\U0001339B', // h
	'\U000131CD', // i
	'\U00013193', // j
	'\U000133A1', // k
	'\U000130ED', // l
	'\U00013153', // m
	'\U00013216', // n
	'\U00013171', // o
	'\U000132AA', // p
	'\U0001320E', // q
	'\U0001308B', // r
	'\U000132F4', // s
	'\U000133CF', // t
	'\U00013172', // u
	'\U00013190', // v
	'\U00013173', // w
	'\U0001340D', // x
	'\U000131CC', // y
	'\U00013283', // z
}

var letters map[uint32]rune

func init() {
	letters = make(map[uint32]rune, Size)
	for i, h := range hieroglyphs {
		letters[uint32(h)] = rune('a' + i)
	}
}

// Symbol is the decoded form of a single code point.
// A symbol is either a known letter of the alphabet or unknown.
type Symbol struct {
	letter rune
	known  bool
}

// Known returns true if the symbol has been decoded into a letter
func (s Symbol) Known() bool {
	return s.known
}

// Letter returns the decoded letter, or Unknown if the symbol is not part of the alphabet
func (s Symbol) Letter() rune {
	if !s.known {
		return Unknown
	}
	return s.letter
}

func (s Symbol) String() string {
	return string(s.Letter())
}

// Lookup returns the hieroglyph code point of the letter.
// Upper case letters are folded to lower case.
func Lookup(letter rune) (uint32, bool) {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return uint32(hieroglyphs[letter-'a']), true
}

// Letter returns the English letter of the hieroglyph code point
func Letter(point uint32) (rune, bool) {
	l, ok := letters[point]
	return l, ok
}

// Encode converts the text into a sequence of hieroglyph code points.
// Any character which is not an English letter will be dropped.
func Encode(text string) []uint32 {
	points := make([]uint32, 0, len(text))
	for _, r := range strings.ToLower(text) {
		if r < 'a' || r > 'z' {
			continue
		}
		points = append(points, uint32(hieroglyphs[r-'a']))
	}
	return points
}

// Decode converts a sequence of code points back into symbols.
// Code points which are not part of the alphabet will be decoded as unknown symbols.
func Decode(points []uint32) []Symbol {
	symbols := make([]Symbol, len(points))
	for i, p := range points {
		if l, ok := letters[p]; ok {
			symbols[i] = Symbol{letter: l, known: true}
		}
	}
	return symbols
}

// String renders the symbols as text, using Unknown for the symbols which could not be decoded
func String(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteRune(s.Letter())
	}
	return sb.String()
}

// Hieroglyphs renders the code points as a hieroglyph string
func Hieroglyphs(points []uint32) string {
	var sb strings.Builder
	for _, p := range points {
		sb.WriteRune(rune(p))
	}
	return sb.String()
}
