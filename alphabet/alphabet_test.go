package alphabet

import (
	"testing"

	"github.com/xitonix/anubis/assert"
)

func TestTableIsABijection(t *testing.T) {
	seen := make(map[rune]rune, Size)
	for i, h := range hieroglyphs {
		letter := rune('a' + i)
		if other, ok := seen[h]; ok {
			t.Errorf("'%c' and '%c' share the same symbol %U", other, letter, h)
		}
		seen[h] = letter
		if uint32(h) > MaxSymbol || h < 0x13000 {
			t.Errorf("symbol %U of '%c' is outside of the hieroglyphs block", h, letter)
		}
	}

	if len(letters) != Size {
		t.Errorf("expected %d entries in the reverse table, actual %d", Size, len(letters))
	}
}

func TestEveryLetterRoundTrips(t *testing.T) {
	for l := 'a'; l <= 'z'; l++ {
		point, ok := Lookup(l)
		if !ok {
			t.Errorf("no symbol found for '%c'", l)
			continue
		}
		symbols := Decode([]uint32{point})
		if len(symbols) != 1 || !symbols[0].Known() || symbols[0].Letter() != l {
			t.Errorf("expected '%c' to round trip, actual %v", l, symbols)
		}
		back, ok := Letter(point)
		if !ok || back != l {
			t.Errorf("expected reverse lookup of %U to be '%c', actual '%c'", point, l, back)
		}
	}
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		title    string
		input    string
		expected string
	}{
		{
			title:    "empty_input",
			input:    "",
			expected: "",
		},
		{
			title:    "lower_case_letters",
			input:    "cat",
			expected: "cat",
		},
		{
			title:    "upper_case_letters_are_folded",
			input:    "CaT",
			expected: "cat",
		},
		{
			title:    "non_letters_are_dropped",
			input:    "c4t! ",
			expected: "ct",
		},
		{
			title:    "non_latin_letters_are_dropped",
			input:    "ça va",
			expected: "ava",
		},
		{
			title:    "whitespace_only_input",
			input:    " \t\n",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			points := Encode(tc.input)
			if len(points) != len(tc.expected) {
				t.Errorf("expected %d code points, actual %d", len(tc.expected), len(points))
				return
			}
			actual := String(Decode(points))
			if actual != tc.expected {
				t.Errorf("expected '%s', actual '%s'", tc.expected, actual)
			}
		})
	}
}

func TestDecodeUnknownCodePoints(t *testing.T) {
	a, _ := Lookup('a')
	z, _ := Lookup('z')
	testCases := []struct {
		title    string
		input    []uint32
		expected string
		known    []bool
	}{
		{
			title:    "empty_input",
			input:    nil,
			expected: "",
		},
		{
			title:    "ascii_code_point_is_unknown",
			input:    []uint32{'a'},
			expected: "?",
			known:    []bool{false},
		},
		{
			title:    "unknown_code_points_do_not_affect_their_neighbours",
			input:    []uint32{a, MaxSymbol, z, 0},
			expected: "a?z?",
			known:    []bool{true, false, true, false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			symbols := Decode(tc.input)
			actual := String(symbols)
			if actual != tc.expected {
				t.Errorf("expected '%s', actual '%s'", tc.expected, actual)
			}
			for i, s := range symbols {
				if s.Known() != tc.known[i] {
					t.Errorf("expected symbol %d known state to be %v (%s)", i, tc.known[i], assert.Fields{"input": tc.input})
				}
			}
		})
	}
}

func TestLookupNonLetters(t *testing.T) {
	for _, r := range []rune{'0', ' ', '?', 'é', '\U0001309D'} {
		if _, ok := Lookup(r); ok {
			t.Errorf("'%c' was not supposed to have a symbol", r)
		}
	}
}
