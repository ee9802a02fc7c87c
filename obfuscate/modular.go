package obfuscate

import "github.com/xitonix/anubis/alphabet"

// Bound is the modulus of the additive transform: one past the highest hieroglyph code point
const Bound = alphabet.MaxSymbol + 1

// addMod adds the cyclic keystream to every value modulo bound
func addMod(seq []uint32, keystream func(int) uint32, bound uint32) []uint32 {
	out := make([]uint32, len(seq))
	b := uint64(bound)
	for i, v := range seq {
		out[i] = uint32((uint64(v)%b + uint64(keystream(i))%b) % b)
	}
	return out
}

// subMod subtracts the cyclic keystream from every value modulo bound.
// The results are always within [0, bound).
func subMod(seq []uint32, keystream func(int) uint32, bound uint32) []uint32 {
	out := make([]uint32, len(seq))
	b := uint64(bound)
	for i, v := range seq {
		out[i] = uint32((uint64(v)%b + b - uint64(keystream(i))%b) % b)
	}
	return out
}
