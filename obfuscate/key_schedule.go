package obfuscate

import (
	"sort"

	"github.com/xitonix/anubis/hash"
)

// rotationBound keeps the rotation amount within [0, 16)
const rotationBound = 16

// KeySchedule holds everything derived from a key: the permutation order,
// the additive keystream and the rotation amount.
//
// A key schedule is immutable and safe for concurrent use.
type KeySchedule struct {
	order       []int
	keystream   []uint32
	rotation    uint
	fingerprint string
}

// NewKeySchedule derives the key schedule of the key.
// It returns ErrInvalidKey if the key is empty.
func NewKeySchedule(key string) (*KeySchedule, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}

	runes := []rune(key)
	keystream := make([]uint32, len(runes))
	var sum uint64
	for i, r := range runes {
		keystream[i] = uint32(r)
		sum += uint64(r)
	}

	return &KeySchedule{
		order:       rankOrder(keystream),
		keystream:   keystream,
		rotation:    uint(sum % rotationBound),
		fingerprint: hash.Fingerprint(key),
	}, nil
}

// Len returns the number of characters in the key
func (k *KeySchedule) Len() int {
	return len(k.keystream)
}

// Order returns a copy of the permutation order
func (k *KeySchedule) Order() []int {
	order := make([]int, len(k.order))
	copy(order, k.order)
	return order
}

// At returns the keystream value of the i-th data position.
// The keystream repeats every Len() positions.
func (k *KeySchedule) At(i int) uint32 {
	return k.keystream[i%len(k.keystream)]
}

// Rotation returns the circular rotation amount
func (k *KeySchedule) Rotation() uint {
	return k.rotation
}

// Fingerprint returns a short fingerprint of the key which is safe to log
func (k *KeySchedule) Fingerprint() string {
	return k.fingerprint
}

// rankOrder ranks every position by the place of its code point within the sorted set
// of distinct code points, then orders the positions by (rank, position).
func rankOrder(points []uint32) []int {
	distinct := make([]uint32, len(points))
	copy(distinct, points)
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	n := 0
	for i, p := range distinct {
		if i == 0 || p != distinct[n-1] {
			distinct[n] = p
			n++
		}
	}
	distinct = distinct[:n]

	ranks := make([]int, len(points))
	for i, p := range points {
		ranks[i] = sort.Search(len(distinct), func(j int) bool { return distinct[j] >= p })
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ra, rb := ranks[order[a]], ranks[order[b]]
		if ra != rb {
			return ra < rb
		}
		return order[a] < order[b]
	})
	return order
}
