package obfuscate

import (
	"fmt"

	"github.com/xitonix/anubis/alphabet"
	"github.com/xitonix/anubis/hexfield"
)

// Cipher encrypts and decrypts text using the key schedule of a single key.
// A Cipher has no mutable state, so it's safe to use it from multiple go routines.
type Cipher struct {
	schedule *KeySchedule
}

// NewCipher creates a new cipher for the key
func NewCipher(key string) (*Cipher, error) {
	schedule, err := NewKeySchedule(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: schedule}, nil
}

// Schedule returns the key schedule of the cipher
func (c *Cipher) Schedule() *KeySchedule {
	return c.schedule
}

// Encrypt encrypts the English letters of the text into a hex string of 5 digit fields.
// Everything but the letters will be dropped, and the letters are case insensitive.
func (c *Cipher) Encrypt(text string) string {
	points := alphabet.Encode(text)
	points = permute(points, c.schedule.order)
	points = addMod(points, c.schedule.At, Bound)
	for i, p := range points {
		points[i] = rotateRight(p, c.schedule.rotation)
	}
	return hexfield.Encode(points)
}

// Decrypt decrypts the ciphertext back into lower case text.
// Positions which cannot be decoded into a letter are rendered as '?'.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	symbols, err := c.DecryptSymbols(ciphertext)
	if err != nil {
		return "", err
	}
	return alphabet.String(symbols), nil
}

// DecryptSymbols decrypts the ciphertext into one symbol per field.
// The result lets the caller tell the decoded letters apart from the unknown positions.
func (c *Cipher) DecryptSymbols(ciphertext string) ([]alphabet.Symbol, error) {
	fields, err := hexfield.Decode(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	valid := make([]bool, len(fields))
	points := make([]uint32, len(fields))
	for i, f := range fields {
		if !fitsField(f) {
			continue
		}
		valid[i] = true
		points[i] = rotateLeft(f, c.schedule.rotation)
	}
	points = subMod(points, c.schedule.At, Bound)
	points = unpermute(points, c.schedule.order)
	valid = unpermute(valid, c.schedule.order)

	symbols := alphabet.Decode(points)
	for i, ok := range valid {
		if !ok {
			symbols[i] = alphabet.Symbol{}
		}
	}
	return symbols, nil
}

// Encrypt encrypts the text using the key.
// It returns ErrInvalidKey if the key is empty.
func Encrypt(text, key string) (string, error) {
	c, err := NewCipher(key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(text), nil
}

// Decrypt decrypts the ciphertext using the same key which has been used to encrypt it.
//
// It returns ErrInvalidKey if the key is empty and ErrMalformedCiphertext if the
// ciphertext is not a sequence of 5 digit hex fields.
func Decrypt(ciphertext, key string) (string, error) {
	c, err := NewCipher(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ciphertext)
}
