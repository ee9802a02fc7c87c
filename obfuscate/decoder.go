package obfuscate

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Decoder is the type that decrypts the lines of an io.Reader into one or more io.Writer outputs
type Decoder struct {
	input  io.Reader
	output io.Writer
	cipher *Cipher
}

// NewDecoder creates a new Decoder object
func NewDecoder(cipher *Cipher, input io.Reader, outputs ...io.Writer) *Decoder {
	return &Decoder{
		input:  input,
		output: io.MultiWriter(outputs...),
		cipher: cipher,
	}
}

// Decode decrypts every line of hex fields into a line of text.
//
// The content of the input stream must be encoded using the same key.
// Surrounding whitespace of every line is ignored.
func (d *Decoder) Decode() (Status, error) {
	return d.DecodeContext(context.Background())
}

// DecodeContext decrypts every line of the input and receives cancellation signal on the context parameter.
//
// It will return an error with the failing line number if a line is not a valid ciphertext.
func (d *Decoder) DecodeContext(ctx context.Context) (Status, error) {
	if d.cipher == nil {
		return Failed, ErrInvalidKey
	}

	return processLines(ctx, d.input, d.output, func(n int, line string) (string, error) {
		text, err := d.cipher.Decrypt(strings.TrimSpace(line))
		if err != nil {
			return "", fmt.Errorf("line %d: %w", n, err)
		}
		return text, nil
	})
}
