package obfuscate

import (
	"context"
	"io"
)

// Encoder is the type that encrypts the lines of an io.Reader into one or more io.Writer outputs
type Encoder struct {
	input  io.Reader
	output io.Writer
	cipher *Cipher
}

// NewEncoder creates a new Encoder object
func NewEncoder(cipher *Cipher, input io.Reader, outputs ...io.Writer) *Encoder {
	return &Encoder{
		input:  input,
		output: io.MultiWriter(outputs...),
		cipher: cipher,
	}
}

// Encode encrypts every line of the io.Reader into a line of hex fields.
// This methods will return an error if the cipher is nil or reading/writing fails
func (e *Encoder) Encode() (Status, error) {
	return e.EncodeContext(context.Background())
}

// EncodeContext encrypts every line of the io.Reader and receives cancellation signal on the context parameter.
// The lines which have been encrypted before the cancellation will be written to the outputs.
func (e *Encoder) EncodeContext(ctx context.Context) (Status, error) {
	if e.cipher == nil {
		return Failed, ErrInvalidKey
	}

	return processLines(ctx, e.input, e.output, func(_ int, line string) (string, error) {
		return e.cipher.Encrypt(line), nil
	})
}
