package obfuscate

import "errors"

var (
	// ErrInvalidKey is returned when the key cannot be used to derive a key schedule
	ErrInvalidKey = errors.New("invalid key: the key cannot be empty")
	// ErrMalformedCiphertext is returned when the ciphertext is not a sequence of 5 digit hex fields
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrOperationInProgress is the result of any invalid operation on an entity which is already being processed
	ErrOperationInProgress = errors.New("the operation is in progress")
	// ErrClosedTap will be raised if the user tries to push to the engine from a closed Tap
	ErrClosedTap = errors.New("cannot push from a closed tap")
)
