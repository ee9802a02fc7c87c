package obfuscate

const (
	fieldWidth = 18
	fieldMask  = 1<<fieldWidth - 1
)

// rotateRight rotates the 18 bit value to the right.
// The shift is reduced modulo the field width.
func rotateRight(v uint32, shift uint) uint32 {
	shift %= fieldWidth
	v &= fieldMask
	return (v>>shift | v<<(fieldWidth-shift)) & fieldMask
}

// rotateLeft reverses rotateRight for the same shift
func rotateLeft(v uint32, shift uint) uint32 {
	shift %= fieldWidth
	v &= fieldMask
	return (v<<shift | v>>(fieldWidth-shift)) & fieldMask
}

// fitsField returns true if the value is within the rotation field width
func fitsField(v uint32) bool {
	return v <= fieldMask
}
