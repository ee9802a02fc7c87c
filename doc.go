// Package anubis provides the functionality of obfuscating English text into Egyptian hieroglyph
// hex fields and back. You can manually use the Cipher, Encoder and Decoder types of the obfuscate
// package, or automate the tasks by passing a Tap to an Engine. Check the taps package to see
// the directory based taps.
package anubis
