// Package obfuscate implements the reversible hieroglyph obfuscation pipeline.
//
// Encryption maps the English letters of a text onto a fixed alphabet of Egyptian hieroglyphs,
// then transforms the code points using a key: the code points are permuted, the key is added
// to them modulo Bound and every value is circularly rotated within an 18 bit field.
// The result is a string of 5 digit hex fields. Decryption applies the inverse steps in reverse.
//
//	ciphertext, err := obfuscate.Encrypt("Attack at dawn", "key")
//	text, err := obfuscate.Decrypt(ciphertext, "key")
//
// The obfuscation is NOT cryptographically secure.
//
// Streams of text can be processed line by line using an Encoder or a Decoder. To process many
// streams concurrently, implement a Tap (or use a Pipe) and connect it to an Engine:
//
//	pipe := obfuscate.NewPipe(10)
//	engine := obfuscate.NewEngine(10, false, logger, pipe)
//	engine.Start()
//	defer engine.Stop()
//
//	c, err := obfuscate.NewCipher("key")
//	if err != nil {
//		log.Fatal(err)
//	}
//	pipe.Push(obfuscate.NewWorkUnit(obfuscate.NewTask(obfuscate.Encode, input, output), c, nil))
package obfuscate
