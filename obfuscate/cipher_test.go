package obfuscate

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/NebulousLabs/fastrand"
	"github.com/xitonix/anubis/assert"
	"github.com/xitonix/anubis/hexfield"
)

func TestEncrypt(t *testing.T) {
	testCases := []struct {
		title         string
		text          string
		key           string
		expected      string
		expectedError error
	}{
		{
			title:    "key_as_long_as_the_text",
			text:     "cat",
			key:      "key",
			expected: "210980680003000",
		},
		{
			title:    "key_longer_than_the_text",
			text:     "ct",
			key:      "key",
			expected: "0140006800",
		},
		{
			title:    "key_shorter_than_the_text",
			text:     "hello",
			key:      "k",
			expected: "2032611B260AC260AC260EE26",
		},
		{
			title:    "text_longer_than_the_key_with_a_partial_block",
			text:     "attackatdawn",
			key:      "lemon",
			expected: "00580081260060001F00085A6084A620326006000862608AA6141260EC26",
		},
		{
			title:    "non_letters_are_dropped",
			text:     "c4t!",
			key:      "key",
			expected: "0140006800",
		},
		{
			title:    "upper_case_letters_are_folded",
			text:     "Hello World",
			key:      "key",
			expected: "06C990009A2CC983B8982A4983D8981EC983AC982CC9822498",
		},
		{
			title:    "empty_text",
			text:     "",
			key:      "key",
			expected: "",
		},
		{
			title:         "empty_key_is_not_valid",
			text:          "cat",
			key:           "",
			expectedError: ErrInvalidKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			fields := assert.Fields{"text": tc.text, "key": tc.key}
			actual, err := Encrypt(tc.text, tc.key)
			if !assert.ErrorIs(t, tc.expectedError, err, fields) {
				return
			}
			if actual != tc.expected {
				t.Errorf("expected '%s', actual '%s' (%s)", tc.expected, actual, fields)
			}
		})
	}
}

func TestDecrypt(t *testing.T) {
	testCases := []struct {
		title         string
		ciphertext    string
		key           string
		expected      string
		expectedError error
	}{
		{
			title:      "valid_ciphertext",
			ciphertext: "210980680003000",
			key:        "key",
			expected:   "cat",
		},
		{
			title:      "lower_case_ciphertext",
			ciphertext: "2032611b260ac260ac260ee26",
			key:        "k",
			expected:   "hello",
		},
		{
			title:      "empty_ciphertext",
			ciphertext: "",
			key:        "key",
			expected:   "",
		},
		{
			title:      "field_wider_than_the_rotation_width_is_unknown",
			ciphertext: "FFFFF0680003000",
			key:        "key",
			expected:   "c?t",
		},
		{
			title:      "corrupted_field_is_unknown",
			ciphertext: "210980000003000",
			key:        "key",
			expected:   "?at",
		},
		{
			title:      "wrong_key_does_not_fail",
			ciphertext: "210980680003000",
			key:        "kez",
			expected:   "???",
		},
		{
			title:         "length_not_multiple_of_five",
			ciphertext:    "ABC",
			key:           "key",
			expectedError: ErrMalformedCiphertext,
		},
		{
			title:         "non_hex_characters",
			ciphertext:    "21098068000300Z",
			key:           "key",
			expectedError: ErrMalformedCiphertext,
		},
		{
			title:         "empty_key_is_not_valid",
			ciphertext:    "210980680003000",
			key:           "",
			expectedError: ErrInvalidKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.title, func(t *testing.T) {
			fields := assert.Fields{"ciphertext": tc.ciphertext, "key": tc.key}
			actual, err := Decrypt(tc.ciphertext, tc.key)
			if !assert.ErrorIs(t, tc.expectedError, err, fields) {
				return
			}
			if actual != tc.expected {
				t.Errorf("expected '%s', actual '%s' (%s)", tc.expected, actual, fields)
			}
		})
	}
}

func TestMalformedCiphertextWrapsTheCodecError(t *testing.T) {
	_, err := Decrypt("ABC", "key")
	if !errors.Is(err, hexfield.ErrMalformed) {
		t.Errorf("expected '%v' to wrap '%v'", err, hexfield.ErrMalformed)
	}
}

func TestDecryptWithWrongKeyKeepsTheLength(t *testing.T) {
	c, _ := NewCipher("key")
	ciphertext := c.Encrypt("attackatdawn")
	text, err := Decrypt(ciphertext, "another key")
	if !assert.Errors(t, false, err, nil) {
		return
	}
	if len(text) != len("attackatdawn") {
		t.Errorf("expected %d characters, actual '%s'", len("attackatdawn"), text)
	}
}

func TestDecryptSymbols(t *testing.T) {
	c, err := NewCipher("key")
	if !assert.Errors(t, false, err, nil) {
		return
	}
	symbols, err := c.DecryptSymbols("FFFFF0680003000")
	if !assert.Errors(t, false, err, nil) {
		return
	}

	known := []bool{true, false, true}
	if len(symbols) != len(known) {
		t.Fatalf("expected %d symbols, actual %d", len(known), len(symbols))
	}
	for i, s := range symbols {
		if s.Known() != known[i] {
			t.Errorf("expected symbol %d known state to be %v", i, known[i])
		}
	}
	if symbols[1].Letter() != '?' {
		t.Errorf("expected the unknown symbol to render as '?', actual '%c'", symbols[1].Letter())
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 500; i++ {
		key := randomKey(1 + fastrand.Intn(24))
		text := randomLetters(fastrand.Intn(64))
		fields := assert.Fields{"key": key, "text": text}

		ciphertext, err := Encrypt(text, key)
		if !assert.Errors(t, false, err, fields) {
			continue
		}

		if len(ciphertext) != hexfield.Width*len(text) {
			t.Errorf("expected ciphertext length %d, actual %d (%s)", hexfield.Width*len(text), len(ciphertext), fields)
		}

		actual, err := Decrypt(ciphertext, key)
		if !assert.Errors(t, false, err, fields) {
			continue
		}

		if actual != strings.ToLower(text) {
			t.Errorf("expected '%s', actual '%s' (%s)", strings.ToLower(text), actual, fields)
		}
	}
}

func TestRoundTripWithNonASCIIKeys(t *testing.T) {
	keys := []string{"clé", "ключ", "\U0010FFFF", "𓂀𓂀", "日本語のキー"}
	for _, key := range keys {
		ciphertext, err := Encrypt("TheQuickBrownFoxJumpsOverTheLazyDog", key)
		if !assert.Errors(t, false, err, assert.Fields{"key": key}) {
			continue
		}
		actual, err := Decrypt(ciphertext, key)
		if !assert.Errors(t, false, err, assert.Fields{"key": key}) {
			continue
		}
		if actual != "thequickbrownfoxjumpsoverthelazydog" {
			t.Errorf("unexpected decryption result '%s' (key %q)", actual, key)
		}
	}
}

func TestCipherIsSafeForConcurrentUse(t *testing.T) {
	c, err := NewCipher("concurrency")
	if !assert.Errors(t, false, err, nil) {
		return
	}

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				text := randomLetters(1 + j%30)
				actual, err := c.Decrypt(c.Encrypt(text))
				if err != nil || actual != strings.ToLower(text) {
					errs <- text
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for text := range errs {
		t.Errorf("failed to round trip '%s'", text)
	}
}
