package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xitonix/anubis/obfuscate"
)

const menu = "\n===== ANUBIS Encryption System =====\n1) Encrypt\n2) Decrypt\n3) Exit\n"

// SecretReader prints the prompt and reads a value which must not be echoed back to the user
type SecretReader func(prompt string) (string, error)

// Shell is the interactive menu which encrypts and decrypts the messages entered by the user
type Shell struct {
	scanner    *bufio.Scanner
	out        io.Writer
	readSecret SecretReader
}

// NewShell creates a new shell which reads the user's input from 'in' and writes the results to 'out'.
// By default, the keys are read from the same input as the other values.
func NewShell(in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	s.readSecret = s.readLine
	return s
}

// WithSecretReader replaces the function used for reading the keys
func (s *Shell) WithSecretReader(r SecretReader) *Shell {
	if r != nil {
		s.readSecret = r
	}
	return s
}

// Run shows the menu until the user chooses to exit or the input has been exhausted.
// The failed operations are reported to the user and do not stop the shell.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.readLine("Choose: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.encrypt()
		case "2":
			err = s.decrypt()
		case "3":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice!")
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) encrypt() error {
	msg, err := s.readLine("Enter message: ")
	if err != nil {
		return err
	}
	key, err := s.readSecret("Enter key: ")
	if err != nil {
		return err
	}
	ciphertext, err := obfuscate.Encrypt(msg, key)
	if err != nil {
		s.reportError(err)
		return nil
	}
	fmt.Fprintf(s.out, "\nEncrypted Hex:\n%s\n", ciphertext)
	return nil
}

func (s *Shell) decrypt() error {
	ciphertext, err := s.readLine("Enter hex string: ")
	if err != nil {
		return err
	}
	key, err := s.readSecret("Enter key: ")
	if err != nil {
		return err
	}
	text, err := obfuscate.Decrypt(strings.TrimSpace(ciphertext), key)
	if err != nil {
		s.reportError(err)
		return nil
	}
	fmt.Fprintf(s.out, "\nDecrypted Message:\n%s\n", text)
	return nil
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *Shell) reportError(err error) {
	fmt.Fprintf(s.out, "Error: %s\n", err)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
