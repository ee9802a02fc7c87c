// Interactive hieroglyph obfuscation shell
package main

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/xitonix/anubis/cmd"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	shell := cmd.NewShell(os.Stdin, os.Stdout)
	if terminal.IsTerminal(int(syscall.Stdin)) {
		shell.WithSecretReader(readPassword)
	}

	if err := shell.Run(); err != nil {
		log.Fatal(err)
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	key, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return string(key), err
}
