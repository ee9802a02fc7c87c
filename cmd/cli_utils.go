package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AskForConfirmation asks the user for confirmation. The user must type in "yes" or "no" and
// then press enter. It has fuzzy matching, so "y", "Y", "yes", "YES", and "Yes" all count as
// confirmations. If the input is not recognized, it will ask again. The function does not return
// until it gets a valid response from the user, or the input has been exhausted.
func AskForConfirmation(in io.Reader, out io.Writer, s string) bool {
	scanner := bufio.NewScanner(in)
	msg := fmt.Sprintf("%s [y/n]?: ", s)
	for fmt.Fprint(out, msg); scanner.Scan(); fmt.Fprint(out, msg) {
		response := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if response == "y" || response == "yes" {
			return true
		} else if response == "n" || response == "no" {
			return false
		}
	}
	return false
}
