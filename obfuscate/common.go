package obfuscate

import (
	"bufio"
	"context"
	"io"
)

// None represents an empty struct{}
type None struct{}

// maxLineLength is the longest line the encoder and decoder accept
const maxLineLength = 1024 * 1024

type lineFunc func(n int, line string) (string, error)

// processLines applies fn to every line of the input and writes the results to the output,
// one line each. The context is checked before processing every line.
func processLines(ctx context.Context, input io.Reader, output io.Writer, fn lineFunc) (Status, error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	w := bufio.NewWriter(output)

	n := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return Cancelled, w.Flush()
		}
		n++
		result, err := fn(n, scanner.Text())
		if err != nil {
			w.Flush()
			return Failed, err
		}
		if _, err := w.WriteString(result); err != nil {
			return Failed, err
		}
		if err := w.WriteByte('\n'); err != nil {
			return Failed, err
		}
	}

	if err := scanner.Err(); err != nil {
		w.Flush()
		return Failed, err
	}

	if err := w.Flush(); err != nil {
		return Failed, err
	}
	return Completed, nil
}
