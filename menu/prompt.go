package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const invalidNumberMsg = "That number is invalid. Please try again."

const invalidInputMsg = "That input is invalid. Please try again."

// Until calls acquire until it returns a value accepted by valid.
// acquire reports ok=false when the input could not be read as a value at all.
// The only way out besides a valid value is an error from acquire.
func Until[T any](acquire func() (T, bool, error), valid func(T) bool) (T, error) {
	for {
		v, ok, err := acquire()
		if err != nil {
			var zero T

			return zero, err
		}

		if ok && valid(v) {
			return v, nil
		}
	}
}

// Prompter reads line-oriented console input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns io.EOF only when the input is exhausted and nothing was read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}

		return "", err
	}

	return line, nil
}

// Char prints prompt and returns the first non-blank character of the next
// line; the rest of the line is discarded.
func (p *Prompter) Char(prompt string) (rune, bool, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.readLine()
	if err != nil {
		return 0, false, err
	}

	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if line == "" {
		fmt.Fprintln(p.out, invalidInputMsg)

		return 0, false, nil
	}

	r, _ := utf8.DecodeRuneInString(line)

	return r, true, nil
}

// Int prints prompt and parses the first token of the next line as an integer.
func (p *Prompter) Int(prompt string) (int, bool, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.readLine()
	if err != nil {
		return 0, false, err
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		fmt.Fprintln(p.out, invalidNumberMsg)

		return 0, false, nil
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		fmt.Fprintln(p.out, invalidNumberMsg)

		return 0, false, nil
	}

	return n, true, nil
}

// IntUntil re-prompts until an integer accepted by valid is entered.
func (p *Prompter) IntUntil(prompt string, valid func(int) bool) (int, error) {
	return Until(func() (int, bool, error) { return p.Int(prompt) }, valid)
}
