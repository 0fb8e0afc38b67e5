package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NoMax can be passed as the upper bound of ReadBoundedInt when only a
// lower bound applies.
const NoMax = int(^uint(0) >> 1)

// Prompter reads operator input line by line and echoes prompts to the
// output writer. It carries no state beyond the buffered reader, so the
// caller owns all retry policy for text input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadBoundedInt prompts until the operator supplies a whole number
// within [min, max]. Malformed or out-of-range input re-prompts and
// never aborts; only a read failure on the underlying input ends the
// loop early.
func (p *Prompter) ReadBoundedInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a whole number.")
			continue
		}
		if value < min {
			fmt.Fprintf(p.out, "Please enter a number >= %d.\n", min)
			continue
		}
		if value > max {
			fmt.Fprintf(p.out, "Please enter a number <= %d.\n", max)
			continue
		}
		return value, nil
	}
}

// ReadString reads one trimmed line. Unlike ReadBoundedInt it does not
// retry: an empty result is returned to the caller, which decides
// whether to cancel the enclosing operation or re-show its menu. The
// asymmetry is deliberate policy, not an oversight - menu navigation
// must never abort on bad input, while a blank key or member cancels
// the operation it belongs to.
func (p *Prompter) ReadString(prompt string) (string, error) {
	return p.readLine(prompt)
}

// ReadConfirm reads one line and reports whether it is exactly "y",
// case-insensitively. Anything else counts as a refusal.
func (p *Prompter) ReadConfirm(prompt string) (bool, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(line) == "y", nil
}
