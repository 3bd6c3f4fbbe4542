package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads operator input one line at a time.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter returns a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

// Line prints prompt and returns the next input line without its line ending.
// Returns io.EOF when the input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// Word prints prompt and returns the next line with leading whitespace
// removed, skipping lines that are entirely blank.
func (p *Prompter) Word(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimLeft(line, " \t\v\f"); trimmed != "" {
			return trimmed, nil
		}
	}
}

// Choice prints prompt and reads a whole number. Blank lines are skipped;
// anything else that is not a number prints invalid and prompts again.
func (p *Prompter) Choice(prompt, invalid string) (int, error) {
	fmt.Fprint(p.out, prompt)
	for {
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, invalid)
		fmt.Fprint(p.out, prompt)
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
