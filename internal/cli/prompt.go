// SPDX-License-Identifier: MIT
// Package: evroute/internal/cli
//
// prompt.go — validated line input for the start node and the display mode.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNoInput indicates the input ended before a valid answer was read.
var ErrNoInput = errors.New("cli: no more input")

// Prompter asks questions on out and reads answers from in, re-asking on
// invalid answers. Prompt text is only written when interactive is true, so
// piped answers do not pollute the report on stdout.
type Prompter struct {
	sc          *bufio.Scanner
	out         io.Writer
	interactive bool
	log         zerolog.Logger
}

// NewPrompter returns a Prompter over in and out.
func NewPrompter(in io.Reader, out io.Writer, interactive bool, log zerolog.Logger) *Prompter {
	return &Prompter{
		sc:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		log:         log,
	}
}

// AskSource asks for a node index in [0, n-1].
func (p *Prompter) AskSource(n int) (int, error) {
	question := fmt.Sprintf("Enter the starting node index [0-%d]: ", n-1)
	for {
		line, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 0 || idx >= n {
			p.reject(line, fmt.Sprintf("please enter a whole number between 0 and %d", n-1))
			continue
		}

		return idx, nil
	}
}

// AskYesNo asks a yes/no question. Accepted answers: y, yes, n, no (any case).
func (p *Prompter) AskYesNo(question string) (bool, error) {
	for {
		line, err := p.ask(question + " [y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.reject(line, "please answer y or n")
	}
}

// ask writes question (when interactive) and returns the next trimmed line.
func (p *Prompter) ask(question string) (string, error) {
	if p.interactive {
		fmt.Fprint(p.out, question)
	}
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoInput, err)
		}
		return "", ErrNoInput
	}

	return strings.TrimSpace(p.sc.Text()), nil
}

func (p *Prompter) reject(answer, hint string) {
	p.log.Warn().Str("answer", answer).Msg("invalid answer")
	if p.interactive {
		fmt.Fprintf(p.out, "Invalid answer %q: %s.\n", answer, hint)
	}
}
