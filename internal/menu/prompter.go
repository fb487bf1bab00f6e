package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/boardsetup-cli/boardsetup/internal/builder"
)

// ReadlinePrompter reads interactive input with line editing and history.
type ReadlinePrompter struct {
	rl *readline.Instance
}

// NewReadlinePrompter creates a readline-backed prompter. Fails when the
// terminal cannot be put into raw mode (for example when stdin is a pipe);
// callers fall back to a StdinPrompter in that case.
func NewReadlinePrompter() (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlinePrompter{rl: rl}, nil
}

// ReadLine displays prompt and returns one line of input. Interrupt and end
// of input are both reported as io.EOF so the menu loop exits cleanly.
func (p *ReadlinePrompter) ReadLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt || err == io.EOF {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

// Close releases the underlying terminal state.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}

// StdinPrompter is the plain fallback when readline cannot initialize.
type StdinPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewStdinPrompter creates a prompter reading from r and echoing prompts to
// out.
func NewStdinPrompter(r io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{
		reader: bufio.NewReader(r),
		out:    out,
	}
}

// ReadLine displays prompt and returns one line of input.
func (p *StdinPrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return "", io.EOF
		}
		if err != io.EOF {
			return "", err
		}
	}
	return line, nil
}

// NewPrompter returns a readline prompter when the terminal supports it and
// a plain stdin prompter otherwise. The second return value releases the
// terminal and must be called before exit.
func NewPrompter(out io.Writer) (builder.Prompter, func()) {
	rl, err := NewReadlinePrompter()
	if err != nil {
		fmt.Fprintln(out, "Falling back to simple input mode...")
		return NewStdinPrompter(os.Stdin, out), func() {}
	}
	return rl, func() { rl.Close() }
}
