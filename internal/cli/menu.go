// Package cli implements the text shell: a numbered menu read from an
// input stream one line per prompt cycle.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"launchpad/internal/errors"
	"launchpad/internal/log"
	"launchpad/pkg/types"
)

// Name is the shell name used in logs and errors
const Name = "text"

// OptionQuit ends the menu loop
const OptionQuit = 1

type option struct {
	value int
	label string
}

var options = []option{
	{value: OptionQuit, label: "quit"},
}

// Menu is the text shell. It owns its input and output streams for the
// lifetime of Run.
type Menu struct {
	in    *bufio.Reader
	out   io.Writer
	lc    types.Lifecycle
	lines chan line
	done  chan struct{}
}

// line is one read from the input stream
type line struct {
	text string
	err  error
}

// New creates a menu reading from in and writing to out
func New(in io.Reader, out io.Writer) *Menu {
	return &Menu{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Name returns the shell name
func (m *Menu) Name() string { return Name }

// State returns the lifecycle state
func (m *Menu) State() types.State { return m.lc.State() }

// Run prompts until the quit option is chosen or input ends.
// Malformed input is reported and re-prompted; it never ends the loop.
func (m *Menu) Run(ctx context.Context) error {
	if !m.lc.Start() {
		return errors.ForShell(errors.ErrAlreadyRun, Name)
	}
	defer m.lc.Stop()

	if err := ctx.Err(); err != nil {
		log.Debugf("text shell: %v", err)
		return nil
	}

	m.lines = make(chan line)
	m.done = make(chan struct{})
	defer close(m.done)
	go m.readLines()

	for {
		m.prompt()

		value, err := m.readOption(ctx)
		if err != nil && ctx.Err() != nil {
			log.Debugf("text shell: %v", err)
			return nil
		}
		if err == io.EOF {
			log.Debug("text shell: end of input")
			return nil
		}
		if errors.IsInvalidInput(err) {
			fmt.Fprintln(m.out, "Bad input...")
			log.LogWithError(err).Debug("text shell: rejected input")
			continue
		}
		if err != nil {
			return errors.NewShellError("reading input", Name, errors.Unknown, err)
		}

		if value == OptionQuit {
			return nil
		}
		fmt.Fprintf(m.out, "unknown option: %d\n", value)
	}
}

func (m *Menu) prompt() {
	fmt.Fprintln(m.out, "Please, select an option:")
	for _, opt := range options {
		fmt.Fprintf(m.out, "%d: %s.\n", opt.value, opt.label)
	}
}

// readLines feeds m.lines until the input fails or Run returns. A read
// blocked on the terminal when Run returns is abandoned with the process.
func (m *Menu) readLines() {
	for {
		text, err := m.in.ReadString('\n')
		select {
		case m.lines <- line{text: text, err: err}:
		case <-m.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// readOption waits for a line holding a token, or for ctx to end. Blank
// lines are skipped without re-prompting, and anything after the first
// token is discarded. A final line without a trailing newline is still
// parsed; io.EOF is only returned once no input is left.
func (m *Menu) readOption(ctx context.Context) (int, error) {
	for {
		var l line
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case l = <-m.lines:
		}
		if l.err != nil && l.err != io.EOF {
			return 0, l.err
		}

		fields := strings.Fields(l.text)
		if len(fields) == 0 {
			if l.err == io.EOF {
				return 0, io.EOF
			}
			continue
		}

		value, perr := strconv.ParseInt(fields[0], 10, 32)
		if perr != nil {
			return 0, errors.NewInputError("not an option number", fields[0], perr)
		}
		return int(value), nil
	}
}

// ShowError writes the failure to the menu's output
func (m *Menu) ShowError(title string, err error) {
	fmt.Fprintf(m.out, "%s: %v\n", title, err)
}

// ShowInfo writes a message to the menu's output
func (m *Menu) ShowInfo(message string) {
	fmt.Fprintln(m.out, message)
}
