// Package console implements the interactive hex console and the
// non-interactive batch pass: read a hex line, write the bytes to the
// device, wait a fixed delay, drain whatever came back and print it.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/wirenboard/serial-tool/internal/hexcodec"
)

// Device is the slice of the serial port the console drives
type Device interface {
	Write(data []byte) (int, error)
	Drain(timeout time.Duration) ([]byte, error)
}

// Console runs write/wait/drain/print cycles against a Device
type Console struct {
	dev       Device
	timeout   time.Duration
	out       io.Writer
	completer *Completer
}

// New returns a console exchanging data with dev, waiting timeout before
// each drain, printing replies to out
func New(dev Device, timeout time.Duration, out io.Writer) *Console {
	return &Console{
		dev:       dev,
		timeout:   timeout,
		out:       out,
		completer: NewCompleter(),
	}
}

// Completer returns the console's completion vocabulary
func (c *Console) Completer() *Completer {
	return c.completer
}

// exchange writes payload, waits the fixed timeout and returns whatever
// the device buffered in the meantime
func (c *Console) exchange(payload []byte) ([]byte, error) {
	if _, err := c.dev.Write(payload); err != nil {
		return nil, err
	}
	return c.dev.Drain(c.timeout)
}

// RunBatch performs a single decode/write/wait/drain pass. A non-empty
// reply is printed as bare space-separated hex pairs; no reply produces
// no output.
func (c *Console) RunBatch(hexArg string) error {
	payload, err := hexcodec.Decode(hexArg)
	if err != nil {
		return err
	}

	reply, err := c.exchange(payload)
	if err != nil {
		return err
	}

	if len(reply) > 0 {
		fmt.Fprintln(c.out, hexcodec.Encode(reply))
	}
	return nil
}

// Submit handles one interactive line. Decode failures are reported
// inline and nil is returned so the prompt loop continues; device
// failures are returned to the caller and terminate the session.
//
// An empty line is a normal turn: zero bytes are written and the drain
// still runs, so pressing Enter prints any data the device has sent on
// its own.
func (c *Console) Submit(line string) error {
	payload, err := hexcodec.Decode(line)
	if err != nil {
		fmt.Fprintln(c.out, ErrorStyle.Render("ERROR:"), err)
		return nil
	}

	reply, err := c.exchange(payload)
	if err != nil {
		return err
	}

	if len(reply) > 0 {
		fmt.Fprintln(c.out, ReplyStyle.Render("<< ")+hexcodec.Encode(reply))
	}
	return nil
}

// LineReader is the slice of the line-editing front end the interactive
// loop drives. *liner.State satisfies it; the editor setup (completion
// hook, history seeding, Ctrl-C handling) stays with the caller.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// RunInteractive repeatedly prompts, decodes, writes, waits, drains and
// prints until the exit keyword, end-of-input or an interrupt at the
// prompt. Entered lines are appended to both the line editor's history
// and hist.
func (c *Console) RunInteractive(shell LineReader, hist *History) error {
	for {
		line, err := shell.Prompt(Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out, "exiting")
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) != "" {
			shell.AppendHistory(line)
			hist.Append(line)
		}

		if strings.TrimSpace(line) == ExitKeyword {
			return nil
		}

		if err := c.Submit(line); err != nil {
			return err
		}
	}
}
