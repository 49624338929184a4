// Package console is the line-based terminal used by the interactive front ends:
// styled output on one side, blocking line reads on the other.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
)

var ErrInputClosed = errors.New("input closed")

// Console reads one line per prompt and writes colored feedback.
// Colors are dropped automatically when the output is not a terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	clr *color.Color
}

func New(in io.Reader, out io.Writer) *Console {
	clr := color.New()
	clr.SetOutput(out)
	return &Console{in: bufio.NewReader(in), out: out, clr: clr}
}

// DisableColor forces plain output
func (c *Console) DisableColor() {
	c.clr.Disable()
}

func (c *Console) Writer() io.Writer {
	return c.out
}

// ReadLine blocks until a full line is available and returns it without the
// line terminator. ErrInputClosed is returned once the input is exhausted.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes label without a newline and reads the answer
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	return c.ReadLine()
}

// Confirm asks until the answer is Y or N, case-insensitive
func (c *Console) Confirm(label string) (bool, error) {
	for {
		answer, err := c.Prompt(label)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(answer)) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		c.Error("\nInvalid input. Please enter Y or N.\n")
	}
}

// Info prints plain text
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Infof(format string, args ...interface{}) {
	c.Info(fmt.Sprintf(format, args...))
}

// Error prints msg in red
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.clr.Red(msg))
}

// Warn prints confirmations and warnings in yellow
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.clr.Yellow(msg))
}

// Title prints msg in bold
func (c *Console) Title(msg string) {
	fmt.Fprintln(c.out, c.clr.Bold(msg))
}
