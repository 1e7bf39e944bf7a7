package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-wordwrap"
)

// Console is a line-oriented terminal shared by both players.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(r),
		out: w,
	}
}

func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Paragraph prints text wrapped to width columns.
func (c *Console) Paragraph(text string, width uint) {
	for _, line := range strings.Split(wordwrap.WrapString(text, width), "\n") {
		c.Println(line)
	}
}

// ReadLine shows prompt and returns the next input line without its line
// ending. Lines of any length are returned whole. It returns io.EOF once
// input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.Print(prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			log.Error("console [ReadLine]", "err", err)
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask repeats prompt until parse accepts a line. Every rejected line is
// answered with reject(err). Only read failures end the loop.
func Ask[T any](c *Console, prompt string, parse func(string) (T, error), reject func(error) string) (T, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		log.Debug("console [Ask]", "input", line, "err", err)
		c.Println(reject(err))
	}
}
