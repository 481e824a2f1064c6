package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Port is the only way the engine reaches a person at the table.
type Port interface {
	Println(args ...interface{})
	ReadLine() (string, error)
}

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func Printfln(port Port, format string, args ...interface{}) {
	port.Println(fmt.Sprintf(format, args...))
}
