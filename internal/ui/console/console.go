package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopak/contactbook/internal/contacts"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleUI is the text front end over a contacts.Manager.
type ConsoleUI struct {
	m   *contacts.Manager
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleUI(m *contacts.Manager) *ConsoleUI {
	return NewConsoleUIWithIO(m, os.Stdin, os.Stdout)
}

func NewConsoleUIWithIO(m *contacts.Manager, in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{m: m, in: bufio.NewReader(in), out: out}
}

// ask prints prompt and returns the next input line without surrounding
// whitespace. It returns io.EOF once input is exhausted.
func (c *ConsoleUI) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *ConsoleUI) println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *ConsoleUI) printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }

// Reported tells whether err is an expected outcome the console has already
// explained to the user.
func Reported(err error) bool {
	return errors.Is(err, contacts.ErrNotFound) ||
		errors.Is(err, contacts.ErrNoContacts) ||
		errors.Is(err, contacts.ErrInvalidField)
}

func colorGreen(s string) string { return text.FgGreen.Sprint(s) }
func colorRed(s string) string   { return text.FgRed.Sprint(s) }
