package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gopak/contactbook/internal/contacts"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func (c *ConsoleUI) List() error {
	cs, err := c.m.List()
	if errors.Is(err, contacts.ErrNoContacts) {
		c.println()
		c.println("No contacts found!")
		return err
	}
	if err != nil {
		return err
	}
	c.println()
	c.println(text.Bold.Sprint("All Contacts:"))
	c.printf("%s\n", renderContacts(cs))
	return nil
}

func renderContacts(cs []contacts.Contact) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Name", "Phone", "Email"})
	for i, ct := range cs {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), ct.Name, dash(ct.Phone), dash(ct.Email)})
	}
	b.WriteString(tw.Render())
	return b.String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
