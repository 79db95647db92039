package console

import (
	"errors"

	"github.com/gopak/contactbook/internal/contacts"
	"github.com/jedib0t/go-pretty/v6/text"
)

func (c *ConsoleUI) Search(keyword string) error {
	cs, err := c.m.Search(keyword)
	if errors.Is(err, contacts.ErrNotFound) || errors.Is(err, contacts.ErrNoContacts) {
		c.println()
		c.println("No contacts found with keyword: " + keyword)
		return err
	}
	if err != nil {
		return err
	}
	c.println()
	c.println(text.Bold.Sprint("Search Results:"))
	c.printf("%s\n", renderContacts(cs))
	return nil
}
