package console

import (
	"errors"
	"fmt"

	"github.com/gopak/contactbook/internal/contacts"
)

// consoleEditor feeds the update loop from the console input.
type consoleEditor struct {
	c *ConsoleUI
}

var _ contacts.Editor = (*consoleEditor)(nil)

func (e *consoleEditor) Choose() (string, error) {
	e.c.println()
	e.c.println("What would you like to update?")
	e.c.println("1. Name")
	e.c.println("2. Phone Number")
	e.c.println("3. Email")
	e.c.println("0. Finish Updating")
	return e.c.ask("Enter your choice: ")
}

func (e *consoleEditor) Value(f contacts.Field) (string, error) {
	return e.c.ask(valuePrompt(f))
}

func (e *consoleEditor) Invalid(string) {
	e.c.println(colorRed("Invalid choice. Please try again."))
}

func (e *consoleEditor) Rejected(_ contacts.Field, err error) {
	e.c.println(colorRed(err.Error()))
}

func (e *consoleEditor) Changed(f contacts.Field, v string) {
	e.c.println(fmt.Sprintf("Contact %s updated to '%s'.", f, v))
}

func valuePrompt(f contacts.Field) string {
	switch f {
	case contacts.FieldPhone:
		return "Enter the new phone number: "
	case contacts.FieldEmail:
		return "Enter the new email address: "
	}
	return "Enter the new name: "
}

// Update runs the interactive field menu for the first contact named name.
func (c *ConsoleUI) Update(name string) error {
	return c.UpdateWith(name, &consoleEditor{c: c})
}

func (c *ConsoleUI) UpdateWith(name string, ed contacts.Editor) error {
	_, err := c.m.Update(name, ed)
	if errors.Is(err, contacts.ErrNotFound) {
		c.println(colorRed(fmt.Sprintf("Contact '%s' not found!", name)))
		return err
	}
	if err != nil {
		return err
	}
	c.println(colorGreen(fmt.Sprintf("Contact '%s' updated successfully!", name)))
	return nil
}
