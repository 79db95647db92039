package console

import (
	"errors"
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/contactbook/internal/contacts"
)

// Delete removes every contact with the given name.
func (c *ConsoleUI) Delete(name string) error {
	n, err := c.m.Delete(name)
	if errors.Is(err, contacts.ErrNotFound) {
		c.println(colorRed(fmt.Sprintf("Contact '%s' not found!", name)))
		return err
	}
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Contact '%s' deleted successfully!", name)
	if n > 1 {
		msg = fmt.Sprintf("%d contacts named '%s' deleted successfully!", n, name)
	}
	c.println(colorGreen(msg))
	return nil
}

// RunDeleteImperative asks for confirmation unless yes is set.
func (c *ConsoleUI) RunDeleteImperative(name string, yes bool) error {
	if !yes {
		ok := false
		if err := survey.AskOne(&survey.Confirm{Message: messageDeleteConfirm(name), Default: false}, &ok); err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return c.Delete(name)
}

func messageDeleteConfirm(name string) string {
	return fmt.Sprintf("Delete every contact named %s?", name)
}
