package console

import (
	"errors"
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/contactbook/internal/contacts"
)

func (c *ConsoleUI) Add(name, phone, email string) error {
	ct, err := c.m.Add(name, phone, email)
	if err != nil {
		if errors.Is(err, contacts.ErrInvalidField) {
			c.println(colorRed(err.Error()))
		}
		return err
	}
	c.println(colorGreen(fmt.Sprintf("Contact '%s' added successfully!", ct.Name)))
	return nil
}

// AskMissing prompts for every empty value.
func AskMissing(name, phone, email *string) error {
	fields := []struct {
		msg string
		v   *string
	}{
		{"Contact name:", name},
		{"Contact phone:", phone},
		{"Contact email:", email},
	}
	for _, f := range fields {
		if *f.v != "" {
			continue
		}
		if err := survey.AskOne(&survey.Input{Message: f.msg}, f.v); err != nil {
			return err
		}
	}
	return nil
}
