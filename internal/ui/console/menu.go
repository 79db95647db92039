package console

import (
	"errors"
	"io"

	"github.com/gopak/contactbook/internal/logging"
)

// Run shows the main menu until the user exits or input ends.
func (c *ConsoleUI) Run() error {
	for {
		c.printMenu()
		choice, err := c.ask("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.println()
				return nil
			}
			return err
		}
		logging.Debug("menu choice: " + choice)

		switch choice {
		case "1":
			err = c.addFlow()
		case "2":
			err = c.List()
		case "3":
			err = c.searchFlow()
		case "4":
			err = c.deleteFlow()
		case "5":
			err = c.updateFlow()
		case "0":
			c.println("Exiting... Goodbye!")
			return nil
		default:
			c.println(colorRed("Invalid choice. Please try again."))
			continue
		}
		if errors.Is(err, io.EOF) {
			c.println()
			return nil
		}
		if err != nil && !Reported(err) {
			c.println(colorRed("error: " + err.Error()))
		}
	}
}

func (c *ConsoleUI) printMenu() {
	c.println()
	c.println("Contact Management System")
	c.println("1. Add Contact")
	c.println("2. View All Contacts")
	c.println("3. Search Contact")
	c.println("4. Delete Contact")
	c.println("5. Update Contact")
	c.println("0. Exit")
}

func (c *ConsoleUI) addFlow() error {
	name, err := c.ask("Enter contact name: ")
	if err != nil {
		return err
	}
	phone, err := c.ask("Enter contact phone: ")
	if err != nil {
		return err
	}
	email, err := c.ask("Enter contact email: ")
	if err != nil {
		return err
	}
	return c.Add(name, phone, email)
}

func (c *ConsoleUI) searchFlow() error {
	kw, err := c.ask("Enter a keyword to search: ")
	if err != nil {
		return err
	}
	return c.Search(kw)
}

func (c *ConsoleUI) deleteFlow() error {
	name, err := c.ask("Enter the name of the contact to delete: ")
	if err != nil {
		return err
	}
	return c.Delete(name)
}

func (c *ConsoleUI) updateFlow() error {
	name, err := c.ask("Enter the name of the contact to update: ")
	if err != nil {
		return err
	}
	return c.Update(name)
}
