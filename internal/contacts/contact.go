package contacts

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

const delimiter = ","

var (
	ErrMalformedRecord = errors.New("malformed contact record")
	ErrInvalidField    = errors.New("invalid contact field")
	ErrNotFound        = errors.New("contact not found")
	ErrNoContacts      = errors.New("no contacts")
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func New(name, phone, email string) Contact {
	return Contact{Name: name, Phone: phone, Email: email}
}

// String returns the single-line file representation: name,phone,email.
func (c Contact) String() string {
	return c.Name + delimiter + c.Phone + delimiter + c.Email
}

// Parse reads a record written by String. Only the line terminator is
// stripped; the rest must split into exactly three fields.
func Parse(line string) (Contact, error) {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), delimiter)
	if len(parts) != 3 {
		return Contact{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(parts))
	}
	return New(parts[0], parts[1], parts[2]), nil
}

// Validate rejects values that would not survive a round trip through the file.
func (c Contact) Validate() error {
	for _, f := range []Field{FieldName, FieldPhone, FieldEmail} {
		if err := ValidateField(f, c.Get(f)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateField reports whether v can be stored as f.
func ValidateField(f Field, v string) error {
	if strings.Contains(v, delimiter) {
		return fmt.Errorf("%w: %s must not contain %q", ErrInvalidField, f, delimiter)
	}
	if strings.ContainsAny(v, "\r\n") {
		return fmt.Errorf("%w: %s must not contain line breaks", ErrInvalidField, f)
	}
	return nil
}

// NameEquals and NameContains compare Unicode case-folded names.
func (c Contact) NameEquals(name string) bool {
	f := cases.Fold()
	return f.String(c.Name) == f.String(name)
}

func (c Contact) NameContains(keyword string) bool {
	f := cases.Fold()
	return strings.Contains(f.String(c.Name), f.String(keyword))
}

// Field identifies one editable attribute of a Contact.
type Field int

const (
	FieldName Field = iota + 1
	FieldPhone
	FieldEmail
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPhone:
		return "phone"
	case FieldEmail:
		return "email"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

func (c Contact) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	}
	return ""
}

func (c *Contact) Set(f Field, v string) {
	switch f {
	case FieldName:
		c.Name = v
	case FieldPhone:
		c.Phone = v
	case FieldEmail:
		c.Email = v
	}
}
