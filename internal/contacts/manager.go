package contacts

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gopak/contactbook/internal/logging"
)

// Manager keeps the contact list in memory and mirrors every change into the
// backing file. It is not safe for concurrent use.
type Manager struct {
	path     string
	contacts []Contact
}

// Open loads every record from path, creating an empty file first when it is
// missing. A single malformed line fails the whole load.
func Open(path string) (*Manager, error) {
	if path == "" {
		return nil, errors.New("contacts: empty file path")
	}
	if err := ensureFile(path); err != nil {
		return nil, fmt.Errorf("contacts: prepare %s: %w", path, err)
	}
	cs, err := readAll(path)
	if err != nil {
		return nil, fmt.Errorf("contacts: load: %w", err)
	}
	logging.Debug(fmt.Sprintf("loaded %d contacts from %s", len(cs), path))
	return &Manager{path: path, contacts: cs}, nil
}

func (m *Manager) Path() string { return m.path }

func (m *Manager) Len() int { return len(m.contacts) }

func (m *Manager) Add(name, phone, email string) (Contact, error) {
	c := New(name, phone, email)
	if err := c.Validate(); err != nil {
		return Contact{}, err
	}
	if err := appendOne(m.path, c); err != nil {
		return Contact{}, fmt.Errorf("contacts: append: %w", err)
	}
	m.contacts = append(m.contacts, c)
	logging.Debug(fmt.Sprintf("added contact %s to %s", c.Name, m.Path()))
	return c, nil
}

// List returns all contacts in insertion order, or ErrNoContacts.
func (m *Manager) List() ([]Contact, error) {
	if len(m.contacts) == 0 {
		return nil, ErrNoContacts
	}
	return slices.Clone(m.contacts), nil
}

// Search matches keyword as a case-insensitive substring of the name.
func (m *Manager) Search(keyword string) ([]Contact, error) {
	if len(m.contacts) == 0 {
		return nil, ErrNoContacts
	}
	var out []Contact
	for _, c := range m.contacts {
		if c.NameContains(keyword) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no name contains %q", ErrNotFound, keyword)
	}
	return out, nil
}

// Delete removes every contact whose name equals name ignoring case and
// returns how many were removed.
func (m *Manager) Delete(name string) (int, error) {
	kept := slices.DeleteFunc(slices.Clone(m.contacts), func(c Contact) bool { return c.NameEquals(name) })
	removed := len(m.contacts) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := rewrite(m.path, kept); err != nil {
		return 0, fmt.Errorf("contacts: rewrite: %w", err)
	}
	m.contacts = kept
	logging.Debug(fmt.Sprintf("deleted %d contact(s) named %s", removed, name))
	return removed, nil
}

// Update edits the first contact whose name equals name ignoring case. Later
// duplicates are never touched.
func (m *Manager) Update(name string, ed Editor) (Contact, error) {
	idx := slices.IndexFunc(m.contacts, func(c Contact) bool { return c.NameEquals(name) })
	if idx < 0 {
		return Contact{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	edited, err := runUpdate(m.contacts[idx], ed)
	if err != nil {
		return Contact{}, err
	}
	next := slices.Clone(m.contacts)
	next[idx] = edited
	if err := rewrite(m.path, next); err != nil {
		return Contact{}, fmt.Errorf("contacts: rewrite: %w", err)
	}
	m.contacts = next
	logging.Debug(fmt.Sprintf("updated contact %s -> %s", name, edited.Name))
	return edited, nil
}
