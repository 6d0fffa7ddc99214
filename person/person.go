// Package person models the people referenced by resources and
// stakeholders: a validated name plus optional, validated contact
// details.
package person

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
)

// maxNameLen bounds each name part after trimming.
const maxNameLen = 50

var (
	// ErrInvalidName reports an empty or overlong name part.
	ErrInvalidName = errors.New("person: name parts must be non-empty and at most 50 characters")
	// ErrInvalidEmail reports an address net/mail could not parse.
	ErrInvalidEmail = errors.New("person: invalid email address")
	// ErrInvalidPhone reports a number that is not a valid phone number
	// in international format.
	ErrInvalidPhone = errors.New("person: invalid phone number")
)

// Name is a validated first/last name pair. Both parts are trimmed,
// non-empty and at most 50 characters long.
type Name struct {
	first string
	last  string
}

// ParseName validates and builds a Name.
func ParseName(first, last string) (Name, error) {
	f, err := nameString(first)
	if err != nil {
		return Name{}, fmt.Errorf("first name: %w", err)
	}
	l, err := nameString(last)
	if err != nil {
		return Name{}, fmt.Errorf("last name: %w", err)
	}
	return Name{first: f, last: l}, nil
}

func nameString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxNameLen {
		return "", ErrInvalidName
	}
	return s, nil
}

// First returns the first name part.
func (n Name) First() string { return n.first }

// Last returns the last name part.
func (n Name) Last() string { return n.last }

func (n Name) String() string {
	return n.first + " " + n.last
}

// Person is someone who can appear in a project as personnel or as a
// stakeholder. Email and phone are optional and validated on update.
type Person struct {
	name  Name
	email *mail.Address
	phone *phonenumbers.PhoneNumber
}

// New builds a person from an already validated name.
func New(name Name) Person {
	return Person{name: name}
}

// FullName returns "First Last".
func (p *Person) FullName() string {
	return p.name.String()
}

// FirstName returns the person's first name.
func (p *Person) FirstName() string { return p.name.First() }

// LastName returns the person's last name.
func (p *Person) LastName() string { return p.name.Last() }

// UpdateFirstName replaces the first name, validating it first.
func (p *Person) UpdateFirstName(first string) error {
	f, err := nameString(first)
	if err != nil {
		return fmt.Errorf("first name: %w", err)
	}
	p.name.first = f
	return nil
}

// UpdateLastName replaces the last name, validating it first.
func (p *Person) UpdateLastName(last string) error {
	l, err := nameString(last)
	if err != nil {
		return fmt.Errorf("last name: %w", err)
	}
	p.name.last = l
	return nil
}

// UpdateEmail sets or replaces the email address. The address must be
// a single RFC 5322 address.
func (p *Person) UpdateEmail(address string) error {
	addr, err := mail.ParseAddress(address)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", address, ErrInvalidEmail)
	}
	p.email = addr
	return nil
}

// Email returns the address and whether one is set.
func (p *Person) Email() (string, bool) {
	if p.email == nil {
		return "", false
	}
	return p.email.Address, true
}

// RemoveEmail clears the email address.
func (p *Person) RemoveEmail() {
	p.email = nil
}

// UpdatePhone sets or replaces the phone number. The number must be in
// international format, e.g. "+14155552671".
func (p *Person) UpdatePhone(number string) error {
	num, err := phonenumbers.Parse(number, "")
	if err != nil {
		return fmt.Errorf("parsing %q: %w", number, ErrInvalidPhone)
	}
	p.phone = num
	return nil
}

// Phone returns the number in E.164 format and whether one is set.
func (p *Person) Phone() (string, bool) {
	if p.phone == nil {
		return "", false
	}
	return phonenumbers.Format(p.phone, phonenumbers.E164), true
}

// RemovePhone clears the phone number.
func (p *Person) RemovePhone() {
	p.phone = nil
}
