package library

import (
	"fmt"
	"strings"

	"bankshelf/ident"
)

// Person is anyone known to the library system: members who borrow and
// librarians who run the place. Each concrete kind carries its own
// permission set.
type Person interface {
	ID() string
	Name() string
	Email() string
	SetEmail(email string) error
	Phone() string
	SetPhone(phone string) error
	Permissions() []string
	fmt.Stringer
}

// personBase carries the identity shared by members and librarians. The
// identifier is assigned at construction and never changes.
type personBase struct {
	id    string
	name  string
	email string
	phone string
}

func newPersonBase(seq *ident.Sequence, name, email, phone string) personBase {
	return personBase{id: seq.Next(), name: name, email: email, phone: phone}
}

func (p *personBase) ID() string    { return p.id }
func (p *personBase) Name() string  { return p.name }
func (p *personBase) Email() string { return p.email }
func (p *personBase) Phone() string { return p.phone }

// SetEmail replaces the email address. The address must contain an "@".
func (p *personBase) SetEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	p.email = email
	return nil
}

// SetPhone replaces the phone number, which must be at least ten
// characters long.
func (p *personBase) SetPhone(phone string) error {
	if len(phone) < 10 {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	p.phone = phone
	return nil
}

func (p *personBase) String() string { return fmt.Sprintf("%s (%s)", p.name, p.id) }

// ValidEmail is the simplified address check used at registration time.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// SamePerson reports whether a and b are the same identity. People are
// compared by identifier, never by attributes.
func SamePerson(a, b Person) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
