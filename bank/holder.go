package bank

import (
	"fmt"
	"time"

	"bankshelf/ident"
)

// AccountHolder is any entity that can hold a bank account. Concrete
// holder kinds differ only in their descriptive attributes and in the
// role tag returned by HolderType.
type AccountHolder interface {
	HolderID() string
	Name() string
	SetName(name string)
	Address() string
	Email() string
	HolderType() string
	fmt.Stringer
}

// holderBase carries the identity shared by every holder kind. The
// identifier is assigned at construction and never changes.
type holderBase struct {
	id      string
	name    string
	address string
	email   string
}

func newHolderBase(seq *ident.Sequence, name, address, email string) holderBase {
	return holderBase{id: seq.Next(), name: name, address: address, email: email}
}

func (h *holderBase) HolderID() string    { return h.id }
func (h *holderBase) Name() string        { return h.name }
func (h *holderBase) SetName(name string) { h.name = name }
func (h *holderBase) Address() string     { return h.address }
func (h *holderBase) Email() string       { return h.email }
func (h *holderBase) String() string      { return fmt.Sprintf("%s (%s)", h.name, h.id) }

// IndividualClient is a personal client.
type IndividualClient struct {
	holderBase
	dateOfBirth time.Time
}

func (c *IndividualClient) HolderType() string     { return "Individual" }
func (c *IndividualClient) DateOfBirth() time.Time { return c.dateOfBirth }

// BusinessClient is a business client.
type BusinessClient struct {
	holderBase
	companyName string
	taxID       string
}

func (c *BusinessClient) HolderType() string  { return "Business" }
func (c *BusinessClient) CompanyName() string { return c.companyName }
func (c *BusinessClient) TaxID() string       { return c.taxID }

// SameHolder reports whether a and b are the same identity. Holders are
// compared by identifier, never by attributes.
func SameHolder(a, b AccountHolder) bool {
	if a == nil || b == nil {
		return false
	}
	return a.HolderID() == b.HolderID()
}
