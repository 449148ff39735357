package library

import (
	"fmt"
	"strings"
	"time"
)

// MembershipType is the tier a member is registered under; the tier sets
// the member's borrowing quota.
type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipStudent MembershipType = "student"
)

// borrowQuota is the maximum number of simultaneously borrowed books per
// tier.
var borrowQuota = map[MembershipType]int{
	MembershipBasic:   3,
	MembershipPremium: 10,
	MembershipStudent: 5,
}

// ParseMembershipType validates a tier name, ignoring case.
func ParseMembershipType(s string) (MembershipType, error) {
	mt := MembershipType(strings.ToLower(s))
	if _, ok := borrowQuota[mt]; !ok {
		return "", fmt.Errorf("%w: %q (must be one of basic, premium, student)", ErrInvalidMembershipType, s)
	}
	return mt, nil
}

// Member is a library member who can borrow books up to their tier's
// quota.
type Member struct {
	personBase
	membershipType MembershipType
	borrowed       []string // ISBNs, bounded by the tier quota
	membershipDate time.Time
}

// MembershipType is the member's current tier.
func (m *Member) MembershipType() MembershipType { return m.membershipType }

// SetMembershipType moves the member to another tier.
func (m *Member) SetMembershipType(mt MembershipType) error {
	if _, ok := borrowQuota[mt]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMembershipType, mt)
	}
	m.membershipType = mt
	return nil
}

// Quota is the maximum number of books this member may hold at once.
func (m *Member) Quota() int { return borrowQuota[m.membershipType] }

// BorrowedBooks returns a copy of the borrowed ISBNs; callers cannot
// alter the member's list through it.
func (m *Member) BorrowedBooks() []string {
	out := make([]string, len(m.borrowed))
	copy(out, m.borrowed)
	return out
}

// Permissions lists what the member may do. Premium members get a couple
// of extras on top of the base set.
func (m *Member) Permissions() []string {
	perms := []string{"borrow_books", "reserve_books", "access_catalog"}
	if m.membershipType == MembershipPremium {
		perms = append(perms, "priority_reservations", "extended_borrowing")
	}
	return perms
}

// BorrowBook adds the ISBN to the member's borrowed list if the quota
// allows it.
func (m *Member) BorrowBook(isbn string) error {
	if len(m.borrowed) >= m.Quota() {
		return fmt.Errorf("%w: %s quota is %d", ErrQuotaExceeded, m.membershipType, m.Quota())
	}
	m.borrowed = append(m.borrowed, isbn)
	return nil
}

// ReturnBook removes the ISBN from the borrowed list. It reports false
// when the member was not holding that book.
func (m *Member) ReturnBook(isbn string) bool {
	for i, borrowed := range m.borrowed {
		if borrowed == isbn {
			m.borrowed = append(m.borrowed[:i], m.borrowed[i+1:]...)
			return true
		}
	}
	return false
}

// MembershipDate is when the member registered.
func (m *Member) MembershipDate() time.Time { return m.membershipDate }

// MembershipDuration is how long the member has been registered, in whole
// days.
func (m *Member) MembershipDuration() int {
	return int(time.Since(m.membershipDate).Hours() / 24)
}
