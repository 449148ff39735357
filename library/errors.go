package library

import "errors"

// Input errors. These reject malformed values before they reach the
// domain state.
var (
	// ErrInvalidEmail is returned when an email address has no "@".
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPhone is returned when a phone number is shorter than
	// ten characters.
	ErrInvalidPhone = errors.New("phone number must be at least 10 digits")

	// ErrInvalidMembershipType is returned for a tier outside
	// basic/premium/student.
	ErrInvalidMembershipType = errors.New("invalid membership type")
)

// Business denials. Ordinary recoverable outcomes, checked with
// errors.Is.
var (
	// ErrBookNotFound is returned when no book exists under the ISBN.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookBorrowed is returned when removing a book that is
	// currently checked out.
	ErrBookBorrowed = errors.New("book is currently borrowed")

	// ErrBookUnavailable is returned when checking out a book that is
	// already with another member.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrBookNotBorrowed is returned when returning a book that is not
	// checked out.
	ErrBookNotBorrowed = errors.New("book is not checked out")

	// ErrQuotaExceeded is returned when a member is already holding as
	// many books as their tier allows.
	ErrQuotaExceeded = errors.New("borrowing quota reached")

	// ErrMemberNotRegistered is returned when a circulation operation
	// names a member the library does not know.
	ErrMemberNotRegistered = errors.New("member is not registered")
)
