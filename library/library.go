// Package library models a small lending library: a catalog of books, a
// roster of members and librarians, and the circulation rules that tie
// them together. All state is in memory and owned by the Library
// aggregator.
package library

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bankshelf/ident"
)

// Library owns the catalog and the roster and provides search, circulation
// and reporting over them.
type Library struct {
	name         string
	address      string
	books        map[string]*Book   // keyed by ISBN
	members      map[string]*Member // keyed by person ID
	librarians   []*Librarian
	memberIDs    *ident.Sequence
	librarianIDs *ident.Sequence
	log          *zap.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for circulation and admin notices.
func WithLogger(log *zap.Logger) Option {
	return func(l *Library) { l.log = log }
}

// NewLibrary creates an empty library.
func NewLibrary(name, address string, opts ...Option) *Library {
	l := &Library{
		name:         name,
		address:      address,
		books:        make(map[string]*Book),
		members:      make(map[string]*Member),
		memberIDs:    ident.NewSequence("MEM", 4),
		librarianIDs: ident.NewSequence("LIB", 4),
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewDefaultLibrary creates a library with default settings.
func NewDefaultLibrary(opts ...Option) *Library {
	return NewLibrary("City Public Library", "123 Main Street", opts...)
}

func (l *Library) Name() string    { return l.name }
func (l *Library) Address() string { return l.address }

// NewMember creates a member against this library's identifier sequence.
// The member still has to be registered with AddMember.
func (l *Library) NewMember(name, email, phone string, membershipType MembershipType) (*Member, error) {
	if _, ok := borrowQuota[membershipType]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMembershipType, membershipType)
	}
	return &Member{
		personBase:     newPersonBase(l.memberIDs, name, email, phone),
		membershipType: membershipType,
		membershipDate: time.Now(),
	}, nil
}

// NewStudentMember creates a member on the student tier.
func (l *Library) NewStudentMember(name, email, phone string) *Member {
	m, _ := l.NewMember(name, email, phone, MembershipStudent)
	return m
}

// NewLibrarian creates a librarian. An empty department defaults to
// "General".
func (l *Library) NewLibrarian(name, email, phone, employeeID, department string) *Librarian {
	if department == "" {
		department = "General"
	}
	return &Librarian{
		personBase: newPersonBase(l.librarianIDs, name, email, phone),
		employeeID: employeeID,
		department: department,
		hireDate:   time.Now(),
		log:        l.log,
	}
}

// AddBook puts the book in the catalog. It reports false when the ISBN is
// already present.
func (l *Library) AddBook(book *Book) bool {
	if _, exists := l.books[book.ISBN()]; exists {
		l.log.Warn("duplicate book not added", zap.String("isbn", book.ISBN()))
		return false
	}
	l.books[book.ISBN()] = book
	return true
}

// RemoveBook deletes the book with the given ISBN from the catalog.
// Borrowed books cannot be removed until they come back.
func (l *Library) RemoveBook(isbn string) error {
	book, ok := l.books[isbn]
	if !ok {
		return fmt.Errorf("remove %s: %w", isbn, ErrBookNotFound)
	}
	if !book.IsAvailable() {
		l.log.Warn("cannot remove borrowed book", zap.String("isbn", isbn))
		return fmt.Errorf("remove %s: %w", isbn, ErrBookBorrowed)
	}
	delete(l.books, isbn)
	return nil
}

// AddMember registers the member. It reports false when the member is
// already registered.
func (l *Library) AddMember(m *Member) bool {
	if _, exists := l.members[m.ID()]; exists {
		return false
	}
	l.members[m.ID()] = m
	return true
}

// AddLibrarian puts the librarian on staff.
func (l *Library) AddLibrarian(lb *Librarian) {
	l.librarians = append(l.librarians, lb)
}

// Checkout checks the book out to the member and records the ISBN on the
// member's borrowed list, keeping the two views of the loan consistent.
func (l *Library) Checkout(isbn string, member *Member, days int) error {
	book, ok := l.books[isbn]
	if !ok {
		return fmt.Errorf("checkout %s: %w", isbn, ErrBookNotFound)
	}
	if _, registered := l.members[member.ID()]; !registered {
		return fmt.Errorf("checkout %s: %w", isbn, ErrMemberNotRegistered)
	}
	if !book.IsAvailable() {
		l.log.Info("checkout denied: book unavailable",
			zap.String("isbn", isbn),
			zap.String("borrower", book.Borrower().Name()))
		return fmt.Errorf("checkout %s: %w", isbn, ErrBookUnavailable)
	}
	if err := member.BorrowBook(isbn); err != nil {
		l.log.Info("checkout denied: quota reached",
			zap.String("isbn", isbn),
			zap.String("member", member.ID()))
		return fmt.Errorf("checkout %s: %w", isbn, err)
	}
	book.Borrow(member, days)
	return nil
}

// ReturnBook takes the book back, clears it from the borrower's list and
// returns the member who had it.
func (l *Library) ReturnBook(isbn string) (*Member, error) {
	book, ok := l.books[isbn]
	if !ok {
		return nil, fmt.Errorf("return %s: %w", isbn, ErrBookNotFound)
	}
	borrower := book.Borrower()
	if !book.Return() {
		return nil, fmt.Errorf("return %s: %w", isbn, ErrBookNotBorrowed)
	}
	if borrower != nil {
		borrower.ReturnBook(isbn)
	}
	return borrower, nil
}

// FindBookByISBN looks a book up by its ISBN. A missing ISBN is not an
// error; the second return value reports whether the book exists.
func (l *Library) FindBookByISBN(isbn string) (*Book, bool) {
	b, ok := l.books[isbn]
	return b, ok
}

// FindBooksByAuthor returns every book whose author contains the query,
// ignoring case. Results are sorted by title so output is stable.
func (l *Library) FindBooksByAuthor(author string) []*Book {
	q := strings.ToLower(author)
	var out []*Book
	for _, b := range l.books {
		if strings.Contains(strings.ToLower(b.Author()), q) {
			out = append(out, b)
		}
	}
	SortBooksByTitle(out)
	return out
}

// FindMemberByEmail looks a member up by email address.
func (l *Library) FindMemberByEmail(email string) (*Member, bool) {
	for _, m := range l.members {
		if m.Email() == email {
			return m, true
		}
	}
	return nil, false
}

// OverdueBooks lists every checked-out book past its due date, sorted by
// title.
func (l *Library) OverdueBooks() []*Book {
	var out []*Book
	for _, b := range l.books {
		if b.IsOverdue() {
			out = append(out, b)
		}
	}
	SortBooksByTitle(out)
	return out
}

// MemberBorrowedBooks lists the books currently checked out to the
// member, sorted by title.
func (l *Library) MemberBorrowedBooks(member *Member) []*Book {
	var out []*Book
	for _, b := range l.books {
		if b.Borrower() != nil && SamePerson(b.Borrower(), member) {
			out = append(out, b)
		}
	}
	SortBooksByTitle(out)
	return out
}

// Books returns the catalog sorted by title.
func (l *Library) Books() []*Book {
	out := make([]*Book, 0, len(l.books))
	for _, b := range l.books {
		out = append(out, b)
	}
	SortBooksByTitle(out)
	return out
}

// Len is the number of books in the catalog.
func (l *Library) Len() int { return len(l.books) }

// BooksCount is the number of books in the catalog.
func (l *Library) BooksCount() int { return len(l.books) }

// MembersCount is the number of registered members.
func (l *Library) MembersCount() int { return len(l.members) }

// AvailableBooksCount is the number of books not currently checked out.
func (l *Library) AvailableBooksCount() int {
	n := 0
	for _, b := range l.books {
		if b.IsAvailable() {
			n++
		}
	}
	return n
}

// HasBook reports whether the book is in the catalog.
func (l *Library) HasBook(b *Book) bool {
	if b == nil {
		return false
	}
	_, ok := l.books[b.ISBN()]
	return ok
}

// HasMember reports whether the member is registered.
func (l *Library) HasMember(m *Member) bool {
	if m == nil {
		return false
	}
	_, ok := l.members[m.ID()]
	return ok
}

func (l *Library) String() string {
	return fmt.Sprintf("%s - %d books, %d members", l.name, len(l.books), len(l.members))
}
