package library

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultLoanDays is the standard borrowing period.
const DefaultLoanDays = 14

// Book is a single catalog entry. A book is either available or checked
// out to exactly one member with a due date, never both.
type Book struct {
	title           string
	author          string
	isbn            string
	publicationYear int
	genre           string
	available       bool
	borrower        *Member // non-owning; the library owns members
	dueDate         time.Time
}

// NewBook creates an available book.
func NewBook(title, author, isbn string, publicationYear int, genre string) *Book {
	return &Book{
		title:           title,
		author:          author,
		isbn:            isbn,
		publicationYear: publicationYear,
		genre:           genre,
		available:       true,
	}
}

func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) ISBN() string         { return b.isbn }
func (b *Book) PublicationYear() int { return b.publicationYear }
func (b *Book) Genre() string        { return b.genre }
func (b *Book) IsAvailable() bool    { return b.available }

// Borrower is the member currently holding the book, or nil while the
// book is available.
func (b *Book) Borrower() *Member { return b.borrower }

// DueDate returns the current due date; ok is false while the book is
// available.
func (b *Book) DueDate() (due time.Time, ok bool) {
	return b.dueDate, !b.dueDate.IsZero()
}

// Borrow checks the book out to member for the given number of days
// (DefaultLoanDays when days <= 0). It reports false if the book is
// already checked out, leaving it unchanged.
func (b *Book) Borrow(member *Member, days int) bool {
	if !b.available {
		return false
	}
	if days <= 0 {
		days = DefaultLoanDays
	}
	b.available = false
	b.borrower = member
	b.dueDate = time.Now().Add(time.Duration(days) * 24 * time.Hour)
	return true
}

// Return makes the book available again and clears the borrow state. It
// reports false if the book was not checked out.
func (b *Book) Return() bool {
	if b.available {
		return false
	}
	b.available = true
	b.borrower = nil
	b.dueDate = time.Time{}
	return true
}

// IsOverdue reports whether the book is checked out past its due date.
// An available book is never overdue.
func (b *Book) IsOverdue() bool {
	if b.available || b.dueDate.IsZero() {
		return false
	}
	return time.Now().After(b.dueDate)
}

// Record is the flat serialized form of a book. Reconstruction uses only
// the five descriptive fields; availability and borrow state are always
// reset, so the round-trip through Record is lossy for state.
type Record struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            string  `json:"isbn"`
	PublicationYear int     `json:"publication_year"`
	Genre           string  `json:"genre"`
	IsAvailable     bool    `json:"is_available"`
	Borrower        *string `json:"borrower"`
	DueDate         *string `json:"due_date"`
}

// ToRecord snapshots the book, including its current borrow state.
func (b *Book) ToRecord() Record {
	rec := Record{
		Title:           b.title,
		Author:          b.author,
		ISBN:            b.isbn,
		PublicationYear: b.publicationYear,
		Genre:           b.genre,
		IsAvailable:     b.available,
	}
	if b.borrower != nil {
		name := b.borrower.Name()
		rec.Borrower = &name
	}
	if !b.dueDate.IsZero() {
		due := b.dueDate.Format(time.RFC3339)
		rec.DueDate = &due
	}
	return rec
}

// MarshalJSON serializes the book through its Record form.
func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToRecord())
}

// FromJSON builds a book from serialized data. Only the descriptive
// fields carry over; the new book starts available with no borrower.
func FromJSON(data []byte) (*Book, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode book: %w", err)
	}
	return NewBook(rec.Title, rec.Author, rec.ISBN, rec.PublicationYear, rec.Genre), nil
}

// IsValidISBN does the simplified shape check on an ISBN: ten or
// thirteen characters once dashes and spaces are removed.
func IsValidISBN(isbn string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(isbn)
	return len(cleaned) == 10 || len(cleaned) == 13
}

// SameBook reports whether a and b are the same catalog entry. Books are
// compared by ISBN.
func SameBook(a, b *Book) bool {
	if a == nil || b == nil {
		return false
	}
	return a.isbn == b.isbn
}

// SortBooksByTitle orders books alphabetically by title, in place.
func SortBooksByTitle(books []*Book) {
	sort.Slice(books, func(i, j int) bool { return books[i].title < books[j].title })
}

func (b *Book) String() string {
	status := "Available"
	if !b.available {
		status = fmt.Sprintf("Borrowed by %s", b.borrower.Name())
	}
	return fmt.Sprintf("'%s' by %s - %s", b.title, b.author, status)
}
