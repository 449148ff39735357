package library

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMember(t *testing.T, lib *Library, name, email string) *Member {
	t.Helper()
	m, err := lib.NewMember(name, email, "1234567890", MembershipBasic)
	require.NoError(t, err)
	return m
}

func TestBorrowAndReturn(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	alice := testMember(t, lib, "Alice", "alice@email.com")
	bob := testMember(t, lib, "Bob", "bob@email.com")

	require.True(t, book.Borrow(alice, 7))
	assert.False(t, book.IsAvailable())
	assert.Same(t, alice, book.Borrower())
	due, ok := book.DueDate()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), due, time.Minute)

	// Borrow while already borrowed fails and changes nothing.
	assert.False(t, book.Borrow(bob, 7))
	assert.Same(t, alice, book.Borrower())

	require.True(t, book.Return())
	assert.True(t, book.IsAvailable())
	assert.Nil(t, book.Borrower())
	_, ok = book.DueDate()
	assert.False(t, ok)

	// A second return fails and the book stays available.
	assert.False(t, book.Return())
	assert.True(t, book.IsAvailable())
}

func TestBorrowDefaultPeriod(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	alice := testMember(t, lib, "Alice", "alice@email.com")

	require.True(t, book.Borrow(alice, 0))
	due, ok := book.DueDate()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(DefaultLoanDays*24*time.Hour), due, time.Minute)
}

func TestIsOverdue(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	alice := testMember(t, lib, "Alice", "alice@email.com")

	assert.False(t, book.IsOverdue(), "available book is never overdue")

	require.True(t, book.Borrow(alice, 14))
	assert.False(t, book.IsOverdue())

	book.dueDate = time.Now().Add(-time.Hour)
	assert.True(t, book.IsOverdue())

	require.True(t, book.Return())
	assert.False(t, book.IsOverdue())
}

func TestBookRecordRoundTripIsLossy(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	alice := testMember(t, lib, "Alice Johnson", "alice@email.com")
	require.True(t, book.Borrow(alice, 7))

	rec := book.ToRecord()
	assert.Equal(t, "Go Programming", rec.Title)
	assert.Equal(t, "978-0123456789", rec.ISBN)
	assert.Equal(t, 2023, rec.PublicationYear)
	assert.False(t, rec.IsAvailable)
	require.NotNil(t, rec.Borrower)
	assert.Equal(t, "Alice Johnson", *rec.Borrower)
	require.NotNil(t, rec.DueDate)
	_, err := time.Parse(time.RFC3339, *rec.DueDate)
	assert.NoError(t, err)

	data, err := json.Marshal(book)
	require.NoError(t, err)

	// Reconstruction keeps only the descriptive fields; the borrow
	// state is reset.
	rebuilt, err := FromJSON(data)
	require.NoError(t, err)
	assert.True(t, SameBook(book, rebuilt))
	assert.Equal(t, book.Title(), rebuilt.Title())
	assert.Equal(t, book.Author(), rebuilt.Author())
	assert.True(t, rebuilt.IsAvailable())
	assert.Nil(t, rebuilt.Borrower())
}

func TestAvailableBookRecordNulls(t *testing.T) {
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")

	data, err := json.Marshal(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"borrower":null`)
	assert.Contains(t, string(data), `"due_date":null`)
	assert.Contains(t, string(data), `"is_available":true`)
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestIsValidISBN(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"978-0123456789", true},
		{"0123456789", true},
		{"978 0123456789", true},
		{"12345", false},
		{"", false},
		{"978-01234567890000", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidISBN(tt.in), "input %q", tt.in)
	}
}

func TestSameBook(t *testing.T) {
	a := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	b := NewBook("Different Title", "Someone Else", "978-0123456789", 2020, "Other")
	c := NewBook("Go Programming", "John Smith", "978-9999999999", 2023, "Programming")

	assert.True(t, SameBook(a, b), "books match by ISBN only")
	assert.False(t, SameBook(a, c))
	assert.False(t, SameBook(a, nil))
}

func TestSortBooksByTitle(t *testing.T) {
	books := []*Book{
		NewBook("Zebra", "A", "1111111111", 2000, "X"),
		NewBook("Alpha", "B", "2222222222", 2001, "Y"),
		NewBook("Mango", "C", "3333333333", 2002, "Z"),
	}

	SortBooksByTitle(books)

	assert.Equal(t, "Alpha", books[0].Title())
	assert.Equal(t, "Mango", books[1].Title())
	assert.Equal(t, "Zebra", books[2].Title())
}

func TestBookString(t *testing.T) {
	lib := NewDefaultLibrary()
	book := NewBook("Go Programming", "John Smith", "978-0123456789", 2023, "Programming")
	assert.Equal(t, "'Go Programming' by John Smith - Available", book.String())

	alice := testMember(t, lib, "Alice", "alice@email.com")
	require.True(t, book.Borrow(alice, 7))
	assert.Equal(t, "'Go Programming' by John Smith - Borrowed by Alice", book.String())
}
